package registry

import (
	"github.com/GDVFox/gomatch/match_node/pattern"
	"github.com/GDVFox/gomatch/util"
)

// Registry объект синглтон реестра шаблонов.
var Registry *PatternRegistry

// InitRegistry инициализирует синглтон Registry набором initial.
func InitRegistry(initial []*pattern.Pattern, l *util.Logger) {
	Registry = NewPatternRegistry(initial, l)
}
