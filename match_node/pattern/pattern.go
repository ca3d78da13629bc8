package pattern

import (
	"github.com/pkg/errors"

	"github.com/GDVFox/gomatch/lib/go-automata"
	"github.com/GDVFox/gomatch/util"
)

// Возможные ошибки валидации шаблона.
var (
	ErrUnknownType = errors.New("unknown pattern type")
	ErrEmptyWord   = errors.New("word pattern must contain non empty word")
)

// Поддерживаемые типы шаблонов.
const (
	// TypeWord шаблон, принимающий ровно одно заданное слово.
	TypeWord = "word"
	// TypeComment шаблон, принимающий комментарии трех видов:
	// строчные, фигурные и звездочные.
	TypeComment = "comment"
)

// KnownTypes список поддерживаемых типов шаблонов.
var KnownTypes = []string{TypeWord, TypeComment}

// Pattern описание шаблона поиска.
type Pattern struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Word string `json:"word,omitempty"`
}

// Validate проверяет, что шаблон описан корректно.
func (p *Pattern) Validate() error {
	if util.FindStringIndex(KnownTypes, p.Type) == -1 {
		return errors.Wrapf(ErrUnknownType, "'%s'", p.Type)
	}
	if p.Type == TypeWord && p.Word == "" {
		return ErrEmptyWord
	}
	return nil
}

// Automaton собирает автомат, распознающий язык шаблона.
// Каждый вызов возвращает новый экземпляр, поэтому параллельные
// сканирования не делят между собой состояние.
func (p *Pattern) Automaton() (automata.Automaton, error) {
	switch p.Type {
	case TypeWord:
		return automata.NewWord(p.Word), nil
	case TypeComment:
		return automata.NewComment(), nil
	}
	return nil, errors.Wrapf(ErrUnknownType, "'%s'", p.Type)
}
