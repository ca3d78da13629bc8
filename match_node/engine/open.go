package engine

import (
	"github.com/GDVFox/gomatch/match_node/journal"
	"github.com/GDVFox/gomatch/util"
)

// Engine объект синглтон для выполнения сканирований.
var Engine *MatchEngine

// StartEngine инициализирует синглтон Engine.
func StartEngine(l *util.Logger, cfg *Config, journalCfg *journal.Config) error {
	var err error
	Engine, err = newMatchEngine(l, cfg, journalCfg)
	if err != nil {
		return err
	}
	return nil
}
