package config

import (
	"github.com/GDVFox/gomatch/match_node/engine"
	"github.com/GDVFox/gomatch/match_node/journal"
	"github.com/GDVFox/gomatch/util"
	"github.com/GDVFox/gomatch/util/httplib"
	"github.com/GDVFox/gomatch/util/storage"
)

// Conf глобальный конфиг синглтон.
var Conf = NewConfig()

// Config конфигурация сервиса.
type Config struct {
	HTTP    *httplib.HTTPConfig `yaml:"http"`
	Logging *util.LoggingConfig `yaml:"logging"`
	ETCD    *storage.ETCDConfig `yaml:"etcd"`
	Journal *journal.Config     `yaml:"journal"`
	Engine  *engine.Config      `yaml:"engine"`
}

// NewConfig создает конфиг с настройками по-умолчанию
func NewConfig() *Config {
	return &Config{
		HTTP:    httplib.NewtHTTPConfig(),
		Logging: util.NewLoggingConfig(),
		ETCD:    storage.NewETCDConfig(),
		Journal: journal.NewConfig(),
		Engine:  engine.NewConfig(),
	}
}
