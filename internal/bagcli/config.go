package bagcli

import (
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logging"
)

// Config is the process level configuration of the bag command.
// The store kind is a per command flag, see RunCommand.
type Config struct {
	LogLevel  logging.Level `env:"BAG_LOG_LEVEL" default:"info" enum:"debug,info,warn,error,fatal,"`
	Separator string        `env:"BAG_SEPARATOR" default:","`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
