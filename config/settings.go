package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings is the environment-driven configuration of the library.
type Settings struct {
	// RulesFile is the path of the YAML rules document.
	RulesFile string `env:"IMGVALID_RULES_FILE" envDefault:"imgvalid.yaml"`
	// LogLevel is the minimum level of the library logger.
	LogLevel string `env:"IMGVALID_LOG_LEVEL" envDefault:"info"`
	// LogFormat selects the logger output format, "text" or "json".
	LogFormat string `env:"IMGVALID_LOG_FORMAT" envDefault:"text"`
}

var defaultEnvLoaded sync.Once

// LoadSettings parses Settings from the environment. The default .env
// file, if present, is loaded once per process before the first parse.
func LoadSettings() (Settings, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, errors.Join(ErrParsingSettings, err)
	}
	return s, nil
}
