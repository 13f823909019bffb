package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("config: nil pointer provided to loader")
)

// Config holds the settings shared by the CLI commands.
type Config struct {
	LogLevel   string `env:"FIELDEDIT_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"FIELDEDIT_LOG_FORMAT" envDefault:"text"`
	BundlesDir string `env:"FIELDEDIT_BUNDLES_DIR"`
	Strict     bool   `env:"FIELDEDIT_STRICT" envDefault:"false"`
	Locale     string `env:"FIELDEDIT_LOCALE" envDefault:"en"`
}

// Load reads the dotenv files (".env" when none are named; missing files are
// skipped) and parses the environment into cfg. Values already set in the
// process environment win over dotenv entries.
func Load(cfg *Config, dotenv ...string) error {
	if cfg == nil {
		return ErrNilPointer
	}
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, path := range dotenv {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return cfg.Validate()
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("config: invalid log format %q", c.LogFormat)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("config: invalid locale %q: %w", c.Locale, err)
	}
	return nil
}

// Language returns the parsed locale, falling back to English.
func (c Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
