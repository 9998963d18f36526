package main

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/formkit/modules/forms"
	"github.com/dmitrymomot/formkit/pkg/environment"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/requestid"
)

// Config is the application configuration, read from the environment and an
// optional .env file.
type Config struct {
	AppName      string                  `env:"APP_NAME" envDefault:"formkit"`
	Env          environment.Environment `env:"APP_ENV" envDefault:"development"`
	RuleSetsPath string                  `env:"RULESETS_PATH" envDefault:"config/rulesets.yaml"`

	// Empty values keep the defaults of the environment.
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	Server httpserver.Config
	Forms  forms.Config
}

func (c Config) loggerOptions() ([]logger.Option, error) {
	opts := []logger.Option{
		logger.WithEnvironment(c.Env, c.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}

	if c.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(level))
	}

	switch f := logger.Format(c.LogFormat); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("LOG_FORMAT: unknown format %q", c.LogFormat)
	}

	return opts, nil
}
