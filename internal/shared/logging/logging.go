package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/andrasnagy-data/accesstoken/internal/shared/config"
	"github.com/getsentry/sentry-go"
	sentryzerolog "github.com/getsentry/sentry-go/zerolog"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"golang.org/x/term"
)

// NewLogger creates a zerolog logger on stderr, pretty for development and JSON for production, and returns an optional Sentry writer (nil if not production).
// Stdout is reserved for the generated token.
func NewLogger(config *config.Config) (zerolog.Logger, *sentryzerolog.Writer) {
	return newLogger(config, os.Stderr)
}

func newLogger(config *config.Config, out io.Writer) (zerolog.Logger, *sentryzerolog.Writer) {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || config.LogLevel == "" {
		// Default to warn level if parsing fails
		level = zerolog.WarnLevel
	}

	if !config.IsEnvProd() {
		return consoleLogger(out, level), nil
	}

	err = sentry.Init(sentry.ClientOptions{
		Dsn:              config.SentryDSN,
		Environment:      config.Environment,
		Release:          config.Version,
		AttachStacktrace: true,
	})
	if err != nil {
		logger := consoleLogger(out, level)
		logger.Error().Err(err).Msg("Failed to initialize Sentry, using console only")
		return logger, nil
	}

	sentryWriter, err := sentryzerolog.New(sentryzerolog.Config{
		Options: sentryzerolog.Options{
			Levels:          []zerolog.Level{zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel},
			WithBreadcrumbs: true,
			FlushTimeout:    3 * time.Second,
		},
	})
	if err != nil {
		logger := consoleLogger(out, level)
		logger.Error().Err(err).Msg("Failed to initialize Sentry writer, using console only")
		return logger, nil
	}

	// Production: JSON output to stderr + Sentry writer
	multiWriter := zerolog.MultiLevelWriter(out, sentryWriter)

	return zerolog.New(multiWriter).
		Level(level).
		With().
		Timestamp().
		Caller().
		Str("version", config.Version).
		Str("environment", config.Environment).
		Logger(), sentryWriter
}

func consoleLogger(out io.Writer, level zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal(out),
	}
	return zerolog.New(consoleWriter).
		Level(level).
		With().
		Timestamp().
		Caller().
		Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Register flushes buffered Sentry events when the application stops.
func Register(lc fx.Lifecycle, logger zerolog.Logger, sentryWriter *sentryzerolog.Writer) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if sentryWriter == nil {
				return nil
			}
			logger.Debug().Msg("Flushing Sentry client and writer")
			if err := sentryWriter.Close(); err != nil {
				logger.Warn().Err(err).Msg("Failed to close Sentry writer")
			}
			sentry.Flush(2 * time.Second)
			return nil
		},
	})
}
