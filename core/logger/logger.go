package logger

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	var config zap.Config

	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
			config.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	// Set format based on configuration
	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	// Command output goes to stdout; keep logs off it.
	config.OutputPaths = []string{"stderr"}

	return config.Build()
}

// WithCommand returns a logger with the command field set from the cobra command path.
func WithCommand(l *zap.Logger, cmd *cobra.Command) *zap.Logger {
	if cmd == nil {
		return l
	}
	if path := cmd.CommandPath(); path != "" {
		return l.With(zap.String("command", path))
	}
	return l
}
