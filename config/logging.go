package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogEncoder defines a log encoder kind.
type LogEncoder = string

const (
	defaultLoggingLevel = zapcore.InfoLevel
	// ConsoleLogEncoder represents logging with plain text.
	ConsoleLogEncoder LogEncoder = "console"
	// JSONLogEncoder represents logging with JSON.
	JSONLogEncoder LogEncoder = "json"
)

// LoggerConfig holds the logging settings.
type LoggerConfig struct {
	Encoder LogEncoder `mapstructure:"log-encoder"`
	Level   string     `mapstructure:"log-level"`
}

func defaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder: ConsoleLogEncoder,
		Level:   defaultLoggingLevel.String(),
	}
}

// ParseLevel parses zap level name.
func ParseLevel(level string) (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("log level %q: %w", level, err)
	}
	return lvl, nil
}

// Build returns logger configured with level and encoder.
func (cfg LoggerConfig) Build() (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	var zcfg zap.Config
	if cfg.Encoder == JSONLogEncoder {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = cfg.Encoder
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
