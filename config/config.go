// Package config contains rewardtx configuration definitions.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/spacemeshos/go-rewardtx/common/types"
	"github.com/spacemeshos/go-rewardtx/ledger"
	"github.com/spacemeshos/go-rewardtx/metrics"
)

const (
	defaultDataDirName = "rewardtx"
	defaultDBFile      = "state.sql"
)

// Config defines the top level configuration.
type Config struct {
	BaseConfig `mapstructure:"main"`
	Preset     string             `mapstructure:"preset"`
	Address    types.Config       `mapstructure:"address"`
	Ledger     ledger.Config      `mapstructure:"ledger"`
	Database   DatabaseConfig     `mapstructure:"database"`
	Logging    LoggerConfig       `mapstructure:"logging"`
	Metrics    metrics.PushConfig `mapstructure:"metrics"`
}

// BaseConfig defines the default configuration options.
type BaseConfig struct {
	DataDirParent string `mapstructure:"data-folder"`
	DBFile        string `mapstructure:"db-file"`
	ConfigFile    string `mapstructure:"config"`
}

// DatabaseConfig configures the sqlite database.
type DatabaseConfig struct {
	Connections     int  `mapstructure:"connections"`
	LatencyMetering bool `mapstructure:"latency-metering"`
}

// DBPath returns the location of the ledger database.
func (cfg *Config) DBPath() string {
	return filepath.Join(cfg.DataDirParent, cfg.DBFile)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BaseConfig: defaultBaseConfig(),
		Address:    types.DefaultAddressConfig(),
		Ledger:     ledger.DefaultConfig(),
		Database:   DatabaseConfig{Connections: 16},
		Logging:    defaultLoggingConfig(),
		Metrics:    metrics.DefaultPushConfig(),
	}
}

func defaultBaseConfig() BaseConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return BaseConfig{
		DataDirParent: filepath.Join(home, defaultDataDirName),
		DBFile:        defaultDBFile,
	}
}

// LoadConfig reads the file into viper. Missing file is not an error if the path is empty.
func LoadConfig(fileLocation string, vip *viper.Viper) error {
	if fileLocation == "" {
		return nil
	}
	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", fileLocation, err)
	}
	return nil
}

// Unmarshal decodes values loaded into viper on top of cfg.
func Unmarshal(vip *viper.Viper, cfg *Config) error {
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
	opts := []viper.DecoderConfigOption{
		viper.DecodeHook(hook),
		func(c *mapstructure.DecoderConfig) {
			c.ErrorUnused = true
		},
	}
	if err := vip.Unmarshal(cfg, opts...); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks values that can't be used as is.
func (cfg *Config) Validate() error {
	switch cfg.Address.Prefix {
	case types.MainnetAddressPrefix, types.TestnetAddressPrefix:
	default:
		return fmt.Errorf("%w: address prefix %d: %w", ErrInvalidConfig, cfg.Address.Prefix, types.ErrUnsupportedNetwork)
	}
	if cfg.Ledger.CacheSize <= 0 {
		return fmt.Errorf("%w: ledger cache size %d", ErrInvalidConfig, cfg.Ledger.CacheSize)
	}
	if cfg.Database.Connections <= 0 {
		return fmt.Errorf("%w: database connections %d", ErrInvalidConfig, cfg.Database.Connections)
	}
	if _, err := ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch cfg.Logging.Encoder {
	case ConsoleLogEncoder, JSONLogEncoder:
	default:
		return fmt.Errorf("%w: log encoder %q", ErrInvalidConfig, cfg.Logging.Encoder)
	}
	return nil
}
