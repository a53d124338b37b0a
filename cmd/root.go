// Package cmd holds flags and config loading shared by rewardtx commands.
package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	cfg "github.com/spacemeshos/go-rewardtx/config"
	"github.com/spacemeshos/go-rewardtx/config/presets"
)

var (
	// Version is the app's semantic version. Designed to be overwritten by make.
	Version string
	// Commit is the git commit used to build the app. Designed to be overwritten by make.
	Commit string
)

// flag name to config key.
var flagKeys = map[string]string{
	"config":              "main.config",
	"preset":              "preset",
	"data-folder":         "main.data-folder",
	"db-file":             "main.db-file",
	"address-prefix":      "address.prefix",
	"cache-size":          "ledger.cache-size",
	"db-connections":      "database.connections",
	"db-latency-metering": "database.latency-metering",
	"log-level":           "logging.log-level",
	"log-encoder":         "logging.log-encoder",
	"metrics-push":        "metrics.push-url",
	"metrics-job":         "metrics.push-job",
	"metrics-instance":    "metrics.push-instance",
}

// AddFlags registers config flags. Only flags that were set explicitly overwrite
// values from the preset and the config file.
func AddFlags(flags *pflag.FlagSet) {
	defaults := cfg.DefaultConfig()
	flags.StringP("config", "c", "", "load configuration from file")
	flags.StringP("preset", "p", "",
		fmt.Sprintf("preset overwrites default values of the config. options %+s", presets.Options()))

	/** ======================== BaseConfig Flags ========================== **/
	flags.StringP("data-folder", "d", defaults.DataDirParent, "directory with the ledger database")
	flags.String("db-file", defaults.DBFile, "name of the ledger database file")

	/** ======================== Ledger Flags ========================== **/
	flags.Uint8("address-prefix", defaults.Address.Prefix, "base58check version byte of addresses")
	flags.Int("cache-size", defaults.Ledger.CacheSize, "number of cached registration ids")
	flags.Int("db-connections", defaults.Database.Connections, "number of pooled database connections")
	flags.Bool("db-latency-metering", defaults.Database.LatencyMetering, "collect latency of every query")

	/** ======================== Logging and Metrics Flags ========================== **/
	flags.String("log-level", defaults.Logging.Level, "log level")
	flags.String("log-encoder", defaults.Logging.Encoder, "log encoder, console or json")
	flags.String("metrics-push", defaults.Metrics.URL, "push metrics to the pushgateway url")
	flags.String("metrics-job", defaults.Metrics.Job, "pushgateway job name")
	flags.String("metrics-instance", defaults.Metrics.Instance, "pushgateway instance label")
}

// LoadConfig builds config from the preset, the config file and explicitly set flags,
// in that order.
func LoadConfig(flags *pflag.FlagSet) (*cfg.Config, error) {
	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	preset, err := flags.GetString("preset")
	if err != nil {
		return nil, err
	}

	vip := viper.New()
	if err := cfg.LoadConfig(path, vip); err != nil {
		return nil, err
	}
	if len(preset) == 0 && vip.IsSet("preset") {
		preset = vip.GetString("preset")
	}
	conf := cfg.DefaultConfig()
	if len(preset) > 0 {
		if conf, err = presets.Get(preset); err != nil {
			return nil, err
		}
	}

	flags.Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			vip.Set(key, f.Value.String())
		}
	})
	if err := cfg.Unmarshal(vip, &conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}
