package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-rewardtx/common/types"
)

func TestLoadConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/etc/rewardtx/config.toml"
	require.NoError(t, afero.WriteFile(fs, path, []byte(`
[main]
data-folder = "/tmp/rewards"
db-file = "ledger.sql"

[address]
prefix = 135

[ledger]
cache-size = 10

[database]
connections = 4
latency-metering = true

[logging]
log-level = "debug"
log-encoder = "json"

[metrics]
push-url = "http://localhost:9091"
`), 0o600))

	vip := viper.New()
	vip.SetFs(fs)
	require.NoError(t, LoadConfig(path, vip))
	conf := DefaultConfig()
	require.NoError(t, Unmarshal(vip, &conf))

	require.Equal(t, "/tmp/rewards/ledger.sql", conf.DBPath())
	require.Equal(t, types.TestnetAddressPrefix, conf.Address.Prefix)
	require.Equal(t, 10, conf.Ledger.CacheSize)
	require.Equal(t, 4, conf.Database.Connections)
	require.True(t, conf.Database.LatencyMetering)
	require.Equal(t, "debug", conf.Logging.Level)
	require.Equal(t, JSONLogEncoder, conf.Logging.Encoder)
	require.Equal(t, "http://localhost:9091", conf.Metrics.URL)
	require.Equal(t, "rewardtx", conf.Metrics.Job)
	require.NoError(t, conf.Validate())
}

func TestLoadConfigMissing(t *testing.T) {
	vip := viper.New()
	require.NoError(t, LoadConfig("", vip))
	require.ErrorContains(t, LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), vip), "read config file")
}

func TestUnmarshalUnknownKey(t *testing.T) {
	vip := viper.New()
	vip.Set("ledger.unknown", 1)
	conf := DefaultConfig()
	require.Error(t, Unmarshal(vip, &conf))
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		modify func(*Config)
	}{
		{"prefix", func(c *Config) { c.Address.Prefix = 1 }},
		{"cache", func(c *Config) { c.Ledger.CacheSize = 0 }},
		{"connections", func(c *Config) { c.Database.Connections = -1 }},
		{"level", func(c *Config) { c.Logging.Level = "loud" }},
		{"encoder", func(c *Config) { c.Logging.Encoder = "xml" }},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			conf := DefaultConfig()
			require.NoError(t, conf.Validate())
			tc.modify(&conf)
			require.ErrorIs(t, conf.Validate(), ErrInvalidConfig)
		})
	}
}

func TestBuildLogger(t *testing.T) {
	for _, encoder := range []LogEncoder{ConsoleLogEncoder, JSONLogEncoder} {
		logger, err := LoggerConfig{Encoder: encoder, Level: "warn"}.Build()
		require.NoError(t, err)
		require.False(t, logger.Core().Enabled(-1))
	}
	_, err := LoggerConfig{Encoder: ConsoleLogEncoder, Level: "loud"}.Build()
	require.Error(t, err)
}
