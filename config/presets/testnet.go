package presets

import (
	"path/filepath"

	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-rewardtx/common/types"
	"github.com/spacemeshos/go-rewardtx/config"
)

func init() {
	register("testnet", testnet())
}

func testnet() config.Config {
	conf := config.DefaultConfig()
	conf.Preset = "testnet"
	conf.Address = types.Config{Prefix: types.TestnetAddressPrefix}
	conf.DataDirParent = filepath.Join(conf.DataDirParent, "testnet")
	conf.Database.LatencyMetering = true
	conf.Logging.Level = zapcore.DebugLevel.String()
	return conf
}
