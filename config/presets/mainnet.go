package presets

import (
	"github.com/spacemeshos/go-rewardtx/common/types"
	"github.com/spacemeshos/go-rewardtx/config"
)

func init() {
	register("mainnet", mainnet())
}

func mainnet() config.Config {
	conf := config.DefaultConfig()
	conf.Preset = "mainnet"
	conf.Address = types.Config{Prefix: types.MainnetAddressPrefix}
	return conf
}
