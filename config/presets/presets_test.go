package presets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-rewardtx/common/types"
)

func TestPresets(t *testing.T) {
	require.Equal(t, []string{"mainnet", "testnet"}, Options())
	for name, prefix := range map[string]byte{
		"mainnet": types.MainnetAddressPrefix,
		"testnet": types.TestnetAddressPrefix,
	} {
		t.Run(name, func(t *testing.T) {
			conf, err := Get(name)
			require.NoError(t, err)
			require.Equal(t, prefix, conf.Address.Prefix)
			require.NoError(t, conf.Validate())
		})
	}
	_, err := Get("devnet")
	require.ErrorContains(t, err, "not registered")
}
