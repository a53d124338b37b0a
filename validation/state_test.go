package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/spacemeshos/go-rewardtx/common/types"
	"github.com/spacemeshos/go-rewardtx/rewardtx"
)

func TestState(t *testing.T) {
	state := NewState(zaptest.NewLogger(t))
	require.True(t, state.IsValid())
	require.Zero(t, state.Score())

	tx := rewardtx.NewBlockReward(types.NewRegUserID(types.RegID{Height: 1}), 1, 1)
	executor := rewardtx.NewExecutor()
	err := executor.Execute(tx, 1, rewardtx.Phase(3), rewardtx.Cache{}, state)
	require.ErrorIs(t, err, rewardtx.ErrInvalidPhase)

	require.False(t, state.IsValid())
	require.Equal(t, rewardtx.RejectScore, state.Score())
	rejections := state.Rejections()
	require.Len(t, rejections, 1)
	require.Equal(t, "bad-exec-index", rejections[0].Code)
	require.ErrorIs(t, rejections[0].Err, rewardtx.ErrInvalidPhase)

	state.Reset()
	require.True(t, state.IsValid())
}

func TestStateZeroValue(t *testing.T) {
	var state State
	state.Reject(rewardtx.Rejection{Score: 10, Code: "x"})
	state.Reject(rewardtx.Rejection{Score: 5, Code: "y"})
	require.Equal(t, 10, state.Score())
	require.Len(t, state.Rejections(), 2)
}
