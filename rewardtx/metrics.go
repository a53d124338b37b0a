package rewardtx

import "github.com/spacemeshos/go-rewardtx/metrics"

const subsystem = "execution"

var (
	executed = metrics.NewCounter(
		"executed",
		subsystem,
		"number of successful reward transaction executions",
		[]string{"type", "phase"},
	)
	rejected = metrics.NewCounter(
		"rejected",
		subsystem,
		"number of rejected reward transactions by reject code",
		[]string{"code"},
	)
	credited = metrics.NewCounter(
		"credited",
		subsystem,
		"amount credited by finalized reward transactions",
		[]string{"coin"},
	)
)
