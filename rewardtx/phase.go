package rewardtx

import "fmt"

// Phase selects whether an execution pass applies credits.
// Each reward transaction is executed twice, once per phase.
type Phase int8

const (
	// Provisional pass registers the transaction and its touched addresses
	// without changing balances.
	Provisional Phase = 0
	// Final pass applies credits.
	Final Phase = -1
)

// PhaseFromIndex converts the pipeline execution index into Phase.
func PhaseFromIndex(index int) (Phase, error) {
	switch index {
	case int(Provisional):
		return Provisional, nil
	case int(Final):
		return Final, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidPhase, index)
}

// Valid is true for Provisional and Final.
func (p Phase) Valid() bool {
	return p == Provisional || p == Final
}

func (p Phase) String() string {
	switch p {
	case Provisional:
		return "provisional"
	case Final:
		return "final"
	}
	return fmt.Sprintf("phase(%d)", int8(p))
}
