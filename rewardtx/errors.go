package rewardtx

import (
	"errors"

	"github.com/spacemeshos/go-rewardtx/common/types"
)

var (
	// ErrAccountRead is returned when the recipient account can't be loaded.
	ErrAccountRead = errors.New("read account")
	// ErrAccountWrite is returned when the recipient account can't be saved.
	ErrAccountWrite = errors.New("write account")
	// ErrUnknownCoinType is returned when a reward is denominated in an unknown coin.
	ErrUnknownCoinType = types.ErrUnknownCoinType
	// ErrBalanceOverflow is returned when a credit would wrap a balance.
	ErrBalanceOverflow = types.ErrBalanceOverflow
	// ErrInvalidPhase is returned for execution phases other than Provisional and Final.
	ErrInvalidPhase = errors.New("invalid execution phase")
	// ErrMalformedIdentity is returned for identities that fail their validity check.
	ErrMalformedIdentity = types.ErrMalformedIdentity
	// ErrUnresolvedIdentity is returned when the ledger can't resolve an identity.
	ErrUnresolvedIdentity = errors.New("unresolved identity")
	// ErrDecodeTruncated is returned when input ends before the record is complete.
	ErrDecodeTruncated = errors.New("truncated input")
	// ErrDecodeTrailing is returned when input continues past the end of the record.
	ErrDecodeTrailing = errors.New("trailing bytes")
	// ErrDecodeDuplicateKey is returned when a coin type appears twice in the reward values.
	ErrDecodeDuplicateKey = errors.New("duplicate coin type")
	// ErrDecodeUnsortedKeys is returned when reward values are not in ascending coin order.
	ErrDecodeUnsortedKeys = errors.New("coin types out of order")
	// ErrUnsupportedVersion is returned for record versions this package can't interpret.
	ErrUnsupportedVersion = errors.New("unsupported version")
	// ErrUnknownTxType is returned when an envelope carries a non reward transaction type.
	ErrUnknownTxType = errors.New("unknown transaction type")
	// ErrTxAddresses is returned when touched addresses can't be recorded.
	ErrTxAddresses = errors.New("save tx addresses")
)

// RejectScore is the severity reported for hard failures.
const RejectScore = 100

// Rejection is a structured failure report.
type Rejection struct {
	Score int
	Code  string
	Err   error
}

// Message is a human readable description of the failure.
func (r Rejection) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

var rejectCodes = []struct {
	err  error
	code string
}{
	{ErrAccountRead, "bad-read-accountdb"},
	{ErrAccountWrite, "bad-save-accountdb"},
	{ErrTxAddresses, "bad-save-txaddrdb"},
	{ErrInvalidPhase, "bad-exec-index"},
	{ErrUnknownCoinType, "bad-coin-type"},
	{ErrBalanceOverflow, "bad-balance-overflow"},
	{ErrUnresolvedIdentity, "bad-uid-unresolved"},
	{ErrMalformedIdentity, "bad-uid-malformed"},
	{ErrDecodeTruncated, "bad-tx-truncated"},
	{ErrDecodeTrailing, "bad-tx-trailing"},
	{ErrDecodeDuplicateKey, "bad-tx-dup-coin"},
	{ErrDecodeUnsortedKeys, "bad-tx-coin-order"},
	{ErrUnsupportedVersion, "bad-tx-version"},
	{ErrUnknownTxType, "bad-tx-type"},
}

const defaultRejectCode = "bad-reward-tx"

// RejectCode returns the short machine readable code for the error.
func RejectCode(err error) string {
	for _, rc := range rejectCodes {
		if errors.Is(err, rc.err) {
			return rc.code
		}
	}
	return defaultRejectCode
}

// Reject reports err to the state and returns it unchanged.
// State may be nil.
func Reject(state ValidationState, err error) error {
	if err == nil {
		return nil
	}
	code := RejectCode(err)
	rejected.WithLabelValues(code).Inc()
	if state != nil {
		state.Reject(Rejection{Score: RejectScore, Code: code, Err: err})
	}
	return err
}
