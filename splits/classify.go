package splits

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
)

// Classify maps a failure from any point of an orchestration (contract
// revert, transport error, signing error) onto the closed Reason set, with a
// human-readable message.
//
// Structured signals are checked before any text heuristic: a revert carried
// as an rpc.DataError payload, or a mined receipt with status 0
// (ErrExecutionReverted), is a revert even when its reason string mentions
// gas. Only unstructured errors fall through to message matching.
func Classify(err error) (Reason, string) {
	if err == nil {
		return ReasonFailed, ""
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		return ReasonReverted, err.Error()
	}
	if errors.Is(err, ErrExecutionReverted) {
		return ReasonReverted, err.Error()
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "rejected") || strings.Contains(msg, "denied"):
		return ReasonWalletRejected, "transaction rejected"
	case strings.Contains(msg, "gas") || strings.Contains(msg, "insufficient"):
		return ReasonInsufficientGas, err.Error()
	default:
		return ReasonFailed, err.Error()
	}
}
