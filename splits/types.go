// Package splits is the transaction orchestration layer for Cascade Splits:
// idempotent split creation, permissionless execution, and the closed
// failure taxonomy reported to callers.
//
// A split is a content-addressed contract instance holding one immutable
// distribution policy. Creating the same policy twice is a safe no-op;
// executing a split distributes whatever funds it holds, 1% protocol fee
// off the top.
package splits

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/cascade-protocol/splits-go/contracts"
	"github.com/cascade-protocol/splits-go/gas"
)

// Recipient count and share bounds enforced before any network call.
// The contracts enforce the same bounds on-chain.
const (
	MinRecipients = 1
	MaxRecipients = 20

	// ShareTotal is the required sum of recipient shares.
	ShareTotal = 100

	// RequiredTotalBps is the required sum of encoded basis points:
	// 99% of funds, reserving 1% as protocol fee.
	RequiredTotalBps = 9900

	// bpsPerShare converts a percentage share to fee-adjusted basis points.
	bpsPerShare = 99
)

// Default gas limits per operation, used when the caller supplies no gas
// options and no estimation.
const (
	DefaultGasCreate  uint64 = 300_000
	DefaultGasExecute uint64 = 600_000
)

// Recipient is a distribution target with a percentage share (1-100).
// Shares across one split must sum to exactly ShareTotal.
type Recipient struct {
	Address common.Address
	Share   int
}

// SplitConfig is the on-chain configuration of a deployed split.
type SplitConfig struct {
	Authority  common.Address
	Token      common.Address
	UniqueID   [32]byte
	Recipients []contracts.SplitRecipient
}

// EnsureStatus is the outcome class of an EnsureSplit call.
type EnsureStatus string

const (
	EnsureCreated  EnsureStatus = "CREATED"
	EnsureNoChange EnsureStatus = "NO_CHANGE"
	EnsureFailed   EnsureStatus = "FAILED"
)

// ExecuteStatus is the outcome class of an ExecuteSplit call.
type ExecuteStatus string

const (
	ExecuteExecuted ExecuteStatus = "EXECUTED"
	ExecuteSkipped  ExecuteStatus = "SKIPPED"
	ExecuteFailed   ExecuteStatus = "FAILED"
)

// Reason refines a FAILED or SKIPPED status. The set is closed: callers
// drive retry decisions off these values.
type Reason string

const (
	// Failure reasons.
	ReasonWalletRejected  Reason = "wallet_rejected"
	ReasonInsufficientGas Reason = "insufficient_gas"
	ReasonReverted        Reason = "transaction_reverted"
	ReasonFailed          Reason = "transaction_failed"

	// Skip reasons (ExecuteSplit only).
	ReasonNotASplit      Reason = "not_a_split"
	ReasonBelowThreshold Reason = "below_threshold"
	ReasonNoPendingFunds Reason = "no_pending_funds"
)

// EnsureParams describes the split EnsureSplit should make exist.
type EnsureParams struct {
	// UniqueID distinguishes splits with identical recipients. Normalized
	// to 32 bytes: shorter values are zero-padded, longer ones truncated.
	UniqueID []byte

	// Recipients with percentage shares summing to exactly 100.
	Recipients []Recipient

	// Authority controls the split. Zero value defaults to the signer.
	Authority common.Address

	// Token is the settlement token. Zero value defaults to the chain's
	// USDC deployment.
	Token common.Address

	// Gas selects the gas strategy. Nil uses the operation default.
	Gas *gas.Options
}

// ExecuteOptions tunes an ExecuteSplit call.
type ExecuteOptions struct {
	// MinBalance skips execution when the split's token balance is below
	// this floor. Nil disables the threshold check.
	MinBalance *big.Int

	// Gas selects the gas strategy. Nil uses the operation default.
	Gas *gas.Options
}

// EnsureResult is the only value EnsureSplit returns; expected failures are
// reported here, never as a Go error.
type EnsureResult struct {
	Status  EnsureStatus
	Split   common.Address // predicted/deployed address on CREATED and NO_CHANGE
	TxHash  common.Hash    // set on CREATED
	Reason  Reason         // set on FAILED
	Message string
}

// ExecuteResult is the only value ExecuteSplit returns.
type ExecuteResult struct {
	Status  ExecuteStatus
	TxHash  common.Hash // set on EXECUTED
	Reason  Reason      // set on SKIPPED and FAILED
	Message string
}
