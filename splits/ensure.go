package splits

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/cascade-protocol/splits-go/contracts"
	"github.com/cascade-protocol/splits-go/gas"
)

// EnsureSplit idempotently makes the described split exist on-chain.
//
//   - Invalid input fails locally, before any network round trip.
//   - If the split is already deployed at its predicted address, nothing is
//     sent and the result is NO_CHANGE. Deployment is content-addressed, so
//     code at the predicted address implies identical parameters.
//   - Otherwise a createSplitConfig transaction is submitted and confirmed,
//     and the result is CREATED with the address and transaction hash.
//
// Splits are immutable once deployed: there is no update path, only
// create-or-no-op. All failures come back classified in the result; the
// method never returns a Go error.
func (c *Client) EnsureSplit(ctx context.Context, params EnsureParams) *EnsureResult {
	authority := params.Authority
	if authority == (common.Address{}) {
		authority = c.sender
	}
	token := params.Token
	if token == (common.Address{}) {
		token = c.defaultToken
	}
	uniqueID := NormalizeUniqueID(params.UniqueID)

	// Validation happens entirely off-chain: bad input never costs a round
	// trip, let alone gas.
	if err := ValidateRecipientCount(len(params.Recipients)); err != nil {
		return &EnsureResult{Status: EnsureFailed, Reason: ReasonFailed, Message: err.Error()}
	}
	encoded, err := ConvertRecipients(params.Recipients)
	if err != nil {
		return &EnsureResult{Status: EnsureFailed, Reason: ReasonFailed, Message: err.Error()}
	}
	if err := validateEncodedTotal(encoded); err != nil {
		return &EnsureResult{Status: EnsureFailed, Reason: ReasonFailed, Message: err.Error()}
	}

	predicted, err := c.predictEncoded(ctx, authority, token, uniqueID, encoded)
	if err != nil {
		return ensureFailure(err)
	}

	// Existence check before building anything: a second ensure with the
	// same parameters must not send a transaction.
	code, err := c.backend.CodeAt(ctx, predicted, nil)
	if err != nil {
		return ensureFailure(err)
	}
	if len(code) > 0 {
		c.log.Debug().Str("split", predicted.Hex()).Msg("split already deployed")
		return &EnsureResult{Status: EnsureNoChange, Split: predicted}
	}

	data, err := contracts.PackCreateSplitConfig(authority, token, uniqueID, encoded)
	if err != nil {
		return ensureFailure(err)
	}

	txParams, err := gas.BuildTxParams(ctx, c.backend, c.sender, DefaultGasCreate, params.Gas, c.estimator(c.factory, data))
	if err != nil {
		return ensureFailure(err)
	}

	receipt, txHash, err := c.submit(ctx, c.factory, data, txParams)
	if err != nil {
		return ensureFailure(err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return ensureFailure(ErrExecutionReverted)
	}

	c.log.Info().
		Str("split", predicted.Hex()).
		Str("tx", txHash.Hex()).
		Msg("split created")

	return &EnsureResult{Status: EnsureCreated, Split: predicted, TxHash: txHash}
}

// ensureFailure classifies an orchestration error into a FAILED result.
func ensureFailure(err error) *EnsureResult {
	reason, msg := Classify(err)
	return &EnsureResult{Status: EnsureFailed, Reason: reason, Message: msg}
}
