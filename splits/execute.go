package splits

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/cascade-protocol/splits-go/contracts"
	"github.com/cascade-protocol/splits-go/gas"
)

// ExecuteSplit triggers distribution of a split's funds. The operation is
// permissionless: any account with gas may execute any valid split.
//
// Pre-checks run in order and short-circuit to SKIPPED: the address must be
// a recognized split instance, its balance must meet the optional
// MinBalance floor, and it must have undistributed funds. Only then is the
// executeSplit transaction submitted and confirmed. All failures come back
// classified in the result; the method never returns a Go error.
func (c *Client) ExecuteSplit(ctx context.Context, split common.Address, opts *ExecuteOptions) *ExecuteResult {
	if opts == nil {
		opts = &ExecuteOptions{}
	}

	if !c.IsSplit(ctx, split) {
		return &ExecuteResult{Status: ExecuteSkipped, Reason: ReasonNotASplit}
	}

	if opts.MinBalance != nil {
		balance, err := c.SplitBalance(ctx, split)
		if err != nil {
			return executeFailure(err)
		}
		if balance.Cmp(opts.MinBalance) < 0 {
			c.log.Debug().
				Str("split", split.Hex()).
				Str("balance", balance.String()).
				Str("min_balance", opts.MinBalance.String()).
				Msg("balance below threshold")
			return &ExecuteResult{Status: ExecuteSkipped, Reason: ReasonBelowThreshold}
		}
	}

	pending, err := c.HasPendingFunds(ctx, split)
	if err != nil {
		return executeFailure(err)
	}
	if !pending {
		return &ExecuteResult{Status: ExecuteSkipped, Reason: ReasonNoPendingFunds}
	}

	data, err := contracts.PackSplitCall("executeSplit")
	if err != nil {
		return executeFailure(err)
	}

	txParams, err := gas.BuildTxParams(ctx, c.backend, c.sender, DefaultGasExecute, opts.Gas, c.estimator(split, data))
	if err != nil {
		return executeFailure(err)
	}

	receipt, txHash, err := c.submit(ctx, split, data, txParams)
	if err != nil {
		return executeFailure(err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return executeFailure(ErrExecutionReverted)
	}

	event := c.log.Info().Str("split", split.Hex()).Str("tx", txHash.Hex())
	if executed := contracts.ExecutedEventFromReceipt(receipt); executed != nil {
		event = event.
			Str("total", executed.TotalAmount.String()).
			Str("protocol_fee", executed.ProtocolFee.String())
	}
	event.Msg("split executed")

	return &ExecuteResult{Status: ExecuteExecuted, TxHash: txHash}
}

// executeFailure classifies an orchestration error into a FAILED result.
func executeFailure(err error) *ExecuteResult {
	reason, msg := Classify(err)
	return &ExecuteResult{Status: ExecuteFailed, Reason: reason, Message: msg}
}
