// Package gas builds transaction parameters from a declarative gas
// configuration. Three strategies are supported: a fixed per-operation
// default, dynamic estimation with a safety margin, and explicit
// EIP-1559 fee pricing.
package gas

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
)

// estimateBufferNum/Den apply a +20% safety margin to estimated gas,
// rounded down.
const (
	estimateBufferNum = 12
	estimateBufferDen = 10
)

// DefaultPriorityFee is the priority fee applied to EIP-1559 transactions
// when the caller sets MaxFeePerGas without MaxPriorityFeePerGas: 1 gwei.
func DefaultPriorityFee() *big.Int {
	return big.NewInt(params.GWei)
}

// Options declares the caller's gas strategy for one transaction.
// The zero value means: default gas limit, legacy pricing from the node.
type Options struct {
	// EstimateGas requests a gas estimation round trip instead of the
	// operation's default limit. Ignored when GasLimit is set.
	EstimateGas bool

	// GasLimit fixes the gas limit explicitly. Takes precedence over
	// EstimateGas; the estimator is never invoked when set.
	GasLimit uint64

	// MaxFeePerGas switches the transaction to EIP-1559 pricing.
	MaxFeePerGas *big.Int

	// MaxPriorityFeePerGas caps the tip for EIP-1559 transactions.
	// Without MaxFeePerGas it has no effect.
	MaxPriorityFeePerGas *big.Int
}

// TxParams is a built parameter set for one transaction. Fee fields are nil
// for legacy transactions; the submitter asks the node for a gas price then.
type TxParams struct {
	Nonce                uint64
	GasLimit             uint64
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// DynamicFee reports whether the parameters describe an EIP-1559
// (type 2) transaction.
func (p *TxParams) DynamicFee() bool {
	return p.MaxFeePerGas != nil
}

// NonceSource yields the sender's next account nonce.
type NonceSource interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
}

// Estimator estimates the gas needed for the pending contract call.
// A nil Estimator disables estimation and falls back to the default limit.
type Estimator func(ctx context.Context) (uint64, error)

// BuildTxParams assembles transaction parameters for sender.
//
// The nonce is always fetched fresh. The gas limit resolves in priority
// order: explicit GasLimit, then estimation (+20% margin) when requested and
// an estimator is available, then defaultGasLimit. Fee fields are emitted
// only when MaxFeePerGas is set.
func BuildTxParams(ctx context.Context, nonces NonceSource, sender common.Address, defaultGasLimit uint64, opts *Options, estimate Estimator) (*TxParams, error) {
	nonce, err := nonces.PendingNonceAt(ctx, sender)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNonceUnavailable, err)
	}

	p := &TxParams{Nonce: nonce, GasLimit: defaultGasLimit}
	if opts == nil {
		return p, nil
	}

	switch {
	case opts.GasLimit != 0:
		p.GasLimit = opts.GasLimit
	case opts.EstimateGas && estimate != nil:
		estimated, err := estimate(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEstimateFailed, err)
		}
		p.GasLimit = estimated * estimateBufferNum / estimateBufferDen
	}

	if opts.MaxFeePerGas != nil {
		p.MaxFeePerGas = new(big.Int).Set(opts.MaxFeePerGas)
		if opts.MaxPriorityFeePerGas != nil {
			p.MaxPriorityFeePerGas = new(big.Int).Set(opts.MaxPriorityFeePerGas)
		} else {
			p.MaxPriorityFeePerGas = DefaultPriorityFee()
		}
	}

	return p, nil
}
