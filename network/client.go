package network

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Compile-time check: Backend carries everything bind.WaitMined needs.
var _ bind.DeployBackend = (Backend)(nil)

// Dial connects to an EVM node's JSON-RPC endpoint.
func Dial(ctx context.Context, rawurl string) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, rawurl)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	return client, nil
}

// WaitMined blocks until the transaction is included in a block and returns
// its receipt. It imposes no timeout of its own; cancellation is the caller's
// context. The receipt is returned whether the transaction succeeded or
// reverted -- callers must inspect receipt.Status.
func WaitMined(ctx context.Context, b Backend, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, b, tx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfirmationFailed, err)
	}
	return receipt, nil
}
