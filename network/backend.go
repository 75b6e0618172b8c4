// Package network provides the node-facing capability used by the splits
// orchestration layer: a narrow view of an EVM JSON-RPC client plus a
// confirmation wait. The orchestrators are written against the Backend
// interface so they run identically against a live node or a test double.
package network

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Backend is the set of node operations the SDK depends on. It is satisfied
// directly by *ethclient.Client.
type Backend interface {
	// ChainID returns the chain ID of the connected node.
	ChainID(ctx context.Context) (*big.Int, error)

	// CodeAt returns the contract code at the given account. A nil block
	// number means the latest state.
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)

	// CallContract executes a read-only contract call.
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)

	// PendingNonceAt returns the next nonce for the account, including
	// pending transactions.
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)

	// EstimateGas estimates the gas needed to execute the given call.
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)

	// SuggestGasPrice returns the node's suggested legacy gas price.
	SuggestGasPrice(ctx context.Context) (*big.Int, error)

	// SendTransaction broadcasts a signed transaction.
	SendTransaction(ctx context.Context, tx *types.Transaction) error

	// TransactionReceipt returns the receipt of a mined transaction, or
	// ethereum.NotFound while it is still pending.
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Compile-time interface check.
var _ Backend = (*ethclient.Client)(nil)
