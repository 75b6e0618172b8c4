package network

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// MockBackend is a test double for Backend.
// All function fields must be set before the corresponding method is called.
type MockBackend struct {
	ChainIDFn            func(ctx context.Context) (*big.Int, error)
	CodeAtFn             func(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	CallContractFn       func(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAtFn     func(ctx context.Context, account common.Address) (uint64, error)
	EstimateGasFn        func(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SuggestGasPriceFn    func(ctx context.Context) (*big.Int, error)
	SendTransactionFn    func(ctx context.Context, tx *types.Transaction) error
	TransactionReceiptFn func(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

var _ Backend = (*MockBackend)(nil)

func (m *MockBackend) ChainID(ctx context.Context) (*big.Int, error) {
	return m.ChainIDFn(ctx)
}
func (m *MockBackend) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	return m.CodeAtFn(ctx, account, blockNumber)
}
func (m *MockBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return m.CallContractFn(ctx, msg, blockNumber)
}
func (m *MockBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return m.PendingNonceAtFn(ctx, account)
}
func (m *MockBackend) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	return m.EstimateGasFn(ctx, msg)
}
func (m *MockBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return m.SuggestGasPriceFn(ctx)
}
func (m *MockBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	return m.SendTransactionFn(ctx, tx)
}
func (m *MockBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return m.TransactionReceiptFn(ctx, txHash)
}
