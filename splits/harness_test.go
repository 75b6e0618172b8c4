package splits

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/cascade-protocol/splits-go/chains"
	"github.com/cascade-protocol/splits-go/contracts"
	"github.com/cascade-protocol/splits-go/network"
)

// Hardhat's well-known first dev account; never holds real funds.
const testKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var (
	testAlice     = common.HexToAddress("0x3333333333333333333333333333333333333333")
	testBob       = common.HexToAddress("0x4444444444444444444444444444444444444444")
	testPredicted = common.HexToAddress("0x9999999999999999999999999999999999999999")
	testSplit     = common.HexToAddress("0x7777777777777777777777777777777777777777")
)

func newTestClient(t *testing.T, backend network.Backend) *Client {
	t.Helper()
	client, err := NewClient(context.Background(), Config{
		Backend:    backend,
		PrivateKey: testKey,
		ChainID:    chains.BaseSepoliaID,
	})
	require.NoError(t, err)
	return client
}

func sixtyForty() []Recipient {
	return []Recipient{
		{Address: testAlice, Share: 60},
		{Address: testBob, Share: 40},
	}
}

// packOutput encodes a fake call result the way the node would.
func packOutput(t *testing.T, contractABI abi.ABI, method string, vals ...interface{}) []byte {
	t.Helper()
	out, err := contractABI.Methods[method].Outputs.Pack(vals...)
	require.NoError(t, err)
	return out
}

// methodID resolves a method selector from either contract ABI.
func methodID(name string) []byte {
	if m, ok := contracts.SplitABI.Methods[name]; ok {
		return m.ID
	}
	if m, ok := contracts.FactoryABI.Methods[name]; ok {
		return m.ID
	}
	panic("unknown method " + name)
}

func hasSelector(data, sel []byte) bool {
	return len(data) >= 4 && string(data[:4]) == string(sel)
}

// routeViews builds a CallContract function answering each named method
// with a canned result. Unrouted calls fail the call, like a node would
// reject an unknown contract.
func routeViews(views map[string][]byte) func(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return func(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
		for name, resp := range views {
			if hasSelector(msg.Data, methodID(name)) {
				return resp, nil
			}
		}
		return nil, fmt.Errorf("unexpected call %x", msg.Data[:4])
	}
}

// submissionBackend extends canned views with the write path: nonce, gas
// price, broadcast capture, and an immediate receipt.
func submissionBackend(views map[string][]byte, nonce uint64, receiptStatus uint64, sent **types.Transaction) *network.MockBackend {
	return &network.MockBackend{
		CallContractFn: routeViews(views),
		CodeAtFn: func(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
			return nil, nil
		},
		PendingNonceAtFn: func(ctx context.Context, account common.Address) (uint64, error) {
			return nonce, nil
		},
		SuggestGasPriceFn: func(ctx context.Context) (*big.Int, error) {
			return big.NewInt(1_000_000_000), nil
		},
		SendTransactionFn: func(ctx context.Context, tx *types.Transaction) error {
			*sent = tx
			return nil
		},
		TransactionReceiptFn: func(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
			return &types.Receipt{Status: receiptStatus, TxHash: txHash}, nil
		},
	}
}
