package splits

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"

	"github.com/cascade-protocol/splits-go/chains"
	"github.com/cascade-protocol/splits-go/gas"
	"github.com/cascade-protocol/splits-go/network"
)

// Config configures a Client. PrivateKey and either RPCURL or Backend are
// required; everything else has a default.
type Config struct {
	// RPCURL is the node's JSON-RPC endpoint. Ignored when Backend is set.
	RPCURL string

	// Backend overrides the dialed client; used for tests and custom
	// transports.
	Backend network.Backend

	// PrivateKey is the signing key as a hex string, with or without the
	// 0x prefix.
	PrivateKey string

	// ChainID selects the deployment table entry. Zero defaults to Base
	// mainnet (8453). Unsupported chains are rejected here, before any
	// operation is attempted.
	ChainID uint64

	// Factory overrides the chain's factory address. Zero uses the default.
	Factory common.Address

	// Logger receives debug-level orchestration events. Nil disables logging.
	Logger *zerolog.Logger
}

// Client orchestrates Cascade Splits operations for one signing account on
// one chain. The signing key and backend are read-only after construction;
// a Client is safe for concurrent use, though concurrent submissions from
// the same account must be serialized by the caller (nonces are fetched
// fresh per call, not coordinated).
type Client struct {
	backend      network.Backend
	key          *ecdsa.PrivateKey
	sender       common.Address
	chainID      *big.Int
	signer       types.Signer
	factory      common.Address
	defaultToken common.Address
	log          zerolog.Logger
}

// NewClient validates the configuration and connects to the chain.
// Unsupported chain IDs are rejected immediately.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	chainID := cfg.ChainID
	if chainID == 0 {
		chainID = chains.BaseMainnetID
	}
	chain, err := chains.Get(chainID)
	if err != nil {
		return nil, err
	}

	if cfg.PrivateKey == "" {
		return nil, ErrMissingPrivateKey
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("splits: invalid private key: %w", err)
	}

	backend := cfg.Backend
	if backend == nil {
		backend, err = network.Dial(ctx, cfg.RPCURL)
		if err != nil {
			return nil, err
		}
	}

	factory := chain.Factory
	if cfg.Factory != (common.Address{}) {
		factory = cfg.Factory
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	id := new(big.Int).SetUint64(chainID)
	return &Client{
		backend:      backend,
		key:          key,
		sender:       crypto.PubkeyToAddress(key.PublicKey),
		chainID:      id,
		signer:       types.LatestSignerForChainID(id),
		factory:      factory,
		defaultToken: chain.DefaultToken,
		log:          logger.With().Str("component", "splits").Logger(),
	}, nil
}

// Address returns the signing account's address.
func (c *Client) Address() common.Address { return c.sender }

// ChainID returns the configured chain ID.
func (c *Client) ChainID() uint64 { return c.chainID.Uint64() }

// Factory returns the SplitFactory address in use.
func (c *Client) Factory() common.Address { return c.factory }

// DefaultToken returns the chain's default settlement token.
func (c *Client) DefaultToken() common.Address { return c.defaultToken }

// call performs a read-only contract call against the latest state.
func (c *Client) call(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	return c.backend.CallContract(ctx, ethereum.CallMsg{From: c.sender, To: &to, Data: data}, nil)
}

// estimator returns a gas.Estimator for the pending call, so the builder
// can run an estimation round trip only when the gas options ask for one.
func (c *Client) estimator(to common.Address, data []byte) gas.Estimator {
	return func(ctx context.Context) (uint64, error) {
		return c.backend.EstimateGas(ctx, ethereum.CallMsg{From: c.sender, To: &to, Data: data})
	}
}

// submit signs the prepared call, broadcasts it, and blocks until inclusion.
// Legacy transactions take their gas price from the node at this point;
// EIP-1559 parameters are used as built.
func (c *Client) submit(ctx context.Context, to common.Address, data []byte, p *gas.TxParams) (*types.Receipt, common.Hash, error) {
	var txdata types.TxData
	if p.DynamicFee() {
		txdata = &types.DynamicFeeTx{
			ChainID:   c.chainID,
			Nonce:     p.Nonce,
			GasTipCap: p.MaxPriorityFeePerGas,
			GasFeeCap: p.MaxFeePerGas,
			Gas:       p.GasLimit,
			To:        &to,
			Value:     new(big.Int),
			Data:      data,
		}
	} else {
		gasPrice, err := c.backend.SuggestGasPrice(ctx)
		if err != nil {
			return nil, common.Hash{}, fmt.Errorf("splits: gas price: %w", err)
		}
		txdata = &types.LegacyTx{
			Nonce:    p.Nonce,
			GasPrice: gasPrice,
			Gas:      p.GasLimit,
			To:       &to,
			Value:    new(big.Int),
			Data:     data,
		}
	}

	tx, err := types.SignNewTx(c.key, c.signer, txdata)
	if err != nil {
		return nil, common.Hash{}, fmt.Errorf("splits: sign: %w", err)
	}

	if err := c.backend.SendTransaction(ctx, tx); err != nil {
		return nil, tx.Hash(), err
	}

	c.log.Debug().
		Str("tx", tx.Hash().Hex()).
		Str("to", to.Hex()).
		Uint64("nonce", p.Nonce).
		Uint64("gas_limit", p.GasLimit).
		Msg("transaction submitted")

	receipt, err := network.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, tx.Hash(), err
	}
	return receipt, tx.Hash(), nil
}
