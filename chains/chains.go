// Package chains holds the per-chain deployment table for Cascade Splits.
//
// The SplitFactory is deployed at the same address on every supported chain
// (CREATE2), so the table mostly varies in the default settlement token.
package chains

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Chain defines the Cascade Splits deployment parameters for one EVM chain.
type Chain struct {
	ID           uint64
	Name         string
	Factory      common.Address
	DefaultToken common.Address // USDC
}

// Supported chain IDs.
const (
	BaseMainnetID uint64 = 8453
	BaseSepoliaID uint64 = 84532
)

// Predefined chain configurations.
var (
	BaseMainnet = Chain{
		ID:           BaseMainnetID,
		Name:         "base",
		Factory:      common.HexToAddress("0x946Cd053514b1Ab7829dD8fEc85E0ade5550dcf7"),
		DefaultToken: common.HexToAddress("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"),
	}

	BaseSepolia = Chain{
		ID:           BaseSepoliaID,
		Name:         "base-sepolia",
		Factory:      common.HexToAddress("0x946Cd053514b1Ab7829dD8fEc85E0ade5550dcf7"),
		DefaultToken: common.HexToAddress("0x036CbD53842c5426634e7929541eC2318f3dCF7e"),
	}
)

// predefined maps chain IDs to their configs.
var predefined = map[uint64]*Chain{
	BaseMainnetID: &BaseMainnet,
	BaseSepoliaID: &BaseSepolia,
}

// Get returns the predefined chain config for the given chain ID.
// If the chain is not supported, it returns ErrUnsupportedChain.
func Get(chainID uint64) (*Chain, error) {
	if c, ok := predefined[chainID]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID)
}

// IsSupported reports whether the chain ID has a Cascade Splits deployment.
func IsSupported(chainID uint64) bool {
	_, ok := predefined[chainID]
	return ok
}

// FactoryAddress returns the SplitFactory address for the given chain ID.
func FactoryAddress(chainID uint64) (common.Address, error) {
	c, err := Get(chainID)
	if err != nil {
		return common.Address{}, err
	}
	return c.Factory, nil
}

// DefaultTokenAddress returns the default settlement token (USDC) for the
// given chain ID.
func DefaultTokenAddress(chainID uint64) (common.Address, error) {
	c, err := Get(chainID)
	if err != nil {
		return common.Address{}, err
	}
	return c.DefaultToken, nil
}
