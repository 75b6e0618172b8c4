package network

import "fmt"

// RPCConfig holds the connection parameters for an EVM node's JSON-RPC
// interface.
type RPCConfig struct {
	URL     string `json:"url"`
	ChainID uint64 `json:"chain_id"`
}

// ChainPresets contains default public RPC endpoints for known chains.
// Public endpoints are rate-limited; production deployments should configure
// their own.
var ChainPresets = map[uint64]RPCConfig{
	8453:  {URL: "https://mainnet.base.org", ChainID: 8453},
	84532: {URL: "https://sepolia.base.org", ChainID: 84532},
}

// ResolveConfig merges RPC configuration from three sources with decreasing
// priority:
//  1. CLI flags (highest priority)
//  2. Environment variables (CASCADE_RPC_URL)
//  3. Chain presets (lowest priority, known chains only)
//
// Unknown chains have no preset, so they require explicit configuration.
func ResolveConfig(flagURL string, env map[string]string, chainID uint64) (*RPCConfig, error) {
	result := RPCConfig{ChainID: chainID}

	// Layer 1: start with preset defaults if available.
	if preset, ok := ChainPresets[chainID]; ok {
		result = preset
	}

	// Layer 2: environment variables override preset defaults.
	if env != nil {
		if v, ok := env["CASCADE_RPC_URL"]; ok && v != "" {
			result.URL = v
		}
	}

	// Layer 3: CLI flags have highest priority.
	if flagURL != "" {
		result.URL = flagURL
	}

	if result.URL == "" {
		return nil, fmt.Errorf("network: chain %d requires explicit RPC configuration (set --rpc-url or CASCADE_RPC_URL)", chainID)
	}

	return &result, nil
}
