package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainPresets(t *testing.T) {
	tests := []struct {
		name    string
		chainID uint64
		url     string
	}{
		{"base mainnet", 8453, "https://mainnet.base.org"},
		{"base sepolia", 84532, "https://sepolia.base.org"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preset, ok := ChainPresets[tt.chainID]
			require.True(t, ok, "preset should exist for chain %d", tt.chainID)
			assert.Equal(t, tt.url, preset.URL)
			assert.Equal(t, tt.chainID, preset.ChainID)
		})
	}
}

func TestResolveConfigFlagOverridesAll(t *testing.T) {
	env := map[string]string{"CASCADE_RPC_URL": "https://env-node:8545"}
	cfg, err := ResolveConfig("https://custom:9999", env, 8453)
	require.NoError(t, err)
	assert.Equal(t, "https://custom:9999", cfg.URL)
	assert.Equal(t, uint64(8453), cfg.ChainID)
}

func TestResolveConfigEnvOverridesPreset(t *testing.T) {
	env := map[string]string{"CASCADE_RPC_URL": "https://env-node:8545"}
	cfg, err := ResolveConfig("", env, 8453)
	require.NoError(t, err)
	assert.Equal(t, "https://env-node:8545", cfg.URL)
}

func TestResolveConfigPresetFallback(t *testing.T) {
	cfg, err := ResolveConfig("", nil, 84532)
	require.NoError(t, err)
	assert.Equal(t, "https://sepolia.base.org", cfg.URL)
}

func TestResolveConfigUnknownChainRequiresExplicit(t *testing.T) {
	_, err := ResolveConfig("", nil, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10")

	cfg, err := ResolveConfig("https://optimism-node:8545", nil, 10)
	require.NoError(t, err)
	assert.Equal(t, "https://optimism-node:8545", cfg.URL)
}

func TestResolveConfigEmptyEnvValueIgnored(t *testing.T) {
	env := map[string]string{"CASCADE_RPC_URL": ""}
	cfg, err := ResolveConfig("", env, 8453)
	require.NoError(t, err)
	assert.Equal(t, "https://mainnet.base.org", cfg.URL)
}
