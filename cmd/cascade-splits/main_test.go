package main

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/cascade-protocol/splits-go/gas"
)

func TestParseRecipients(t *testing.T) {
	recipients, err := parseRecipients([]string{
		"0x3333333333333333333333333333333333333333:60",
		"0x4444444444444444444444444444444444444444:40",
	})
	require.NoError(t, err)
	require.Len(t, recipients, 2)
	assert.Equal(t, common.HexToAddress("0x3333333333333333333333333333333333333333"), recipients[0].Address)
	assert.Equal(t, 60, recipients[0].Share)
	assert.Equal(t, 40, recipients[1].Share)
}

func TestParseRecipientsRejectsMalformed(t *testing.T) {
	for _, entry := range []string{
		"0x3333333333333333333333333333333333333333", // no share
		"nothex:60",
		"0x3333333333333333333333333333333333333333:sixty",
	} {
		_, err := parseRecipients([]string{entry})
		assert.Error(t, err, entry)
	}
}

func TestParseGasOptionsFromFlags(t *testing.T) {
	var opts *gas.Options
	cmd := &cli.Command{
		Flags: gasFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			var err error
			opts, err = parseGasOptions(c)
			return err
		},
	}
	err := cmd.Run(context.Background(), []string{
		"test", "--gas-limit", "500000", "--max-fee", "30000000000",
	})
	require.NoError(t, err)
	require.NotNil(t, opts)
	assert.Equal(t, uint64(500_000), opts.GasLimit)
	assert.Equal(t, big.NewInt(30_000_000_000), opts.MaxFeePerGas)
	assert.Nil(t, opts.MaxPriorityFeePerGas)
}

func TestParseGasOptionsNilWhenUnset(t *testing.T) {
	var opts *gas.Options
	cmd := &cli.Command{
		Flags: gasFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			var err error
			opts, err = parseGasOptions(c)
			return err
		},
	}
	require.NoError(t, cmd.Run(context.Background(), []string{"test"}))
	assert.Nil(t, opts, "no gas flags means operation defaults")
}

func TestChainIDFlag(t *testing.T) {
	var chainID uint64
	cmd := &cli.Command{
		Flags: globalFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			chainID = c.Uint64("chain-id")
			return nil
		},
	}
	require.NoError(t, cmd.Run(context.Background(), []string{"test", "--chain-id", "84532"}))
	assert.Equal(t, uint64(84532), chainID)
}

func TestParseWei(t *testing.T) {
	v, err := parseWei("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = parseWei("30000000000")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(30_000_000_000), v)

	_, err = parseWei("1.5")
	assert.Error(t, err)
}
