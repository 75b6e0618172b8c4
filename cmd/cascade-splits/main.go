// Cascade Splits CLI
//
// Create and execute revenue splits on Base.
//
// Usage:
//
//	cascade-splits ensure --id invoice-42 --recipient 0xabc..:60 --recipient 0xdef..:40
//	cascade-splits execute 0xSPLIT
//	cascade-splits status 0xSPLIT
package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/cascade-protocol/splits-go/chains"
	"github.com/cascade-protocol/splits-go/gas"
	"github.com/cascade-protocol/splits-go/journal"
	"github.com/cascade-protocol/splits-go/network"
	"github.com/cascade-protocol/splits-go/splits"
)

// Set by goreleaser ldflags
var (
	version = "dev"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "rpc-url",
			Usage: "JSON-RPC endpoint of the target chain (default: public endpoint)",
		},
		&cli.StringFlag{
			Name:    "private-key",
			Usage:   "Signing key (hex, with or without 0x)",
			Sources: cli.EnvVars("CASCADE_PRIVATE_KEY"),
		},
		&cli.Uint64Flag{
			Name:    "chain-id",
			Usage:   "Chain ID (8453 Base, 84532 Base Sepolia)",
			Sources: cli.EnvVars("CASCADE_CHAIN_ID"),
		},
		&cli.StringFlag{
			Name:    "journal",
			Usage:   "Path to a local journal database; empty disables journaling",
			Sources: cli.EnvVars("CASCADE_JOURNAL"),
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
			Usage:   "Enable debug output",
		},
	}
}

func gasFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "estimate-gas",
			Usage: "Estimate the gas limit instead of using the operation default",
		},
		&cli.Uint64Flag{
			Name:  "gas-limit",
			Usage: "Explicit gas limit (overrides estimation and defaults)",
		},
		&cli.StringFlag{
			Name:  "max-fee",
			Usage: "EIP-1559 max fee per gas, in wei",
		},
		&cli.StringFlag{
			Name:  "max-priority-fee",
			Usage: "EIP-1559 max priority fee per gas, in wei",
		},
	}
}

func main() {
	cmd := &cli.Command{
		Name:    "cascade-splits",
		Usage:   "Create and execute Cascade revenue splits",
		Version: version,
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			{
				Name:  "ensure",
				Usage: "Make a split exist on-chain (no-op if already deployed)",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Unique identifier for the split (hashed to 32 bytes)",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:     "recipient",
						Aliases:  []string{"r"},
						Usage:    "Recipient as address:share, repeatable; shares must sum to 100",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "authority",
						Usage: "Controlling authority (defaults to the signer)",
					},
					&cli.StringFlag{
						Name:  "token",
						Usage: "Settlement token (defaults to the chain's USDC)",
					},
				}, gasFlags()...),
				Action: runEnsure,
			},
			{
				Name:  "execute",
				Usage: "Distribute a split's pending funds",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "min-balance",
						Usage: "Skip unless the split's balance meets this floor (smallest unit)",
					},
				}, gasFlags()...),
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "split", UsageText: "Split address"},
				},
				Action: runExecute,
			},
			{
				Name:  "status",
				Usage: "Show a split's configuration and balances",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "split", UsageText: "Split address"},
				},
				Action: runStatus,
			},
			{
				Name:  "predict",
				Usage: "Print the address a split would deploy to",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "Unique identifier", Required: true},
					&cli.StringSliceFlag{Name: "recipient", Aliases: []string{"r"}, Usage: "Recipient as address:share", Required: true},
					&cli.StringFlag{Name: "authority", Usage: "Controlling authority (defaults to the signer)"},
					&cli.StringFlag{Name: "token", Usage: "Settlement token (defaults to the chain's USDC)"},
				},
				Action: runPredict,
			},
			{
				Name:  "history",
				Usage: "Show journaled operations for a split",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "split", UsageText: "Split address"},
				},
				Action: runHistory,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func newClient(ctx context.Context, cmd *cli.Command) (*splits.Client, error) {
	logger := zerolog.Nop()
	if cmd.Bool("debug") {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	chainID := cmd.Uint64("chain-id")
	if chainID == 0 {
		chainID = chains.BaseMainnetID
	}
	rpcCfg, err := network.ResolveConfig(cmd.String("rpc-url"), envMap(), chainID)
	if err != nil {
		return nil, err
	}

	return splits.NewClient(ctx, splits.Config{
		RPCURL:     rpcCfg.URL,
		PrivateKey: cmd.String("private-key"),
		ChainID:    chainID,
		Logger:     &logger,
	})
}

// envMap collects the environment variables ResolveConfig layers in.
func envMap() map[string]string {
	return map[string]string{
		"CASCADE_RPC_URL": os.Getenv("CASCADE_RPC_URL"),
	}
}

// parseRecipients parses repeated address:share flags.
func parseRecipients(raw []string) ([]splits.Recipient, error) {
	recipients := make([]splits.Recipient, 0, len(raw))
	for _, entry := range raw {
		addr, shareStr, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("recipient %q: expected address:share", entry)
		}
		if !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("recipient %q: invalid address", entry)
		}
		share, err := strconv.Atoi(shareStr)
		if err != nil {
			return nil, fmt.Errorf("recipient %q: invalid share: %w", entry, err)
		}
		recipients = append(recipients, splits.Recipient{
			Address: common.HexToAddress(addr),
			Share:   share,
		})
	}
	return recipients, nil
}

func parseGasOptions(cmd *cli.Command) (*gas.Options, error) {
	opts := &gas.Options{
		EstimateGas: cmd.Bool("estimate-gas"),
		GasLimit:    cmd.Uint64("gas-limit"),
	}
	var err error
	if opts.MaxFeePerGas, err = parseWei(cmd.String("max-fee")); err != nil {
		return nil, fmt.Errorf("--max-fee: %w", err)
	}
	if opts.MaxPriorityFeePerGas, err = parseWei(cmd.String("max-priority-fee")); err != nil {
		return nil, fmt.Errorf("--max-priority-fee: %w", err)
	}
	if !opts.EstimateGas && opts.GasLimit == 0 && opts.MaxFeePerGas == nil && opts.MaxPriorityFeePerGas == nil {
		return nil, nil
	}
	return opts, nil
}

func parseWei(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid wei amount %q", s)
	}
	return v, nil
}

func parseSplitArg(cmd *cli.Command) (common.Address, error) {
	raw := cmd.StringArg("split")
	if raw == "" {
		return common.Address{}, fmt.Errorf("split address argument is required")
	}
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("invalid split address %q", raw)
	}
	return common.HexToAddress(raw), nil
}

func openJournal(cmd *cli.Command) (*journal.Journal, error) {
	path := cmd.String("journal")
	if path == "" {
		return nil, nil
	}
	return journal.Open(path)
}

func record(j *journal.Journal, rec *journal.Record) {
	if j == nil {
		return
	}
	if err := j.Append(rec); err != nil {
		color.Yellow("journal: %v", err)
	}
}

func runEnsure(ctx context.Context, cmd *cli.Command) error {
	client, err := newClient(ctx, cmd)
	if err != nil {
		return err
	}
	recipients, err := parseRecipients(cmd.StringSlice("recipient"))
	if err != nil {
		return err
	}
	gasOpts, err := parseGasOptions(cmd)
	if err != nil {
		return err
	}
	j, err := openJournal(cmd)
	if err != nil {
		return err
	}
	if j != nil {
		defer j.Close()
	}

	id := splits.DeriveUniqueID(cmd.String("id"))
	params := splits.EnsureParams{
		UniqueID:   id[:],
		Recipients: recipients,
		Gas:        gasOpts,
	}
	if a := cmd.String("authority"); a != "" {
		params.Authority = common.HexToAddress(a)
	}
	if t := cmd.String("token"); t != "" {
		params.Token = common.HexToAddress(t)
	}

	result := client.EnsureSplit(ctx, params)
	record(j, &journal.Record{
		Kind:    journal.KindEnsure,
		ChainID: client.ChainID(),
		Split:   result.Split,
		TxHash:  result.TxHash,
		Status:  string(result.Status),
		Reason:  string(result.Reason),
		Message: result.Message,
	})

	switch result.Status {
	case splits.EnsureCreated:
		color.Green("✓ Split created")
		fmt.Printf("%s %s\n", color.CyanString("Address:"), result.Split.Hex())
		fmt.Printf("%s %s\n", color.CyanString("Tx:"), result.TxHash.Hex())
	case splits.EnsureNoChange:
		color.Green("✓ Split already deployed")
		fmt.Printf("%s %s\n", color.CyanString("Address:"), result.Split.Hex())
	case splits.EnsureFailed:
		return fmt.Errorf("%s: %s", result.Reason, result.Message)
	}
	return nil
}

func runExecute(ctx context.Context, cmd *cli.Command) error {
	client, err := newClient(ctx, cmd)
	if err != nil {
		return err
	}
	split, err := parseSplitArg(cmd)
	if err != nil {
		return err
	}
	gasOpts, err := parseGasOptions(cmd)
	if err != nil {
		return err
	}
	minBalance, err := parseWei(cmd.String("min-balance"))
	if err != nil {
		return fmt.Errorf("--min-balance: %w", err)
	}
	j, err := openJournal(cmd)
	if err != nil {
		return err
	}
	if j != nil {
		defer j.Close()
	}

	result := client.ExecuteSplit(ctx, split, &splits.ExecuteOptions{
		MinBalance: minBalance,
		Gas:        gasOpts,
	})
	record(j, &journal.Record{
		Kind:    journal.KindExecute,
		ChainID: client.ChainID(),
		Split:   split,
		TxHash:  result.TxHash,
		Status:  string(result.Status),
		Reason:  string(result.Reason),
		Message: result.Message,
	})

	switch result.Status {
	case splits.ExecuteExecuted:
		color.Green("✓ Split executed")
		fmt.Printf("%s %s\n", color.CyanString("Tx:"), result.TxHash.Hex())
	case splits.ExecuteSkipped:
		color.Yellow("Skipped: %s", result.Reason)
	case splits.ExecuteFailed:
		return fmt.Errorf("%s: %s", result.Reason, result.Message)
	}
	return nil
}

func runStatus(ctx context.Context, cmd *cli.Command) error {
	client, err := newClient(ctx, cmd)
	if err != nil {
		return err
	}
	split, err := parseSplitArg(cmd)
	if err != nil {
		return err
	}

	cfg := client.GetSplitConfig(ctx, split)
	if cfg == nil {
		color.Yellow("Not a Cascade split: %s", split.Hex())
		return nil
	}

	color.New(color.Bold).Println("Cascade Split")
	color.New(color.FgHiBlack).Println(strings.Repeat("─", 40))
	fmt.Printf("%s %s\n", color.CyanString("Address:"), split.Hex())
	fmt.Printf("%s %s\n", color.CyanString("Authority:"), cfg.Authority.Hex())
	fmt.Printf("%s %s\n", color.CyanString("Token:"), cfg.Token.Hex())
	fmt.Printf("%s 0x%x\n", color.CyanString("Unique ID:"), cfg.UniqueID)
	for _, r := range cfg.Recipients {
		fmt.Printf("%s %s %d bps\n", color.CyanString("Recipient:"), r.Addr.Hex(), r.PercentageBps)
	}

	if balance, err := client.SplitBalance(ctx, split); err == nil {
		fmt.Printf("%s %s\n", color.CyanString("Balance:"), balance.String())
	}
	if pending, err := client.PendingAmount(ctx, split); err == nil {
		fmt.Printf("%s %s\n", color.CyanString("Pending:"), pending.String())
	}
	if unclaimed, err := client.TotalUnclaimed(ctx, split); err == nil {
		fmt.Printf("%s %s\n", color.CyanString("Unclaimed:"), unclaimed.String())
	}
	return nil
}

func runPredict(ctx context.Context, cmd *cli.Command) error {
	client, err := newClient(ctx, cmd)
	if err != nil {
		return err
	}
	recipients, err := parseRecipients(cmd.StringSlice("recipient"))
	if err != nil {
		return err
	}

	var authority, token common.Address
	if a := cmd.String("authority"); a != "" {
		authority = common.HexToAddress(a)
	}
	if t := cmd.String("token"); t != "" {
		token = common.HexToAddress(t)
	}

	id := splits.DeriveUniqueID(cmd.String("id"))
	addr, err := client.PredictSplitAddress(ctx, id[:], recipients, authority, token)
	if err != nil {
		return err
	}
	fmt.Println(addr.Hex())
	return nil
}

func runHistory(ctx context.Context, cmd *cli.Command) error {
	split, err := parseSplitArg(cmd)
	if err != nil {
		return err
	}
	j, err := openJournal(cmd)
	if err != nil {
		return err
	}
	if j == nil {
		return fmt.Errorf("--journal path is required for history")
	}
	defer j.Close()

	records, err := j.BySplit(split)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		color.Yellow("No journaled operations for %s", split.Hex())
		return nil
	}
	for _, rec := range records {
		line := fmt.Sprintf("%s %-7s %-9s", rec.At.Format("2006-01-02 15:04:05"), rec.Kind, rec.Status)
		if rec.TxHash != (common.Hash{}) {
			line += " " + rec.TxHash.Hex()
		}
		if rec.Reason != "" {
			line += " " + rec.Reason
		}
		fmt.Println(line)
	}
	return nil
}
