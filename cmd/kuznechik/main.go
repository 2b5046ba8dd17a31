package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Davincible/kuznechik/internal/cli"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "kuznechik",
		Short: "GOST 34.12-2018 Kuznechik block cipher",
		Long: `Kuznechik implements the 128-bit GOST 34.12-2018 block cipher with a
256-bit key.

Every 16-byte block is encrypted independently. There is no padding and
no mode of operation: inputs must be a whole number of blocks.

Features:
- Keys from hex, a 24-word BIP-39 phrase, or a PBKDF2 passphrase
- Raw, hex or base64 input and output
- Reference vector self test and throughput benchmark
- JSON or YAML configuration`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			level.Set(cli.LogLevel(verbose))
		},
	}

	rootCmd.AddCommand(
		cli.NewEncryptCommand(),
		cli.NewDecryptCommand(),
		cli.NewKeygenCommand(),
		cli.NewScheduleCommand(),
		cli.NewSelfTestCommand(),
		cli.NewBenchCommand(),
		cli.NewConfigCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
