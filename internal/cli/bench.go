package cli

import (
	"fmt"

	"github.com/Davincible/kuznechik/internal/bench"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func NewBenchCommand() *cobra.Command {
	var (
		sizeMB     int
		seed       uint64
		noVerify   bool
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure encryption and decryption throughput",
		Long: `Generate a seeded random payload and key, encrypt then decrypt the payload
in place, and report elapsed time and MB/s for each pass.

Size and seed default to the values in the configuration file.`,
		Example: `  # Default 100 MB run
  kuznechik bench

  # Smaller payload, fixed seed, JSON report
  kuznechik bench --size 16 --seed 7 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings()
			if err != nil {
				return err
			}

			c, err := newCipher(cfg)
			if err != nil {
				return err
			}

			opts := bench.Options{
				Size:   cfg.Bench.PayloadMB * bench.MB,
				Seed:   cfg.Bench.Seed,
				Verify: cfg.Bench.Verify && !noVerify,
			}
			if cmd.Flags().Changed("size") {
				if sizeMB <= 0 {
					return fmt.Errorf("size must be positive (got %d)", sizeMB)
				}
				opts.Size = sizeMB * bench.MB
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed = seed
			}

			report, err := bench.Run(c, opts)
			if err != nil {
				return err
			}

			if outputJSON {
				return printJSON(cmd.OutOrStdout(), report)
			}

			w := cmd.OutOrStdout()
			cyan := color.New(color.FgCyan, color.Bold)
			green := color.New(color.FgGreen)

			cyan.Fprintf(w, "Payload: %d MB (seed %d)\n", report.Size/bench.MB, report.Seed)
			fmt.Fprintf(w, "Encrypt: %d ms, %.2f MB/s\n", report.Encrypt.Millis, report.Encrypt.MBps)
			fmt.Fprintf(w, "Decrypt: %d ms, %.2f MB/s\n", report.Decrypt.Millis, report.Decrypt.MBps)
			if report.Verified {
				green.Fprintln(w, "✅ Round trip verified")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&sizeMB, "size", "s", 0, "Payload size in MB (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for payload and key (default from config)")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip the round trip comparison")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output in JSON format")

	return cmd
}
