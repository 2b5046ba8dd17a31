package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/Davincible/kuznechik/pkg/crypto/mnemonic"
	"github.com/Davincible/kuznechik/pkg/secure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type KeyInfo struct {
	Key         string `json:"key"`
	Mnemonic    string `json:"mnemonic"`
	Fingerprint string `json:"fingerprint"`
}

func NewKeygenCommand() *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random 256-bit key",
		Long: `Generate a random 256-bit key from the system CSPRNG and print it as
hex and as a 24-word BIP-39 phrase. Either form is accepted by encrypt
and decrypt.`,
		Example: `  # Generate a key
  kuznechik keygen

  # Output as JSON
  kuznechik keygen --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadSettings(); err != nil {
				return err
			}

			m, err := mnemonic.New()
			if err != nil {
				return fmt.Errorf("failed to generate key: %w", err)
			}

			key, err := m.Key()
			if err != nil {
				return err
			}
			defer secure.Zero(key)

			info := KeyInfo{
				Key:         hex.EncodeToString(key),
				Mnemonic:    m.Words(),
				Fingerprint: mnemonic.Fingerprint(key),
			}

			if outputJSON {
				return printJSON(cmd.OutOrStdout(), info)
			}

			return outputKeygenText(cmd, m, info)
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output in JSON format")

	return cmd
}

func outputKeygenText(cmd *cobra.Command, m *mnemonic.Mnemonic, info KeyInfo) error {
	w := cmd.OutOrStdout()
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed, color.Bold)

	fmt.Fprintln(w)
	green.Fprintln(w, "=== NEW KEY ===")
	fmt.Fprintln(w)

	red.Fprintln(w, "⚠️  Anyone holding this key can decrypt your data. Store it offline.")
	fmt.Fprintln(w)

	yellow.Fprintln(w, "Hex:")
	fmt.Fprintln(w, info.Key)
	fmt.Fprintln(w)

	yellow.Fprintf(w, "Key phrase (%d words):\n", m.WordCount())
	for i, word := range m.WordList() {
		fmt.Fprintf(w, "%2d. %s\n", i+1, word)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Fingerprint: %s\n", info.Fingerprint)
	return nil
}
