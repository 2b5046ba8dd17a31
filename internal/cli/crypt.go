package cli

import (
	"fmt"
	"log/slog"

	"github.com/Davincible/kuznechik/internal/validation"
	"github.com/Davincible/kuznechik/pkg/crypto/kuznechik"
	"github.com/Davincible/kuznechik/pkg/secure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type cryptOptions struct {
	keys   keyFlags
	input  string
	hex    string
	output string
	armor  bool
	hexOut bool
}

func NewEncryptCommand() *cobra.Command {
	var opts cryptOptions

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt data with Kuznechik (GOST 34.12-2018)",
		Long: `Encrypt every 16-byte block of the input independently under a 256-bit key.

The input length must be a multiple of 16 bytes; no padding is added and
no mode of operation is applied. The key comes from exactly one of --key,
--mnemonic, --passphrase or --prompt.`,
		Example: `  # Encrypt a hex block with a hex key
  kuznechik encrypt --key 8899aabbccddeeff0011223344556677fedcba98765432100123456789abcdef \
    --hex 1122334455667700ffeeddccbbaa9988 --hex-out

  # Encrypt a file with a passphrase read from the terminal
  kuznechik encrypt --prompt --in data.bin --out data.enc

  # Encrypt stdin with a key phrase, base64 output
  cat data.bin | kuznechik encrypt --mnemonic "word1 ... word24" --armor`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrypt(cmd, &opts, true)
		},
	}

	registerCryptFlags(cmd, &opts)
	cmd.Flags().BoolVar(&opts.armor, "armor", false, "Write output as base64 text")

	return cmd
}

func NewDecryptCommand() *cobra.Command {
	var opts cryptOptions

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt data encrypted with 'kuznechik encrypt'",
		Long: `Decrypt every 16-byte block of the input under the same key that was
used for encryption.`,
		Example: `  # Decrypt a hex block
  kuznechik decrypt --key 8899aabbccddeeff0011223344556677fedcba98765432100123456789abcdef \
    --hex 7f679d90bebc24305a468d42b9d4edcd --hex-out

  # Decrypt base64 input
  cat data.txt | kuznechik decrypt --prompt --armor --out data.bin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrypt(cmd, &opts, false)
		},
	}

	registerCryptFlags(cmd, &opts)
	cmd.Flags().BoolVar(&opts.armor, "armor", false, "Read input as base64 text")

	return cmd
}

func registerCryptFlags(cmd *cobra.Command, opts *cryptOptions) {
	opts.keys.register(cmd)
	cmd.Flags().StringVarP(&opts.input, "in", "i", "", "Input file (default stdin)")
	cmd.Flags().StringVar(&opts.hex, "hex", "", "Input given as a hex string")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&opts.hexOut, "hex-out", false, "Write output as hex text")
}

func runCrypt(cmd *cobra.Command, opts *cryptOptions, encrypt bool) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	c, err := newCipher(cfg)
	if err != nil {
		return err
	}

	secret, err := opts.keys.resolve(cmd, cfg)
	if err != nil {
		return err
	}
	defer secret.Destroy()

	key := secret.Bytes()
	defer secure.Zero(key)

	// Armor is an output encoding for encrypt and an input encoding for decrypt.
	data, err := readInput(cmd, opts.input, opts.hex, opts.armor && !encrypt)
	if err != nil {
		return err
	}
	if cfg.Security.WipeMemory {
		defer secure.Zero(data)
	}

	if err := validation.ValidateBlockAligned(len(data)); err != nil {
		return err
	}

	op := "decrypt"
	if encrypt {
		op = "encrypt"
		err = c.Encrypt(data, key)
	} else {
		err = c.Decrypt(data, key)
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", op, err)
	}

	slog.Debug("Processed input", "operation", op, "bytes", len(data), "blocks", len(data)/kuznechik.BlockSize)

	if err := writeOutput(cmd, opts.output, data, opts.armor && encrypt, opts.hexOut); err != nil {
		return err
	}

	if opts.output != "" {
		green := color.New(color.FgGreen, color.Bold)
		green.Fprintf(cmd.ErrOrStderr(), "✅ %d bytes written to %s\n", len(data), opts.output)
	}

	return nil
}
