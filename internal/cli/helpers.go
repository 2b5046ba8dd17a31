package cli

import (
	"bufio"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Davincible/kuznechik/internal/validation"
	"github.com/Davincible/kuznechik/pkg/config"
	"github.com/Davincible/kuznechik/pkg/crypto/keysource"
	"github.com/Davincible/kuznechik/pkg/crypto/kuznechik"
	"github.com/Davincible/kuznechik/pkg/secure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassphrase reads a passphrase from the terminal, or a single line
// when in is not one.
func readPassphrase(in io.Reader, out io.Writer, prompt string) ([]byte, error) {
	fmt.Fprint(out, prompt)

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		pass, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return nil, err
		}
		return pass, nil
	}

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

// loadSettings reads the user's configuration and applies its UI options.
func loadSettings() (*config.Config, error) {
	cm, err := config.NewConfigManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg := cm.GetConfig()
	if !cfg.UI.UseColor {
		color.NoColor = true
	}
	return cfg, nil
}

func newCipher(cfg *config.Config) (*kuznechik.Cipher, error) {
	bits, err := cfg.GeneratorBits()
	if err != nil {
		return nil, err
	}

	c, err := kuznechik.New(cfg.Cipher.FieldOrder, bits)
	if err != nil {
		return nil, fmt.Errorf("failed to build cipher: %w", err)
	}
	return c, nil
}

// keyFlags are the mutually exclusive ways to name a master key.
type keyFlags struct {
	key        string
	mnemonic   string
	passphrase string
	prompt     bool
}

func (f *keyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.key, "key", "k", "", "256-bit key as 64 hex characters")
	cmd.Flags().StringVar(&f.mnemonic, "mnemonic", "", "24-word BIP-39 key phrase")
	cmd.Flags().StringVar(&f.passphrase, "passphrase", "", "Derive the key from a passphrase (PBKDF2)")
	cmd.Flags().BoolVar(&f.prompt, "prompt", false, "Prompt for the passphrase")
}

func (f *keyFlags) resolve(cmd *cobra.Command, cfg *config.Config) (*secure.Buffer, error) {
	opts := keysource.Options{
		Hex:        f.key,
		Mnemonic:   f.mnemonic,
		Salt:       []byte(cfg.Security.PBKDF2Salt),
		Iterations: cfg.Security.PBKDF2Iterations,
	}

	if f.key != "" {
		if err := validation.ValidateKeyHex(f.key); err != nil {
			return nil, err
		}
	}
	if f.mnemonic != "" {
		if err := validation.ValidateMnemonic(f.mnemonic); err != nil {
			return nil, err
		}
	}

	pass := []byte(f.passphrase)
	if f.prompt {
		if f.passphrase != "" {
			return nil, fmt.Errorf("--passphrase and --prompt are mutually exclusive")
		}

		var err error
		pass, err = readPassphrase(cmd.InOrStdin(), cmd.ErrOrStderr(), "Enter passphrase: ")
		if err != nil {
			return nil, fmt.Errorf("failed to read passphrase: %w", err)
		}
		if len(pass) == 0 {
			return nil, fmt.Errorf("passphrase cannot be empty")
		}
	}
	if err := validation.ValidatePassphrase(string(pass)); err != nil {
		return nil, err
	}
	opts.Passphrase = pass
	defer secure.Zero(pass)

	return keysource.Resolve(opts)
}

// readInput returns the payload named by the input flags: a hex string, a
// file, or stdin. Armored input is base64 text.
func readInput(cmd *cobra.Command, path, hexData string, armor bool) ([]byte, error) {
	if hexData != "" && path != "" {
		return nil, fmt.Errorf("--in and --hex are mutually exclusive")
	}

	if hexData != "" {
		if err := validation.ValidateHex(hexData); err != nil {
			return nil, err
		}
		return hex.DecodeString(strings.TrimSpace(hexData))
	}

	var (
		data []byte
		err  error
	)
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read from stdin: %w", err)
		}
	}

	if armor {
		text := strings.Join(strings.Fields(string(data)), "")
		decoded, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 input: %w", err)
		}
		return decoded, nil
	}

	return data, nil
}

// writeOutput writes data raw, base64 (armor) or hex to path or stdout.
// Text encodings end with a newline.
func writeOutput(cmd *cobra.Command, path string, data []byte, armor, hexOut bool) error {
	if armor && hexOut {
		return fmt.Errorf("--armor and --hex-out are mutually exclusive")
	}

	out := data
	switch {
	case armor:
		out = []byte(base64.StdEncoding.EncodeToString(data) + "\n")
	case hexOut:
		out = []byte(hex.EncodeToString(data) + "\n")
	}

	if path == "" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}

	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
