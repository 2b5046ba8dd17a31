package cli

import (
	"fmt"

	"github.com/Davincible/kuznechik/pkg/secure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func NewScheduleCommand() *cobra.Command {
	var (
		keys       keyFlags
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:     "schedule",
		Short:   "Print the ten round keys derived from a key",
		Example: `  kuznechik schedule --key 8899aabbccddeeff0011223344556677fedcba98765432100123456789abcdef`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings()
			if err != nil {
				return err
			}

			c, err := newCipher(cfg)
			if err != nil {
				return err
			}

			secret, err := keys.resolve(cmd, cfg)
			if err != nil {
				return err
			}
			defer secret.Destroy()

			key := secret.Bytes()
			defer secure.Zero(key)

			ks, err := c.ExpandKey(key)
			if err != nil {
				return err
			}
			defer ks.Wipe()

			if outputJSON {
				out := make([]string, len(ks))
				for i, k := range ks {
					out[i] = k.String()
				}
				return printJSON(cmd.OutOrStdout(), map[string]any{"round_keys": out})
			}

			w := cmd.OutOrStdout()
			cyan := color.New(color.FgCyan)
			for i, k := range ks {
				cyan.Fprintf(w, "K%-2d ", i+1)
				fmt.Fprintln(w, k)
			}
			return nil
		},
	}

	keys.register(cmd)
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output in JSON format")

	return cmd
}
