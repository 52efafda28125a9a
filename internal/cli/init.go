package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/storefinder/internal/config"
	"github.com/example/storefinder/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write .storefinder/config.json in the current directory",
		Long: `Save the effective configuration (defaults, environment and flags) to
.storefinder/config.json so later commands pick it up.

Examples:
  storefinder init --source https://example.com/stores.json --locale zh-Hant-TW`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			path := config.Path(cwd)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := config.SaveConfig(cwd, wire.Config()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), "Next steps:")
			fmt.Fprintln(cmd.OutOrStdout(), "  storefinder list")
			fmt.Fprintln(cmd.OutOrStdout(), "  storefinder browse")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
