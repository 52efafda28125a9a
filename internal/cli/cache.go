package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/storefinder/internal/adapters/source"
	"github.com/example/storefinder/internal/db"
	"github.com/example/storefinder/internal/wire"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Copy store data from --source into the local cache",
		Long: `Fetch the store data from a URL or JSON file and replace the contents
of the local SQLite cache. Later commands can read it with --source sqlite:.

Examples:
  storefinder import --source https://example.com/stores.json
  storefinder import --source ./stores.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := strings.TrimSpace(wire.Config().Source)
			if src == "" || src == source.CacheScheme {
				return fmt.Errorf("import needs --source pointing at a URL or JSON file")
			}

			_, err := wire.CacheAdapter().Import(cmd.Context(), src)
			return err
		},
	}
}

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show what the local store cache holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.CacheAdapter().Status(cmd.Context())
			return err
		},
	}
}

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fill the local cache with development fixtures",
		Long:  `Replace the local cache with a small set of sample stores for development.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := wire.Database()
			if err != nil {
				return fmt.Errorf("failed to open cache: %w", err)
			}
			if err := db.SeedFixtures(database); err != nil {
				return fmt.Errorf("failed to seed cache: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✓ Seeded development stores")
			fmt.Fprintln(cmd.OutOrStdout(), "  storefinder list --source sqlite:")
			return nil
		},
	}
}
