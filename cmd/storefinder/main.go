package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/storefinder/internal/cli"
	"github.com/example/storefinder/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "storefinder",
		Short:   "Storefinder - filter a store directory by text, city and district",
		Version: version.String(),
		Long: `Storefinder loads a list of stores from a URL, a JSON file or its local
cache and filters it by free text, city and district.`,
		SilenceUsage: true,
	}

	cli.BindGlobalFlags(rootCmd)

	// Directory
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.CitiesCmd())
	rootCmd.AddCommand(cli.DistrictsCmd())
	rootCmd.AddCommand(cli.BrowseCmd())
	rootCmd.AddCommand(cli.ServeCmd())

	// Local cache
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.SeedCmd())

	rootCmd.AddCommand(cli.InitCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
