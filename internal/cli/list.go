package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/storefinder/internal/ports/primary"
	"github.com/example/storefinder/internal/wire"
)

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	var req primary.QueryRequest

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stores matching a query, city and district",
		Long: `Load the store data and print the stores that match every given filter.

The query matches name, address or phone number (case-insensitive substring).
A district is only applied when it belongs to the selected city.

Examples:
  storefinder list
  storefinder list --city 台北市
  storefinder list --city 台北市 --district 大安區 --query 復興`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loadDirectory(ctx)
			wire.DirectoryAdapterWithOutput(cmd.OutOrStdout()).List(ctx, req)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Query, "query", "q", "", "Text to search in name, address and phone")
	cmd.Flags().StringVar(&req.City, "city", "", "City to filter by")
	cmd.Flags().StringVar(&req.District, "district", "", "District to filter by (requires --city)")

	return cmd
}

// CitiesCmd returns the cities command
func CitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the selectable cities in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loadDirectory(ctx)
			wire.DirectoryAdapterWithOutput(cmd.OutOrStdout()).Cities(ctx)
			return nil
		},
	}
}

// DistrictsCmd returns the districts command
func DistrictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "districts [city]",
		Short: "List the selectable districts of a city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loadDirectory(ctx)
			wire.DirectoryAdapterWithOutput(cmd.OutOrStdout()).Districts(ctx, args[0])
			return nil
		},
	}
}
