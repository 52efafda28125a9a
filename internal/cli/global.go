package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/storefinder/internal/wire"
)

// BindGlobalFlags adds the flags every command shares and hands them to
// wire before the command runs.
func BindGlobalFlags(root *cobra.Command) {
	o := &wire.Overrides{}

	flags := root.PersistentFlags()
	flags.StringVar(&o.Source, "source", "", "Store data source: http(s) URL, JSON file path or sqlite:")
	flags.StringVar(&o.Locale, "locale", "", "Locale used to order district names (BCP 47, e.g. zh-Hant-TW)")
	flags.StringVar(&o.CityOrderFile, "city-order", "", "YAML file with the city display order")
	flags.StringVar(&o.DBPath, "db", "", "Path of the local store cache database")
	flags.StringVar(&o.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&o.ConfigDir, "config-dir", "", "Directory containing .storefinder/config.json (default: current directory)")

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		wire.Configure(*o)
	}
}

// loadDirectory loads the configured source into the directory.
// A failure leaves the directory empty; it is logged by the service and
// rendered by whichever adapter displays the result.
func loadDirectory(ctx context.Context) {
	_, _ = wire.DirectoryService().Load(ctx)
}
