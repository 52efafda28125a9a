package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/storefinder/internal/app"
	"github.com/example/storefinder/internal/core/selection"
	"github.com/example/storefinder/internal/ports/primary"
	"github.com/example/storefinder/internal/wire"
)

const browseHelp = `Commands:
  q <text>          search name, address and phone (empty clears)
  city <name>       select a city (empty selects all cities)
  district <name>   select a district of the selected city
  reset             clear all filters
  show              redraw the current view
  help              show this help
  quit              leave`

// BrowseCmd returns the browse command
func BrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactively filter stores by query, city and district",
		Long: `Start an interactive session. Each command updates the filters and
redraws the matching stores.

` + browseHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loadDirectory(ctx)

			renderer := wire.DirectoryAdapterWithOutput(cmd.OutOrStdout())
			ctrl := wire.SelectionController(renderer)
			return runBrowse(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), ctrl, renderer)
		},
	}
}

type browseAction int

const (
	browseNone browseAction = iota
	browseEvent
	browseShow
	browseHelpAction
	browseQuit
)

type browseCommand struct {
	action browseAction
	event  selection.Event
}

// parseBrowseCommand turns one input line into a session command.
func parseBrowseCommand(line string) (browseCommand, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return browseCommand{action: browseNone}, nil
	}

	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "q", "query":
		return browseCommand{action: browseEvent, event: selection.Event{Kind: selection.EventSetQuery, Value: arg}}, nil
	case "city":
		return browseCommand{action: browseEvent, event: selection.Event{Kind: selection.EventSetCity, Value: arg}}, nil
	case "district":
		return browseCommand{action: browseEvent, event: selection.Event{Kind: selection.EventSetDistrict, Value: arg}}, nil
	case "reset":
		return browseCommand{action: browseEvent, event: selection.Event{Kind: selection.EventReset}}, nil
	case "show":
		return browseCommand{action: browseShow}, nil
	case "help", "?":
		return browseCommand{action: browseHelpAction}, nil
	case "quit", "exit":
		return browseCommand{action: browseQuit}, nil
	default:
		return browseCommand{}, fmt.Errorf("unknown command %q (type help)", name)
	}
}

// runBrowse reads commands from in until quit or EOF. Transitions render
// through the controller's observer; show renders through observer directly.
func runBrowse(ctx context.Context, in io.Reader, out io.Writer, ctrl *app.SelectionController, observer primary.SnapshotObserver) error {
	if err := observer.Render(ctx, ctrl.Snapshot(ctx)); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		cmd, err := parseBrowseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		switch cmd.action {
		case browseEvent:
			ctrl.Dispatch(ctx, cmd.event)
		case browseShow:
			if err := observer.Render(ctx, ctrl.Snapshot(ctx)); err != nil {
				return fmt.Errorf("failed to render: %w", err)
			}
		case browseHelpAction:
			fmt.Fprintln(out, browseHelp)
		case browseQuit:
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}
