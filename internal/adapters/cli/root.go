package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/smuggler-go/internal/application/mediator"
	"github.com/andrescamacho/smuggler-go/internal/domain/market"
	"github.com/andrescamacho/smuggler-go/internal/infrastructure/config"
)

// Output formats accepted by --output
const (
	outputTable = "table"
	outputJSON  = "json"
)

// rootOptions carries global flags and the app wiring to every subcommand
type rootOptions struct {
	configPath string
	output     string
	verbose    bool
	appOpts    []AppOption

	app *App
}

// NewRootCommand creates the root command for the CLI
func NewRootCommand(appOpts ...AppOption) *cobra.Command {
	opts := &rootOptions{appOpts: appOpts}

	rootCmd := &cobra.Command{
		Use:   "smuggler",
		Short: "Smuggler - restricted-goods trade routes from live UEX market data",
		Long: `Smuggler reads commodity prices from the UEX Corp trading-data API,
lists the restricted goods that can be bought somewhere, and finds the most
profitable single-hop buy/sell pair for a chosen good.

Examples:
  smuggler goods
  smuggler offers "WiDoW"
  smuggler route "WiDoW" --units 100
  smuggler havens --limit 5
  smuggler report
  smuggler shell`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != outputTable && opts.output != outputJSON {
				return fmt.Errorf("--output must be %q or %q", outputTable, outputJSON)
			}
			return nil
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"Path to config file (default: ./smuggler.yaml)")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputTable,
		"Output format: table or json")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(newGoodsCommand(opts))
	rootCmd.AddCommand(newOffersCommand(opts))
	rootCmd.AddCommand(newRouteCommand(opts))
	rootCmd.AddCommand(newHavensCommand(opts))
	rootCmd.AddCommand(newReportCommand(opts))
	rootCmd.AddCommand(newShellCommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))

	return rootCmd
}

// loadConfig reads the config named by --config and applies --verbose
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// loadApp wires the application once per process
func (o *rootOptions) loadApp() (*App, error) {
	if o.app != nil {
		return o.app, nil
	}
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	app, err := NewApp(cfg, o.appOpts...)
	if err != nil {
		return nil, err
	}
	o.app = app
	return app, nil
}

// send dispatches a request and asserts the response type
func send[R any](ctx context.Context, m mediator.Mediator, request mediator.Request) (R, error) {
	var zero R
	resp, err := m.Send(ctx, request)
	if err != nil {
		return zero, friendlyError(err)
	}
	typed, ok := resp.(R)
	if !ok {
		return zero, fmt.Errorf("unexpected response type %T", resp)
	}
	return typed, nil
}

// friendlyError adds operator guidance to errors the operator can act on
func friendlyError(err error) error {
	if errors.Is(err, market.ErrSnapshotUnusable) {
		return fmt.Errorf("could not reach the UEX market API, try again later: %w", err)
	}
	return err
}

// Execute runs the root command until it finishes or the process is interrupted
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
