package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command with subcommands
func newConfigCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
		Long: `Inspect Smuggler configuration.

Configuration is loaded from multiple sources with priority:
1. Environment variables (SMUGGLER_* prefix, e.g. SMUGGLER_CACHE_TTL=10m)
2. Config file (smuggler.yaml, or --config)
3. Default values

Examples:
  smuggler config show
  smuggler config show -o json`,
	}

	cmd.AddCommand(newConfigShowCommand(opts))

	return cmd
}

// newConfigShowCommand prints the effective configuration
func newConfigShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.output == outputJSON {
				return writeJSON(out, cfg)
			}

			fmt.Fprintln(out, "Smuggler Configuration")
			fmt.Fprintln(out, "======================")

			fmt.Fprintln(out, "\nUEX API:")
			fmt.Fprintf(out, "  Base URL:         %s\n", cfg.API.BaseURL)
			fmt.Fprintf(out, "  Timeout:          %s\n", cfg.API.Timeout)
			fmt.Fprintf(out, "  Concurrency:      %d\n", cfg.API.Concurrency)
			fmt.Fprintf(out, "  Rate Limit:       %g req/s (burst: %d)\n",
				cfg.API.RateLimit.Requests, cfg.API.RateLimit.Burst)
			fmt.Fprintf(out, "  Circuit Breaker:  %d failures, %s cooldown\n",
				cfg.API.CircuitBreaker.MaxFailures, cfg.API.CircuitBreaker.Cooldown)

			fmt.Fprintln(out, "\nEngine:")
			fmt.Fprintf(out, "  Match Mode:       %s\n", cfg.Engine.MatchMode)
			fmt.Fprintf(out, "  Safe Havens:      %s (limit %d)\n",
				strings.Join(cfg.Engine.SafeHaven.Fragments, ", "), cfg.Engine.SafeHaven.Limit)
			fmt.Fprintf(out, "  Projection Units: %d\n", cfg.Engine.ProjectionUnits)

			fmt.Fprintln(out, "\nCache:")
			fmt.Fprintf(out, "  TTL:              %s\n", cfg.Cache.TTL)

			fmt.Fprintln(out, "\nLogging:")
			fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)

			fmt.Fprintln(out, "\nMetrics:")
			fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Metrics.Enabled)
			if cfg.Metrics.Enabled {
				fmt.Fprintf(out, "  Address:          http://%s%s\n", cfg.Metrics.Address(), cfg.Metrics.Path)
			}

			return nil
		},
	}
}
