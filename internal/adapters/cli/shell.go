package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/smuggler-go/internal/adapters/metrics"
	"github.com/andrescamacho/smuggler-go/internal/application/trading/commands"
	"github.com/andrescamacho/smuggler-go/internal/application/trading/queries"
	"github.com/andrescamacho/smuggler-go/internal/infrastructure/config"
)

const shellHelp = `Commands:
  goods               list restricted goods
  offers <good>       buy and sell locations for a good
  route <good>        best route for a good
  havens [limit]      safe-haven terminals
  report              full market report
  status              snapshot age and per-collection status
  refresh             discard cached data and fetch again
  help                this text
  quit                leave the shell`

// newShellCommand runs an interactive session against one cached snapshot
func newShellCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session with manual refresh",
		Long: `Start an interactive session. Market data is fetched once and reused
until it expires (cache.ttl) or you type "refresh".

When metrics.enabled is set, Prometheus metrics are served on
metrics.host:metrics.port for the lifetime of the session.

Example:
  smuggler shell`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.loadApp()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if app.Config.Metrics.Enabled {
				stop := serveMetrics(app, app.Config.Metrics)
				defer stop()
			}

			return runShell(ctx, app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runShell(ctx context.Context, app *App, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, `Smuggler shell. Type "help" for commands.`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "smuggler> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		quit, err := runShellLine(ctx, app, out, scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// runShellLine executes one shell command; errors are reported without ending the session
func runShellLine(ctx context.Context, app *App, out io.Writer, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	verb := strings.ToLower(fields[0])
	arg := strings.Trim(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0])), `"'`)

	switch verb {
	case "quit", "exit", "q":
		return true, nil

	case "help", "?":
		fmt.Fprintln(out, shellHelp)
		return false, nil

	case "goods":
		resp, err := send[*queries.ListEligibleGoodsResponse](ctx, app.Mediator, &queries.ListEligibleGoodsQuery{})
		if err != nil {
			return false, err
		}
		return false, renderGoods(out, resp.Goods)

	case "offers":
		if arg == "" {
			return false, errors.New("usage: offers <good>")
		}
		resp, err := send[*queries.GetOffersResponse](ctx, app.Mediator, &queries.GetOffersQuery{Commodity: arg})
		if err != nil {
			return false, err
		}
		return false, renderOffers(out, resp.Commodity, resp.BuyOffers, resp.SellOffers)

	case "route":
		if arg == "" {
			return false, errors.New("usage: route <good>")
		}
		resp, err := send[*queries.FindRouteResponse](ctx, app.Mediator, &queries.FindRouteQuery{
			Commodity: arg,
			Units:     app.Config.Engine.ProjectionUnits,
		})
		if err != nil {
			return false, err
		}
		return false, renderRoute(out, resp)

	case "havens":
		limit := 0
		if arg != "" {
			n, err := strconv.Atoi(arg)
			if err != nil || n < 0 {
				return false, fmt.Errorf("limit must be a non-negative number, got %q", arg)
			}
			limit = n
		}
		resp, err := send[*queries.ListSafeHavensResponse](ctx, app.Mediator, &queries.ListSafeHavensQuery{Limit: limit})
		if err != nil {
			return false, err
		}
		return false, renderHavens(out, resp.Havens)

	case "report":
		r, err := buildReport(ctx, app.Mediator, app.Config.Engine.ProjectionUnits)
		if err != nil {
			return false, err
		}
		return false, renderReport(out, r, time.Now())

	case "status":
		resp, err := send[*queries.GetMarketOverviewResponse](ctx, app.Mediator, &queries.GetMarketOverviewQuery{})
		if err != nil {
			return false, err
		}
		fmt.Fprintf(out, "Snapshot %s\n", resp.SnapshotID)
		if err := renderOverview(out, resp, time.Now()); err != nil {
			return false, err
		}
		fmt.Fprintln(out)
		return false, renderCollections(out, resp.Collections)

	case "refresh":
		resp, err := send[*commands.RefreshSnapshotResponse](ctx, app.Mediator, &commands.RefreshSnapshotCommand{})
		if err != nil {
			return false, fmt.Errorf("%w (still serving the previous data)", err)
		}
		fmt.Fprintf(out, "Market data refreshed (snapshot %s).\n", resp.SnapshotID)
		return false, renderCollections(out, resp.Collections)

	default:
		return false, fmt.Errorf("unknown command %q, type \"help\"", verb)
	}
}

// serveMetrics exposes the Prometheus registry until the returned stop func is called
func serveMetrics(app *App, cfg config.MetricsConfig) func() {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, metrics.Handler())

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		app.Logger.Info().Str("addr", server.Addr).Str("path", cfg.Path).Msg("serving metrics")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Error().Err(err).Msg("metrics server stopped")
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}
}
