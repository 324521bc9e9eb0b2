package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vrec/internal/demo"
	"github.com/vango-dev/vrec/internal/devserver"
	"github.com/vango-dev/vrec/pkg/instrument"
	"github.com/vango-dev/vrec/pkg/vrec"
)

func serveCmd(g *globalFlags) *cobra.Command {
	var (
		addr string
		tick time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo app with a live view",
		Long: `Start the devtools server.

The page mirrors the in-memory surface over WebSocket and forwards
clicks back to the reconciler. The server also exposes:

  GET  /tree                 node tree as JSON
  GET  /journal              lifecycle journal
  POST /events/{id}/{event}  dispatch an event
  GET  /snapshots            stored snapshots
  POST /snapshots/{name}     store the current surface
  GET  /metrics              Prometheus metrics

Examples:
  vrec serve
  vrec serve --addr=0.0.0.0:8080 --tick=500ms`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if addr == "" {
				addr = e.cfg.Devserver.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			metrics := instrument.NewMetrics(
				instrument.WithNamespace(e.cfg.Metrics.Namespace),
				instrument.WithRegistry(registry),
			)
			tracer := instrument.NewTracer(instrument.WithParentContext(ctx))
			hub := devserver.NewHub(e.logger)

			session := demo.NewSession(e.sessionOptions(
				demo.WithTick(tick),
				demo.WithSurface(metrics.Surface),
				demo.WithRootOptions(
					vrec.WithObserver(metrics),
					vrec.WithObserver(tracer),
					vrec.WithObserver(hub),
				),
			)...)

			store, err := e.store(ctx)
			if err != nil {
				return err
			}
			srv := devserver.New(session, hub,
				devserver.WithLogger(e.logger),
				devserver.WithAddr(addr),
				devserver.WithGatherer(registry),
				devserver.WithStore(store),
			)

			out := cmd.OutOrStdout()
			success(out, "serving on http://%s", addr)
			if err := srv.Start(ctx); err != nil && err != context.Canceled {
				return err
			}
			info(out, "shut down")
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (default from vrec.yaml)")
	cmd.Flags().DurationVar(&tick, "tick", time.Second, "Clock tick interval (0 disables)")

	return cmd
}
