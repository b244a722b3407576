package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newAnimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "build a tree and highlight its nodes in traversal order",
		Long: "Builds a tree, then redraws it once per step with the visited node highlighted.\n" +
			"Interrupting only stops the waiting; a started animation cannot be cancelled.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, err := newVisualizer(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if _, err := v.Visualize(cfg.Order, cfg.Speed); err != nil {
				return err
			}
			log.Infof("%s at speed %d, %s per step", cfg.Order, cfg.Speed, cfg.Delay())

			g, gctx := errgroup.WithContext(ctx)
			// stops the metrics server once the animation is over
			animCtx, animDone := context.WithCancel(gctx)
			defer animDone()

			g.Go(func() error {
				defer animDone()
				return errors.Wrap(v.Wait(gctx), "animation interrupted")
			})

			if cfg.MetricsListen != "" {
				g.Go(func() error {
					return serveMetrics(animCtx, cfg.MetricsListen)
				})
			}

			return g.Wait()
		},
	}
	addValuesFlag(cmd.Flags())

	return cmd
}
