package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.lepak.sg/treeviz/config"
	"go.lepak.sg/treeviz/random"
	"go.lepak.sg/treeviz/render"
	"go.lepak.sg/treeviz/tree/binary"
	"go.lepak.sg/treeviz/viz"
)

// loaded by the root command before any subcommand runs
var cfg config.Config

// newRootCmd returns the treeviz command with every subcommand added.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "treeviz",
		Short: "binary search tree traversal visualizer",

		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(cmd.Flags())
			if err != nil {
				return err
			}

			cfg, err = config.Load(v)
			if err != nil {
				return err
			}

			log.SetFormatter(&prefixed.TextFormatter{})
			if cfg.Debug {
				log.SetLevel(log.DebugLevel)
			}
			log.Debugf("config: %+v", cfg)

			return nil
		},
	}

	config.Flags(root.PersistentFlags())
	root.AddCommand(
		newBuildCmd(),
		newTraverseCmd(),
		newAnimateCmd(),
	)

	return root
}

// addValuesFlag lets a command build its tree from fixed values
// instead of random ones.
func addValuesFlag(fs *pflag.FlagSet) {
	fs.IntSlice("values", nil, "build the tree from these values, in insertion order, instead of random ones")
}

// newVisualizer returns a Visualizer drawing on a terminal renderer
// that writes to stdout, with a tree already built.
func newVisualizer(cmd *cobra.Command) (*viz.Visualizer, *render.Terminal, error) {
	term := render.NewTerminal(cmd.OutOrStdout(), cfg.NoColor)
	v, err := viz.New(random.NewSeeded(cfg.Seed), term, clock.New(), cfg)
	if err != nil {
		return nil, nil, err
	}

	values, err := cmd.Flags().GetIntSlice("values")
	if err != nil {
		return nil, nil, err
	}

	var tr *binary.Tree
	if len(values) > 0 {
		tr, err = v.Build(values)
	} else {
		tr, err = v.NewRandomTree()
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot build tree")
	}
	log.Debugf("built tree of %d nodes, values %v", tr.Len(), tr.Values())

	return v, term, nil
}

// serveMetrics serves the default prometheus registry on addr until
// ctx is done.
func serveMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Infof("serving metrics on %s/metrics", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "metrics server")
	}
	return nil
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("cannot execute command")
		os.Exit(1)
	}
}
