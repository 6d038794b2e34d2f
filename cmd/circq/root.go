package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-circq/internal/cli"
	"github.com/huynhanx03/go-circq/internal/server"
	"github.com/huynhanx03/go-circq/pkg/datastructs/queue"
	"github.com/huynhanx03/go-circq/pkg/logger"
	"github.com/huynhanx03/go-circq/pkg/settings"
	"github.com/huynhanx03/go-circq/pkg/utils"
)

type app struct {
	configPath string
	capacity   int

	cfg *settings.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "circq",
		Short:        "Fixed-capacity circular FIFO queue",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cli.RunDemo(cmd.OutOrStdout())
			s := cli.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), a.log)
			if s.Confirm("\nRun interactive menu? (y/n)") {
				if err := s.Run(a.sessionCapacity(cmd)); err != nil {
					return err
				}
			}
			cmd.Println("\nDone.")
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (yaml, json or toml)")
	root.PersistentFlags().IntVar(&a.capacity, "capacity", 0, "queue capacity, overrides config")

	root.AddCommand(
		&cobra.Command{
			Use:   "demo",
			Short: "Run the scripted queue scenarios",
			Run: func(cmd *cobra.Command, _ []string) {
				cli.RunDemo(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "interactive",
			Short: "Drive a queue from a text menu",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return cli.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), a.log).Run(a.sessionCapacity(cmd))
			},
		},
		&cobra.Command{
			Use:   "serve",
			Short: "Expose a shared queue over HTTP",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.serve(cmd.Context())
			},
		},
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := settings.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("capacity") {
		cfg.Queue.Capacity = a.capacity
		if err := settings.Validate(cfg); err != nil {
			return err
		}
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	return nil
}

// sessionCapacity returns the --capacity value for a menu session, or 0 to
// make the session prompt for one.
func (a *app) sessionCapacity(cmd *cobra.Command) int {
	if cmd.Flags().Changed("capacity") {
		return a.cfg.Queue.Capacity
	}
	return 0
}

func (a *app) serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	q, err := queue.NewLocked[server.Payload](a.cfg.Queue.Capacity)
	if err != nil {
		return err
	}

	gin.SetMode(a.cfg.Server.Mode)
	router := server.NewRouter(server.NewService(q, a.log), a.log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx, a.cfg.Server, router, a.log)
	})
	g.Go(func() error {
		return server.ReportStats(gctx, q, utils.ToDurationMs(a.cfg.Server.StatsInterval), a.log)
	})
	return g.Wait()
}
