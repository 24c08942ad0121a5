package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PlanterCut/internal/model"
	"github.com/piwi3910/PlanterCut/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve layouts, drawings and share links over HTTP",
	Long: `Serve the planner over HTTP. Settings come from the environment:

  PLANTERCUT_ADDR              listen address (default :8080)
  PLANTERCUT_LOG_LEVEL         debug, info, warn or error
  PLANTERCUT_SHARE_BASE_URL    base URL of generated share links
  PLANTERCUT_SHUTDOWN_TIMEOUT  grace period for in-flight requests`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(env, model.DefaultConfig())
		slog.Info("starting server", "addr", env.Addr, "share_base_url", env.ShareBaseURL)
		if err := srv.Run(ctx); err != nil {
			return err
		}
		slog.Info("server stopped")
		return nil
	},
}
