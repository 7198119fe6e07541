package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ternsecure/docsite/internal/config"
	"github.com/ternsecure/docsite/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the development server",
	Long: `Serves the content directory, rendering each markdown page on request with
the sidebar for its URL. The sidebar state is also available as JSON at
/api/sidebar?path=<url>. With --watch, edits to the config file are applied
without a restart.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 3000, "port to listen on")
	serveCmd.Flags().String("content-dir", "", "override the markdown content directory")
	serveCmd.Flags().Bool("watch", false, "reload the config file when it changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		srv.Shutdown(context.Background())
	}()

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		go func() {
			err := config.Watch(ctx, cfgFile, cmd.Flags(), func(c *config.Config) {
				if err := c.Validate(); err != nil {
					logger.Error("ignoring invalid config", "path", cfgFile, "err", err)
					return
				}
				if err := srv.SetConfig(c); err != nil {
					logger.Error("applying config", "err", err)
					return
				}
				logger.Info("config reloaded", "path", cfgFile, "tabs", len(c.Tabs), "sections", len(c.Navigation))
			}, func(err error) {
				logger.Error("reloading config", "path", cfgFile, "err", err)
			})
			if err != nil {
				logger.Error("config watcher stopped", "err", err)
			}
		}()
		logger.Debug("watching config", "path", cfgFile)
	}

	return srv.Start()
}
