package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	httpAdapter "github.com/BristonLowell/vinnies-brain-app-sub000/internal/adapters/http"
	"github.com/BristonLowell/vinnies-brain-app-sub000/internal/config"
	"github.com/BristonLowell/vinnies-brain-app-sub000/internal/logging"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/adapters/memory"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the flow HTTP server",
	Long:  `Serves flow validation, preview stepping, and a development article store as a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		reg := prometheus.NewRegistry()
		handler := httpAdapter.NewHandler(
			memory.NewArticles(),
			flagVariant(cmd),
			reg,
			httpAdapter.WithAdminKey(cfg.API.AdminKey),
			httpAdapter.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting flow server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "err", err)
				}
			}
			logger.Info("flow server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
