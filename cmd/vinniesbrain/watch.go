package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/BristonLowell/vinnies-brain-app-sub000/internal/config"
	"github.com/BristonLowell/vinnies-brain-app-sub000/internal/logging"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/adapters/api"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/observability"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/ports"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/session"
)

var watchCmd = &cobra.Command{
	Use:   "watch <session-id>",
	Short: "Follow the agent's pinned flow position for a session",
	Long:  `Polls the remote session feed and prints the agent's pinned article and node whenever they change. The position is read-only; this command never moves it.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		client, err := api.New(cfg.API.BaseURL, api.WithAdminKey(cfg.API.AdminKey))
		if err != nil {
			fmt.Printf("Error creating API client: %v\n", err)
			os.Exit(1)
		}

		metrics := observability.NewPollMetrics(prometheus.NewRegistry())

		watcher := session.WatchPinned(client, args[0],
			func(p ports.Pinned) {
				if p.ArticleID == "" {
					fmt.Println("No flow pinned.")
					return
				}
				fmt.Printf("📍 %s @ %s", p.ArticleID, p.NodeID)
				if p.NodeText != "" {
					fmt.Printf("  %q", p.NodeText)
				}
				if !p.TreePresent {
					fmt.Print("  (tree unavailable)")
				}
				fmt.Println()
			},
			session.WithInterval[ports.Pinned](cfg.PollInterval),
			session.WithLogger[ports.Pinned](logger),
			session.WithMetrics[ports.Pinned](metrics),
		)

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		watcher.Start(ctx)
		defer watcher.Stop()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		fmt.Println("\nStopped watching.")
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
