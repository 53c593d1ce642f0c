package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
)

var rootCmd = &cobra.Command{
	Use:   "vinniesbrain",
	Short: "Authoring and preview tooling for guided troubleshooting flows",
	Long: `vinniesbrain works with the branching troubleshooting flows embedded in
support articles: validate them, preview-run them, export diagrams, and serve
them over HTTP for the mobile client.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "brain.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().String("variant", "strict", "Editor rules: basic or strict")
}

func flagVariant(cmd *cobra.Command) flow.Variant {
	v, _ := cmd.Flags().GetString("variant")
	if v == "basic" {
		return flow.Basic
	}
	return flow.Strict
}
