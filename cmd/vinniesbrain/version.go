package main

import (
	"fmt"

	"github.com/spf13/cobra"

	brain "github.com/BristonLowell/vinnies-brain-app-sub000"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vinniesbrain version %s\n", brain.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
