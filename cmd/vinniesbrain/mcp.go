package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	brain "github.com/BristonLowell/vinnies-brain-app-sub000"
	mcpAdapter "github.com/BristonLowell/vinnies-brain-app-sub000/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp <flow-file>",
	Short: "Expose a flow over the Model Context Protocol (stdio)",
	Long:  `Loads a flow document and serves validation, stepping, and the raw document as MCP tools over stdin/stdout, for use by MCP-aware assistants.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error reading flow: %v\n", err)
			os.Exit(1)
		}

		engine, err := brain.Load(data, brain.WithVariant(flagVariant(cmd)))
		if err != nil {
			fmt.Printf("Error loading flow: %v\n", err)
			os.Exit(1)
		}

		if err := mcpAdapter.NewServer(engine).ServeStdio(); err != nil {
			fmt.Printf("MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
