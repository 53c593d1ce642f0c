package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	brain "github.com/BristonLowell/vinnies-brain-app-sub000"
	"github.com/BristonLowell/vinnies-brain-app-sub000/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <flow.json>",
	Short: "Export the flow visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the flow's questions, options, and terminal outcomes.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error reading flow: %v\n", err)
			os.Exit(1)
		}

		eng, err := brain.Load(data, brain.WithVariant(flagVariant(cmd)))
		if err != nil {
			fmt.Printf("Error decoding flow: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(eng.Graph(), nil))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
