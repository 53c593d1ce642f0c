package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	brain "github.com/BristonLowell/vinnies-brain-app-sub000"
)

var validateCmd = &cobra.Command{
	Use:   "validate <flow.json>",
	Short: "Check a flow payload for consistency",
	Long:  `Decodes the wire JSON and reports the first broken invariant: dangling start, missing yes/no options, unresolved targets.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Flow is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	eng, err := brain.Load(data, brain.WithVariant(flagVariant(cmd)))
	if err != nil {
		return err
	}
	if v := eng.Validate(); v != nil {
		return v
	}
	return nil
}
