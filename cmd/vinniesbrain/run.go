package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	brain "github.com/BristonLowell/vinnies-brain-app-sub000"
	"github.com/BristonLowell/vinnies-brain-app-sub000/internal/presentation/tui"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <flow.json>",
	Short: "Preview-run a flow interactively",
	Long:  `Walks the flow from its start node, asking each question on the terminal, exactly as the remote agent would drive a customer through it.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		headless, _ := cmd.Flags().GetBool("headless")
		if err := runPreview(cmd, args[0], headless); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("headless", false, "Plain output, no banner or markdown rendering")
}

func runPreview(cmd *cobra.Command, path string, headless bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	eng, err := brain.Load(data, brain.WithVariant(flagVariant(cmd)))
	if err != nil {
		return err
	}
	if v := eng.Validate(); v != nil {
		// Preview still runs: traversal degrades safely. Authors just get told.
		fmt.Printf("Warning: flow has a problem (%v); preview will degrade at broken links.\n", v)
	}

	interactive := !headless && term.IsTerminal(int(os.Stdout.Fd()))
	render := func(s string) string { return s }
	if interactive {
		tui.PrintBanner()
		markdown := tui.NewRenderer()
		render = func(s string) string {
			out, err := markdown(s)
			if err != nil {
				return s
			}
			return out
		}
	}

	preview := eng.Preview()
	state := preview.Restart()
	scanner := bufio.NewScanner(os.Stdin)

	for !state.Terminal() {
		node := eng.Graph().Node(state.NodeID)
		if node == nil {
			// Unreachable in practice: Step degrades first. Nudge it anyway.
			state = preview.Step(state, "")
			continue
		}

		if node.Title != "" {
			fmt.Println(node.Title)
		}
		if node.Body != "" {
			fmt.Print(render(node.Body))
		}
		labels := make([]string, 0, len(node.Options))
		for _, opt := range node.Options {
			labels = append(labels, opt.Label)
		}
		fmt.Printf("[%s] > ", strings.Join(labels, "/"))

		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		answer := strings.TrimSpace(scanner.Text())

		// Resolve, not state comparison: a self-loop answer is a real choice
		// and should re-ask the question, not scold the user.
		if _, ok := preview.Resolve(state, answer); !ok {
			fmt.Printf("Please answer one of: %s\n", strings.Join(labels, ", "))
			continue
		}
		state = preview.Step(state, answer)
	}

	fmt.Println(outcomeMessage(state.Outcome))
	return nil
}

func outcomeMessage(o flow.Outcome) string {
	switch o {
	case flow.OutcomeDone:
		return "✅ Issue resolved."
	case flow.OutcomeEscalate:
		return "📞 Escalating to a human operator."
	default:
		return "🤷 This guide doesn't apply to your situation."
	}
}
