package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one simulation cycle",
	Long: `Trigger one simulation cycle on the server and report what it created.

Fails with a conflict when a cycle is already running.`,
	RunE: runSimulate,
}

func runSimulate(cmd *cobra.Command, args []string) error {
	result, err := apiClient.Simulate(context.Background())
	if err != nil {
		return fmt.Errorf("run cycle: %w", err)
	}

	fmt.Println(successStyle.Render("Cycle complete"))
	fmt.Printf("  conversations: %d\n", result.Conversations)
	fmt.Printf("  interactions:  %d\n", result.Interactions)
	fmt.Printf("  events:        %d\n", result.Events)
	fmt.Printf("  confessionals: %d\n", result.Confessionals)
	return nil
}
