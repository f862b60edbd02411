// Package cli provides the command-line interface for the villa.
package cli

import (
	"os"

	"github.com/dotslashsimran/ai-love-island/internal/client"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	serverURL  string
	cronSecret string

	apiClient *client.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "villa",
	Short: "Villa dating-show simulator",
	Long: `Villa drives a simulated dating show: six characters with persistent
emotional state, advanced one cycle at a time by a generative oracle.

The CLI talks to a running villa server.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		apiClient = client.New(serverURL, cronSecret)
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "villa server base URL")
	rootCmd.PersistentFlags().StringVar(&cronSecret, "secret", os.Getenv("VILLA_CRON_SECRET"), "cycle trigger secret (defaults to VILLA_CRON_SECRET)")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(confessionalsCmd)
}
