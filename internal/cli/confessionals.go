package cli

import (
	"context"
	"fmt"

	"github.com/dotslashsimran/ai-love-island/internal/models"
	"github.com/spf13/cobra"
)

var confessionalsLimit int

var confessionalsCmd = &cobra.Command{
	Use:   "confessionals",
	Short: "Show the latest confessional booth monologues",
	RunE:  runConfessionals,
}

func init() {
	confessionalsCmd.Flags().IntVarP(&confessionalsLimit, "limit", "n", 10, "max confessionals")
}

func runConfessionals(cmd *cobra.Command, args []string) error {
	confs, err := apiClient.Confessionals(context.Background(), confessionalsLimit)
	if err != nil {
		return fmt.Errorf("load confessionals: %w", err)
	}
	if len(confs) == 0 {
		fmt.Println(hintStyle.Render("The booth is empty. Run a cycle first."))
		return nil
	}

	for _, conf := range confs {
		ts := hintStyle.Render(conf.Timestamp.Format("15:04:05"))
		fmt.Printf("%s %s\n", ts, nameStyle.Render(models.CharacterName(conf.CharacterID)))
		fmt.Printf("  %q\n\n", conf.Content)
	}
	return nil
}
