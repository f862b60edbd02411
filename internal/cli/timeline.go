package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dotslashsimran/ai-love-island/internal/models"
	"github.com/spf13/cobra"
)

var timelineLimit int

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the latest narrative events",
	RunE:  runTimeline,
}

func init() {
	timelineCmd.Flags().IntVarP(&timelineLimit, "limit", "n", 20, "max events")
}

func runTimeline(cmd *cobra.Command, args []string) error {
	events, err := apiClient.Timeline(context.Background(), timelineLimit)
	if err != nil {
		return fmt.Errorf("load timeline: %w", err)
	}
	if len(events) == 0 {
		fmt.Println(hintStyle.Render("The villa is quiet. Run a cycle first."))
		return nil
	}

	for _, ev := range events {
		ts := hintStyle.Render(ev.Timestamp.Format("15:04:05"))
		fmt.Printf("%s %s %s\n", ts, categoryStyle(ev.Category).Render(string(ev.Category)), ev.Description)
	}
	return nil
}

func categoryStyle(cat models.EventCategory) lipgloss.Style {
	switch cat {
	case models.EventCoupling:
		return couplingStyle
	case models.EventTension, models.EventDrift:
		return tensionStyle
	default:
		return shiftStyle
	}
}
