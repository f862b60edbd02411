package cli

import (
	"context"
	"fmt"

	"github.com/dotslashsimran/ai-love-island/internal/models"
	"github.com/spf13/cobra"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "Show the cast and their current state",
	RunE:  runCharacters,
}

func runCharacters(cmd *cobra.Command, args []string) error {
	chars, err := apiClient.Characters(context.Background())
	if err != nil {
		return fmt.Errorf("list characters: %w", err)
	}
	if len(chars) == 0 {
		fmt.Println(hintStyle.Render("No characters yet. Run a cycle first."))
		return nil
	}

	for _, c := range chars {
		fmt.Println(nameStyle.Render(c.Name) + "  " + hintStyle.Render(partnerLabel(c)))
		fmt.Printf("  security %.0f\n", c.EmotionalState.Security)
		for _, other := range chars {
			if other.ID == c.ID {
				continue
			}
			fmt.Printf("  → %-6s attraction %3.0f  trust %3.0f  jealousy %3.0f\n",
				other.Name,
				c.EmotionalState.AttractionToward(other.ID),
				c.EmotionalState.TrustToward(other.ID),
				c.EmotionalState.JealousyToward(other.ID))
		}
		fmt.Println()
	}
	return nil
}

func partnerLabel(c models.Character) string {
	if c.CurrentPartner == nil {
		return "single"
	}
	return "with " + models.CharacterName(*c.CurrentPartner)
}
