package sim

import (
	"fmt"
	"time"

	"github.com/dotslashsimran/ai-love-island/internal/models"
	"github.com/google/uuid"
)

var cycleOpeningLines = []string{
	"The villa stirs. Alliances will be tested.",
	"Another cycle begins in the villa.",
	"Tensions are running high tonight.",
	"The islanders are restless.",
}

func conversationOpeningLines(reason models.ConversationContext, initiator, recipient string) []string {
	switch reason {
	case models.ContextPursue:
		return []string{
			fmt.Sprintf("%s pulled %s for a chat.", initiator, recipient),
			fmt.Sprintf("%s found %s alone.", initiator, recipient),
			fmt.Sprintf("%s made a move on %s.", initiator, recipient),
		}
	case models.ContextTension:
		return []string{
			fmt.Sprintf("%s confronted %s.", initiator, recipient),
			fmt.Sprintf("%s needed to clear the air with %s.", initiator, recipient),
			fmt.Sprintf("Things got heated between %s and %s.", initiator, recipient),
		}
	default:
		return []string{
			fmt.Sprintf("%s and %s caught up.", initiator, recipient),
			fmt.Sprintf("%s spent time with %s.", initiator, recipient),
			fmt.Sprintf("%s and %s had a moment.", initiator, recipient),
		}
	}
}

func positiveOutcomeLines(initiator, recipient string) []string {
	return []string{
		fmt.Sprintf("%s and %s are getting closer.", initiator, recipient),
		fmt.Sprintf("Something sparked between %s and %s.", initiator, recipient),
		fmt.Sprintf("That went well for %s.", initiator),
	}
}

func negativeOutcomeLines(initiator, recipient string) []string {
	return []string{
		fmt.Sprintf("%s walked away from %s.", recipient, initiator),
		fmt.Sprintf("That conversation left %s unsettled.", initiator),
		fmt.Sprintf("Tension between %s and %s.", initiator, recipient),
	}
}

func jealousObserverLines(observer string) []string {
	return []string{
		fmt.Sprintf("%s noticed them talking.", observer),
		fmt.Sprintf("%s watched from across the villa.", observer),
		fmt.Sprintf("%s didn't look happy.", observer),
	}
}

func couplingLines(a, b string) []string {
	return []string{
		fmt.Sprintf("%s and %s have made it official.", a, b),
		fmt.Sprintf("%s and %s are now coupled up.", a, b),
		fmt.Sprintf("It's official. %s chose %s.", a, b),
	}
}

func breakupLines(a, b string) []string {
	return []string{
		fmt.Sprintf("%s and %s have called it off.", a, b),
		fmt.Sprintf("It's over between %s and %s.", a, b),
		fmt.Sprintf("%s and %s are no longer together.", a, b),
	}
}

func newEvent(at time.Time, category models.EventCategory, actors []string, description string) models.TimelineEvent {
	return models.TimelineEvent{
		ID:          uuid.NewString(),
		Timestamp:   at,
		Category:    category,
		Actors:      actors,
		Description: description,
	}
}

// conversationCommentary turns one finished conversation into 1-3 timeline
// events: the opening line, an outcome line when the average attraction
// shift is strong either way, and sometimes a jealous-observer line when a
// participant's partner was watching.
func (e *Engine) conversationCommentary(
	initiator, recipient *models.Character,
	reason models.ConversationContext,
	initiatorDelta, recipientDelta float64,
	all []*models.Character,
) []models.TimelineEvent {
	now := time.Now()
	actors := []string{initiator.ID, recipient.ID}

	category := models.EventShift
	if reason == models.ContextTension {
		category = models.EventTension
	}
	events := []models.TimelineEvent{
		newEvent(now, category, actors,
			pick(e.rng, conversationOpeningLines(reason, initiator.Name, recipient.Name))),
	}

	avgDelta := (initiatorDelta + recipientDelta) / 2
	switch {
	case avgDelta > 3:
		events = append(events, newEvent(now.Add(2*time.Second), models.EventShift, actors,
			pick(e.rng, positiveOutcomeLines(initiator.Name, recipient.Name))))
	case avgDelta < -3:
		events = append(events, newEvent(now.Add(2*time.Second), models.EventTension, actors,
			pick(e.rng, negativeOutcomeLines(initiator.Name, recipient.Name))))
	}

	if observer := findJealousObserver(initiator.ID, recipient.ID, all); observer != nil && e.rng.Float64() > 0.4 {
		events = append(events, newEvent(now.Add(3*time.Second), models.EventTension,
			[]string{observer.ID, initiator.ID, recipient.ID},
			pick(e.rng, jealousObserverLines(observer.Name))))
	}
	return events
}

// findJealousObserver returns a third character whose current partner is one
// of the two participants.
func findJealousObserver(initiatorID, recipientID string, all []*models.Character) *models.Character {
	for _, c := range all {
		if c.ID == initiatorID || c.ID == recipientID {
			continue
		}
		if c.PartneredWith(initiatorID) || c.PartneredWith(recipientID) {
			return c
		}
	}
	return nil
}
