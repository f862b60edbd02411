package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/dotslashsimran/ai-love-island/internal/models"
	"github.com/google/uuid"
)

// runConfessionals sends 1 or 2 randomly chosen characters to the booth.
// Each gets an oracle-written monologue when possible and a state-derived
// line otherwise; a confessional is always produced for a chosen character.
func (e *Engine) runConfessionals(ctx context.Context, st *cycleState, recent []models.Interaction) {
	candidates := st.all()
	e.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	count := 1
	if e.rng.Float64() > 0.5 {
		count = 2
	}
	if count > len(candidates) {
		count = len(candidates)
	}

	for i := 0; i < count; i++ {
		character := candidates[i]
		content := e.confessionalContent(ctx, character, st.all(), recent)

		now := time.Now()
		st.addConfessional(models.Confessional{
			ID:          uuid.NewString(),
			Timestamp:   now,
			CharacterID: character.ID,
			Content:     content,
		})
		character.LastConfessionalAt = now

		st.addEvents(newEvent(now.Add(5*time.Second+time.Duration(i)*time.Second),
			models.EventShift, []string{character.ID},
			fmt.Sprintf("%s stepped into the confessional booth.", character.Name)))
	}
}

// confessionalContent asks the oracle for a monologue, falling back to a
// deterministic line derived from the character's current state.
func (e *Engine) confessionalContent(ctx context.Context, character *models.Character, all []*models.Character, recent []models.Interaction) string {
	resp, err := e.oracle.DecideForCharacter(ctx, character, all, recent)
	if err != nil {
		e.logger.Warn("confessional oracle call failed, using fallback", "character", character.ID, "error", err)
	} else if resp.Confessional != nil {
		return *resp.Confessional
	}
	return fallbackConfessional(character, all)
}

// fallbackConfessional picks the highest-priority line the character's
// state supports: torn between partner and crush, doubting the partner,
// eyeing someone while single, feeling insecure, or a generic closer.
func fallbackConfessional(character *models.Character, all []*models.Character) string {
	var partner *models.Character
	if character.CurrentPartner != nil {
		for _, c := range all {
			if c.ID == *character.CurrentPartner {
				partner = c
			}
		}
	}

	crushID, crushValue := highestAttraction(character)
	var crush *models.Character
	for _, c := range all {
		if c.ID == crushID {
			crush = c
		}
	}

	switch {
	case partner != nil && crush != nil && crushValue > 60:
		return fmt.Sprintf("I'm with %s, but I can't stop thinking about %s.", partner.Name, crush.Name)
	case partner != nil && character.EmotionalState.TrustToward(partner.ID) < 40:
		return fmt.Sprintf("I don't know if I can trust %s anymore.", partner.Name)
	case partner == nil && crush != nil:
		return fmt.Sprintf("%s is definitely catching my eye.", crush.Name)
	case character.EmotionalState.Security < 40:
		return "I'm not sure where I stand in here anymore."
	default:
		return "Things are getting interesting in the villa."
	}
}

// highestAttraction returns the non-partner character the subject is most
// drawn to. Ties break on the lower id so the fallback is deterministic.
func highestAttraction(character *models.Character) (string, float64) {
	var bestID string
	var bestValue float64
	for id, v := range character.EmotionalState.Attraction {
		if character.CurrentPartner != nil && id == *character.CurrentPartner {
			continue
		}
		if bestID == "" || v > bestValue || (v == bestValue && id < bestID) {
			bestID, bestValue = id, v
		}
	}
	return bestID, bestValue
}
