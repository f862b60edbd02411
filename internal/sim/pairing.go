package sim

import (
	"math"

	"github.com/dotslashsimran/ai-love-island/internal/models"
)

// pairing is one assignment of two characters to converse this cycle.
type pairing struct {
	initiator string
	recipient string
}

// pairingWeight scores how much initiator wants to talk to candidate.
// High attraction pulls, high jealousy demands a confrontation, low trust
// means air to clear, partners get priority, and two singles get a nudge.
func pairingWeight(initiator, candidate *models.Character) float64 {
	es := initiator.EmotionalState
	w := es.AttractionToward(candidate.ID)
	if j := es.JealousyToward(candidate.ID); j > 30 {
		w += j * 0.5
	}
	if es.TrustToward(candidate.ID) < 40 {
		w += 20
	}
	if initiator.PartneredWith(candidate.ID) {
		w += 30
	}
	if initiator.Single() && candidate.Single() {
		w += 15
	}
	return w
}

// pickPartner selects the best-weighted unpaired partner for initiator, or
// nil when nobody is available.
func (e *Engine) pickPartner(initiator *models.Character, all []*models.Character, paired map[string]bool) *models.Character {
	var best *models.Character
	bestWeight := math.Inf(-1)
	for _, c := range all {
		if c.ID == initiator.ID || paired[c.ID] {
			continue
		}
		if w := pairingWeight(initiator, c) + e.rng.Float64()*20; w > bestWeight {
			best, bestWeight = c, w
		}
	}
	return best
}

// pickFallbackPartner selects a partner for a character the first pass left
// out, ignoring pairing state. The chosen partner may end up in a second
// conversation this cycle.
func (e *Engine) pickFallbackPartner(character *models.Character, all []*models.Character) *models.Character {
	es := character.EmotionalState
	var best *models.Character
	bestWeight := math.Inf(-1)
	for _, c := range all {
		if c.ID == character.ID {
			continue
		}
		w := es.AttractionToward(c.ID) + es.JealousyToward(c.ID)*0.3 + e.rng.Float64()*30
		if w > bestWeight {
			best, bestWeight = c, w
		}
	}
	return best
}

// buildPairings assigns every character a conversation partner. The first
// pass pairs mutually unpaired characters; the second pass covers anyone
// left over, re-using already-paired partners. First-pass pairings share no
// participants, so their conversations can run concurrently; second-pass
// pairings can overlap and must run after the first pass settles.
func (e *Engine) buildPairings(chars []*models.Character) (firstPass, secondPass []pairing) {
	shuffled := make([]*models.Character, len(chars))
	copy(shuffled, chars)
	e.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	paired := make(map[string]bool, len(chars))
	for _, initiator := range shuffled {
		if paired[initiator.ID] {
			continue
		}
		recipient := e.pickPartner(initiator, chars, paired)
		if recipient == nil {
			continue
		}
		paired[initiator.ID] = true
		paired[recipient.ID] = true
		firstPass = append(firstPass, pairing{initiator.ID, recipient.ID})
	}

	for _, character := range shuffled {
		if paired[character.ID] {
			continue
		}
		recipient := e.pickFallbackPartner(character, chars)
		if recipient == nil {
			continue
		}
		paired[character.ID] = true
		secondPass = append(secondPass, pairing{character.ID, recipient.ID})
	}
	return firstPass, secondPass
}
