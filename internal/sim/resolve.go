package sim

import (
	"time"

	"github.com/dotslashsimran/ai-love-island/internal/models"
)

// shouldCouple reports whether two unpartnered characters have mutually
// crossed the coupling thresholds.
func shouldCouple(a, b *models.Character) bool {
	if !a.Single() || !b.Single() {
		return false
	}
	return a.EmotionalState.AttractionToward(b.ID) > 65 &&
		b.EmotionalState.AttractionToward(a.ID) > 65 &&
		a.EmotionalState.TrustToward(b.ID) > 50 &&
		b.EmotionalState.TrustToward(a.ID) > 50
}

// shouldBreakUp reports whether one side of an existing couple has fallen
// below all three breakup thresholds.
func shouldBreakUp(character, partner *models.Character) bool {
	es := character.EmotionalState
	return es.AttractionToward(partner.ID) < 30 &&
		es.TrustToward(partner.ID) < 35 &&
		es.Security < 40
}

// resolveRelationships runs once after all conversations settle, over every
// unordered pair in load order. Coupling and breakup are mutually exclusive
// per pair per pass: breakup only applies to pairs that entered the pass
// partnered, coupling only to pairs that entered it single.
func (e *Engine) resolveRelationships(st *cycleState) {
	chars := st.all()
	at := time.Now().Add(10 * time.Second)

	for i := 0; i < len(chars); i++ {
		for j := i + 1; j < len(chars); j++ {
			a, b := chars[i], chars[j]
			wasPartnered := a.PartneredWith(b.ID)

			if shouldCouple(a, b) {
				aID, bID := a.ID, b.ID
				a.CurrentPartner = &bID
				b.CurrentPartner = &aID
				a.EmotionalState.Security = models.Clamp(a.EmotionalState.Security + 15)
				b.EmotionalState.Security = models.Clamp(b.EmotionalState.Security + 15)

				st.addEvents(newEvent(at, models.EventCoupling, []string{a.ID, b.ID},
					pick(e.rng, couplingLines(a.Name, b.Name))))
				continue
			}

			if wasPartnered && (shouldBreakUp(a, b) || shouldBreakUp(b, a)) {
				a.CurrentPartner = nil
				b.CurrentPartner = nil
				a.EmotionalState.Security = models.Clamp(a.EmotionalState.Security - 20)
				b.EmotionalState.Security = models.Clamp(b.EmotionalState.Security - 20)

				st.addEvents(newEvent(at, models.EventDrift, []string{a.ID, b.ID},
					pick(e.rng, breakupLines(a.Name, b.Name))))
			}
		}
	}
}
