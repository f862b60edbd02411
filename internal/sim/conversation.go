package sim

import (
	"context"
	"time"

	"github.com/dotslashsimran/ai-love-island/internal/models"
	"github.com/dotslashsimran/ai-love-island/internal/oracle"
	"github.com/google/uuid"
)

// conversationReason classifies what prompts a pairing to talk: tension when
// either side's jealousy toward the other exceeds 40 or trust is below 35,
// pursuit when the initiator is attracted past 60 to a non-partner,
// otherwise a casual maintain.
func conversationReason(initiator, recipient *models.Character) models.ConversationContext {
	ies, res := initiator.EmotionalState, recipient.EmotionalState
	if ies.JealousyToward(recipient.ID) > 40 || ies.TrustToward(recipient.ID) < 35 ||
		res.JealousyToward(initiator.ID) > 40 || res.TrustToward(initiator.ID) < 35 {
		return models.ContextTension
	}
	if ies.AttractionToward(recipient.ID) > 60 && !initiator.PartneredWith(recipient.ID) {
		return models.ContextPursue
	}
	return models.ContextMaintain
}

// runConversation drives one pairing end to end: classify the context, pull
// both memory logs, generate the exchange, apply the bounded emotional
// shifts, and record the conversation, the interaction and the commentary.
// Every failure skips the pairing without touching either character, so one
// bad pairing never poisons the rest of the cycle.
func (e *Engine) runConversation(ctx context.Context, st *cycleState, p pairing) {
	initiator := st.character(p.initiator)
	recipient := st.character(p.recipient)
	reason := conversationReason(initiator, recipient)

	initiatorMem, err := e.store.LoadMemory(ctx, initiator.ID, recipient.ID)
	if err != nil {
		e.logger.Warn("loading initiator memory failed", "initiator", initiator.ID, "recipient", recipient.ID, "error", err)
	}
	recipientMem, err := e.store.LoadMemory(ctx, recipient.ID, initiator.ID)
	if err != nil {
		e.logger.Warn("loading recipient memory failed", "initiator", initiator.ID, "recipient", recipient.ID, "error", err)
	}

	generated, err := e.oracle.GenerateConversation(ctx, oracle.ConversationRequest{
		Initiator:         initiator,
		Recipient:         recipient,
		InitiatorMemories: initiatorMem,
		RecipientMemories: recipientMem,
		Reason:            reason,
	})
	if err != nil {
		e.logger.Warn("conversation skipped",
			"initiator", initiator.ID, "recipient", recipient.ID, "reason", reason, "error", err)
		return
	}

	now := time.Now()
	shift := generated.EmotionalShift
	applyShift(initiator, recipient.ID, shift.Initiator, now)
	applyShift(recipient, initiator.ID, shift.Recipient, now)

	st.addConversation(models.Conversation{
		ID:           uuid.NewString(),
		Timestamp:    now,
		Participants: [2]string{initiator.ID, recipient.ID},
		Messages:     generated.Messages,
		Context:      reason,
		EmotionalOutcome: models.EmotionalOutcome{
			Initiator: shift.Initiator,
			Recipient: shift.Recipient,
		},
	})

	interactionType := models.InteractionPrivateConversation
	if reason == models.ContextTension {
		interactionType = models.InteractionSustained
	}
	st.addInteraction(models.Interaction{
		ID:        uuid.NewString(),
		Timestamp: now,
		Initiator: initiator.ID,
		Recipient: recipient.ID,
		Type:      interactionType,
		Effects: &models.InteractionEffects{
			AttractionDelta: shift.Initiator.AttractionDelta,
			TrustDelta:      shift.Initiator.TrustDelta,
		},
	})

	st.addEvents(e.conversationCommentary(initiator, recipient, reason,
		shift.Initiator.AttractionDelta, shift.Recipient.AttractionDelta, st.all())...)

	if err := e.store.SaveMemory(ctx, initiator.ID, recipient.ID, generated.MemoryForInitiator); err != nil {
		e.logger.Error("saving initiator memory failed", "initiator", initiator.ID, "recipient", recipient.ID, "error", err)
	}
	if err := e.store.SaveMemory(ctx, recipient.ID, initiator.ID, generated.MemoryForRecipient); err != nil {
		e.logger.Error("saving recipient memory failed", "initiator", initiator.ID, "recipient", recipient.ID, "error", err)
	}
}

// applyShift mutates one participant's feelings toward the other by the
// bounded conversation outcome, clamping back into [0,100].
func applyShift(c *models.Character, otherID string, outcome models.PartyOutcome, at time.Time) {
	es := &c.EmotionalState
	es.Attraction[otherID] = models.Clamp(es.AttractionToward(otherID) + outcome.AttractionDelta)
	es.Trust[otherID] = models.Clamp(es.TrustToward(otherID) + outcome.TrustDelta)
	c.LastInteractionAt = at
}
