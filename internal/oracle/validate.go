package oracle

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dotslashsimran/ai-love-island/internal/models"
)

const (
	decisionDeltaLimit     = 10
	conversationDeltaLimit = 5
)

// agentResponseRaw mirrors the loosely typed decision JSON before
// validation.
type agentResponseRaw struct {
	EmotionalUpdates map[string]json.RawMessage `json:"emotionalUpdates"`
	Intent           *struct {
		Target any    `json:"target"`
		Action string `json:"action"`
	} `json:"intent"`
	Confessional  any `json:"confessional"`
	LeakedExcerpt any `json:"leakedExcerpt"`
}

// validateAgentResponse enforces the decision response contract: both
// required top-level keys present, deltas clamped to [-10,10], unknown
// actions coerced to observe, text fields string-or-nil.
func validateAgentResponse(raw agentResponseRaw) (*models.AgentResponse, error) {
	if raw.EmotionalUpdates == nil || raw.Intent == nil {
		return nil, errors.New("missing emotionalUpdates or intent")
	}

	updates := models.EmotionalUpdates{
		Attraction: map[string]float64{},
		Trust:      map[string]float64{},
		Jealousy:   map[string]float64{},
	}
	for key, dst := range map[string]map[string]float64{
		"attraction": updates.Attraction,
		"trust":      updates.Trust,
		"jealousy":   updates.Jealousy,
	} {
		payload, ok := raw.EmotionalUpdates[key]
		if !ok {
			continue
		}
		var deltas map[string]float64
		if err := json.Unmarshal(payload, &deltas); err != nil {
			// Non-numeric deltas are dropped, not fatal.
			continue
		}
		for id, delta := range deltas {
			dst[id] = models.ClampDelta(delta, decisionDeltaLimit)
		}
	}

	action := models.AgentAction(raw.Intent.Action)
	switch action {
	case models.ActionPursue, models.ActionMaintain, models.ActionPullAway, models.ActionObserve:
	default:
		action = models.ActionObserve
	}

	return &models.AgentResponse{
		EmotionalUpdates: updates,
		Intent: models.AgentIntent{
			Target: optString(raw.Intent.Target),
			Action: action,
		},
		Confessional:  optString(raw.Confessional),
		LeakedExcerpt: optString(raw.LeakedExcerpt),
	}, nil
}

// conversationRaw mirrors the loosely typed conversation JSON before
// validation.
type conversationRaw struct {
	Messages []struct {
		Speaker string `json:"speaker"`
		Content string `json:"content"`
	} `json:"messages"`
	EmotionalShift *struct {
		Initiator *partyDeltaRaw `json:"initiator"`
		Recipient *partyDeltaRaw `json:"recipient"`
	} `json:"emotionalShift"`
	MemoryForInitiator any `json:"memoryForInitiator"`
	MemoryForRecipient any `json:"memoryForRecipient"`
}

type partyDeltaRaw struct {
	AttractionDelta *float64 `json:"attractionDelta"`
	TrustDelta      *float64 `json:"trustDelta"`
}

// clampParty turns a possibly missing delta pair into a bounded outcome.
// Missing numeric fields default to 0.
func clampParty(raw *partyDeltaRaw) models.PartyOutcome {
	var out models.PartyOutcome
	if raw == nil {
		return out
	}
	if raw.AttractionDelta != nil {
		out.AttractionDelta = models.ClampDelta(*raw.AttractionDelta, conversationDeltaLimit)
	}
	if raw.TrustDelta != nil {
		out.TrustDelta = models.ClampDelta(*raw.TrustDelta, conversationDeltaLimit)
	}
	return out
}

// validateConversation enforces the conversation response contract:
// non-empty dialogue with each message stamped at validation time, shifts
// clamped to [-5,5] with missing values defaulted to 0, and fallback memory
// summaries naming the counterpart.
func validateConversation(raw conversationRaw, initiatorName, recipientName string) (*models.GeneratedConversation, error) {
	if len(raw.Messages) == 0 {
		return nil, errors.New("conversation has no messages")
	}

	now := time.Now()
	messages := make([]models.ConversationMessage, 0, len(raw.Messages))
	for _, m := range raw.Messages {
		messages = append(messages, models.ConversationMessage{
			Speaker:   m.Speaker,
			Content:   m.Content,
			Timestamp: now,
		})
	}

	var shift models.EmotionalShift
	if raw.EmotionalShift != nil {
		shift.Initiator = clampParty(raw.EmotionalShift.Initiator)
		shift.Recipient = clampParty(raw.EmotionalShift.Recipient)
	}

	memInitiator := fmt.Sprintf("Had a conversation with %s", recipientName)
	if s := optString(raw.MemoryForInitiator); s != nil {
		memInitiator = *s
	}
	memRecipient := fmt.Sprintf("Had a conversation with %s", initiatorName)
	if s := optString(raw.MemoryForRecipient); s != nil {
		memRecipient = *s
	}

	return &models.GeneratedConversation{
		Messages:           messages,
		EmotionalShift:     shift,
		MemoryForInitiator: memInitiator,
		MemoryForRecipient: memRecipient,
	}, nil
}
