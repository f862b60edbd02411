package models

// AgentAction enumerates what a character decides to do on its own.
type AgentAction string

const (
	ActionPursue   AgentAction = "pursue"
	ActionMaintain AgentAction = "maintain"
	ActionPullAway AgentAction = "pull_away"
	ActionObserve  AgentAction = "observe"
)

// EmotionalUpdates are per-other-character deltas from a decision response,
// each bounded to [-10,10].
type EmotionalUpdates struct {
	Attraction map[string]float64 `json:"attraction"`
	Trust      map[string]float64 `json:"trust"`
	Jealousy   map[string]float64 `json:"jealousy"`
}

// AgentIntent is the move a character wants to make.
type AgentIntent struct {
	Target *string     `json:"target"`
	Action AgentAction `json:"action"`
}

// AgentResponse is the validated result of a character-decision oracle call.
type AgentResponse struct {
	EmotionalUpdates EmotionalUpdates `json:"emotionalUpdates"`
	Intent           AgentIntent      `json:"intent"`
	Confessional     *string          `json:"confessional"`
	LeakedExcerpt    *string          `json:"leakedExcerpt"`
}

// EmotionalShift pairs both participants' bounded deltas from a generated
// conversation, each value in [-5,5].
type EmotionalShift struct {
	Initiator PartyOutcome `json:"initiator"`
	Recipient PartyOutcome `json:"recipient"`
}

// GeneratedConversation is the validated result of a conversation oracle
// call: the dialogue turns, the symmetric emotional shift and one memory
// summary per participant's perspective.
type GeneratedConversation struct {
	Messages           []ConversationMessage `json:"messages"`
	EmotionalShift     EmotionalShift        `json:"emotionalShift"`
	MemoryForInitiator string                `json:"memoryForInitiator"`
	MemoryForRecipient string                `json:"memoryForRecipient"`
}
