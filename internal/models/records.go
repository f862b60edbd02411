package models

import "time"

// InteractionType enumerates the kinds of directed exchanges.
type InteractionType string

const (
	InteractionPrivateConversation InteractionType = "private_conversation"
	InteractionSustained           InteractionType = "sustained_interaction"
	InteractionWithdrawal          InteractionType = "withdrawal"
)

// InteractionEffects are the deltas actually applied by an interaction.
type InteractionEffects struct {
	AttractionDelta float64 `json:"attractionDelta,omitempty"`
	TrustDelta      float64 `json:"trustDelta,omitempty"`
	JealousyDelta   float64 `json:"jealousyDelta,omitempty"`
}

// Interaction is an immutable record of one directed exchange.
type Interaction struct {
	ID            string              `json:"id"`
	Timestamp     time.Time           `json:"timestamp"`
	Initiator     string              `json:"initiator"`
	Recipient     string              `json:"recipient"`
	Type          InteractionType     `json:"type"`
	Effects       *InteractionEffects `json:"effects,omitempty"`
	LeakedExcerpt *string             `json:"leakedExcerpt"`
}

// Involves reports whether the character took part in the interaction.
func (i Interaction) Involves(characterID string) bool {
	return i.Initiator == characterID || i.Recipient == characterID
}

// EventCategory enumerates timeline event kinds.
type EventCategory string

const (
	EventShift        EventCategory = "shift"
	EventTension      EventCategory = "tension"
	EventCoupling     EventCategory = "coupling"
	EventDrift        EventCategory = "drift"
	EventConversation EventCategory = "conversation"
)

// TimelineEvent is an immutable narrative record shown on the dashboard feed.
type TimelineEvent struct {
	ID          string        `json:"id"`
	Timestamp   time.Time     `json:"timestamp"`
	Category    EventCategory `json:"category"`
	Actors      []string      `json:"actors"`
	Description string        `json:"description"`
}

// Confessional is a private first-person monologue for one character.
type Confessional struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	CharacterID string    `json:"characterId"`
	Content     string    `json:"content"`
}

// ConversationContext is what prompted a conversation.
type ConversationContext string

const (
	ContextPursue   ConversationContext = "pursue"
	ContextMaintain ConversationContext = "maintain"
	ContextTension  ConversationContext = "tension"
)

// ConversationMessage is one turn of dialogue.
type ConversationMessage struct {
	Speaker   string    `json:"speaker"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// PartyOutcome is one participant's emotional shift from a conversation.
// Deltas are bounded to [-5,5].
type PartyOutcome struct {
	AttractionDelta float64 `json:"attractionDelta"`
	TrustDelta      float64 `json:"trustDelta"`
}

// EmotionalOutcome pairs both participants' shifts.
type EmotionalOutcome struct {
	Initiator PartyOutcome `json:"initiator"`
	Recipient PartyOutcome `json:"recipient"`
}

// Conversation is an immutable record of a full two-party exchange.
// Participants are ordered [initiator, recipient].
type Conversation struct {
	ID               string                `json:"id"`
	Timestamp        time.Time             `json:"timestamp"`
	Participants     [2]string             `json:"participants"`
	Messages         []ConversationMessage `json:"messages"`
	Context          ConversationContext   `json:"context"`
	EmotionalOutcome EmotionalOutcome      `json:"emotionalOutcome"`
}

// MemoryLimit caps the rolling memory log per (character, other) pair.
const MemoryLimit = 10

// CharacterMemory is a rolling log of what one character remembers about
// another. Bounded to the most recent MemoryLimit entries, oldest first out.
type CharacterMemory struct {
	CharacterID      string    `json:"characterId"`
	AboutCharacterID string    `json:"aboutCharacterId"`
	Memories         []string  `json:"memories"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

// Recent returns the last n memories, most recent last.
func (m *CharacterMemory) Recent(n int) []string {
	if m == nil || len(m.Memories) == 0 {
		return nil
	}
	if len(m.Memories) <= n {
		return m.Memories
	}
	return m.Memories[len(m.Memories)-n:]
}

// AppendMemory appends entry to memories, evicting the oldest entries beyond
// MemoryLimit.
func AppendMemory(memories []string, entry string) []string {
	out := append(append([]string{}, memories...), entry)
	if len(out) > MemoryLimit {
		out = out[len(out)-MemoryLimit:]
	}
	return out
}
