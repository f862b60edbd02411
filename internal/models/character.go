// Package models defines the entity types shared by the simulation engine,
// the store and the HTTP API.
package models

import "time"

// Personality holds the four fixed 0-100 traits of a character.
// Set at creation, never mutated during simulation.
type Personality struct {
	Attachment float64 `json:"attachment" yaml:"attachment"`
	Novelty    float64 `json:"novelty" yaml:"novelty"`
	TrustBias  float64 `json:"trustBias" yaml:"trustBias"`
	Volatility float64 `json:"volatility" yaml:"volatility"`
}

// EmotionalState holds a character's mutable feelings. The three maps are
// keyed by the ids of the other characters; a character never appears in its
// own maps. All values live in [0,100].
type EmotionalState struct {
	Attraction map[string]float64 `json:"attraction" yaml:"attraction"`
	Trust      map[string]float64 `json:"trust" yaml:"trust"`
	Jealousy   map[string]float64 `json:"jealousy" yaml:"jealousy"`
	Security   float64            `json:"security" yaml:"security"`
}

// AttractionToward returns the attraction value for id, defaulting to 50.
func (e EmotionalState) AttractionToward(id string) float64 {
	if v, ok := e.Attraction[id]; ok {
		return v
	}
	return 50
}

// TrustToward returns the trust value for id, defaulting to 50.
func (e EmotionalState) TrustToward(id string) float64 {
	if v, ok := e.Trust[id]; ok {
		return v
	}
	return 50
}

// JealousyToward returns the jealousy value for id, defaulting to 0.
func (e EmotionalState) JealousyToward(id string) float64 {
	return e.Jealousy[id]
}

// Character is one of the six fixed villa inhabitants.
type Character struct {
	ID                 string         `json:"id" yaml:"id"`
	Name               string         `json:"name" yaml:"name"`
	AvatarURL          string         `json:"avatarUrl" yaml:"avatarUrl"`
	Personality        Personality    `json:"personality" yaml:"personality"`
	CurrentPartner     *string        `json:"currentPartner" yaml:"currentPartner"`
	EmotionalState     EmotionalState `json:"emotionalState" yaml:"emotionalState"`
	LastInteractionAt  time.Time      `json:"lastInteractionAt" yaml:"lastInteractionAt"`
	LastConfessionalAt time.Time      `json:"lastConfessionalAt" yaml:"lastConfessionalAt"`
}

// PartneredWith reports whether the character is currently coupled with id.
func (c *Character) PartneredWith(id string) bool {
	return c.CurrentPartner != nil && *c.CurrentPartner == id
}

// Single reports whether the character has no current partner.
func (c *Character) Single() bool {
	return c.CurrentPartner == nil
}

// Clone returns a deep copy. The cycle engine mutates copies and only
// persists them at cycle end.
func (c *Character) Clone() *Character {
	out := *c
	if c.CurrentPartner != nil {
		p := *c.CurrentPartner
		out.CurrentPartner = &p
	}
	out.EmotionalState.Attraction = cloneMap(c.EmotionalState.Attraction)
	out.EmotionalState.Trust = cloneMap(c.EmotionalState.Trust)
	out.EmotionalState.Jealousy = cloneMap(c.EmotionalState.Jealousy)
	return &out
}

func cloneMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Clamp bounds an emotional value to [0,100]. Clamping is the universal
// recovery for numeric data; out-of-range values are never an error.
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ClampDelta bounds a delta to [-limit, limit].
func ClampDelta(v, limit float64) float64 {
	if v < -limit {
		return -limit
	}
	if v > limit {
		return limit
	}
	return v
}
