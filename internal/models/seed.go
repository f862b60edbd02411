package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// CharacterIDs lists the six fixed cast members. The cast never grows or
// shrinks during simulation.
var CharacterIDs = []string{"ayla", "miro", "sena", "ravi", "luna", "tariq"}

// SeedCharacters returns the fixed initial cast with fresh timestamps.
// Used whenever the store is empty or unreadable.
func SeedCharacters() []Character {
	now := time.Now()
	cast := []Character{
		{
			ID:        "ayla",
			Name:      "Ayla",
			AvatarURL: "https://api.dicebear.com/7.x/personas/svg?seed=ayla&backgroundColor=ffd5dc",
			Personality: Personality{
				Attachment: 85, Novelty: 40, TrustBias: 70, Volatility: 55,
			},
			EmotionalState: EmotionalState{
				Attraction: map[string]float64{"miro": 45, "sena": 30, "ravi": 55, "luna": 25, "tariq": 40},
				Trust:      map[string]float64{"miro": 50, "sena": 45, "ravi": 60, "luna": 40, "tariq": 50},
				Jealousy:   map[string]float64{"miro": 10, "sena": 15, "ravi": 5, "luna": 20, "tariq": 10},
				Security:   50,
			},
		},
		{
			ID:        "miro",
			Name:      "Miro",
			AvatarURL: "https://api.dicebear.com/7.x/personas/svg?seed=miro&backgroundColor=c0d4e8",
			Personality: Personality{
				Attachment: 35, Novelty: 25, TrustBias: 40, Volatility: 20,
			},
			EmotionalState: EmotionalState{
				Attraction: map[string]float64{"ayla": 50, "sena": 35, "ravi": 20, "luna": 45, "tariq": 25},
				Trust:      map[string]float64{"ayla": 55, "sena": 40, "ravi": 50, "luna": 35, "tariq": 55},
				Jealousy:   map[string]float64{"ayla": 5, "sena": 10, "ravi": 5, "luna": 15, "tariq": 5},
				Security:   65,
			},
		},
		{
			ID:        "sena",
			Name:      "Sena",
			AvatarURL: "https://api.dicebear.com/7.x/personas/svg?seed=sena&backgroundColor=ffe4c9",
			Personality: Personality{
				Attachment: 45, Novelty: 90, TrustBias: 60, Volatility: 50,
			},
			EmotionalState: EmotionalState{
				Attraction: map[string]float64{"ayla": 55, "miro": 40, "ravi": 60, "luna": 50, "tariq": 65},
				Trust:      map[string]float64{"ayla": 50, "miro": 45, "ravi": 55, "luna": 45, "tariq": 40},
				Jealousy:   map[string]float64{"ayla": 10, "miro": 5, "ravi": 10, "luna": 15, "tariq": 5},
				Security:   55,
			},
		},
		{
			ID:        "ravi",
			Name:      "Ravi",
			AvatarURL: "https://api.dicebear.com/7.x/personas/svg?seed=ravi&backgroundColor=d4e8c0",
			Personality: Personality{
				Attachment: 75, Novelty: 20, TrustBias: 80, Volatility: 15,
			},
			EmotionalState: EmotionalState{
				Attraction: map[string]float64{"ayla": 60, "miro": 30, "sena": 55, "luna": 40, "tariq": 25},
				Trust:      map[string]float64{"ayla": 65, "miro": 55, "sena": 50, "luna": 45, "tariq": 60},
				Jealousy:   map[string]float64{"ayla": 15, "miro": 5, "sena": 20, "luna": 10, "tariq": 5},
				Security:   70,
			},
		},
		{
			ID:        "luna",
			Name:      "Luna",
			AvatarURL: "https://api.dicebear.com/7.x/personas/svg?seed=luna&backgroundColor=e8c0e4",
			Personality: Personality{
				Attachment: 70, Novelty: 60, TrustBias: 45, Volatility: 90,
			},
			EmotionalState: EmotionalState{
				Attraction: map[string]float64{"ayla": 35, "miro": 70, "sena": 45, "ravi": 50, "tariq": 55},
				Trust:      map[string]float64{"ayla": 40, "miro": 50, "sena": 35, "ravi": 55, "tariq": 45},
				Jealousy:   map[string]float64{"ayla": 25, "miro": 30, "sena": 35, "ravi": 15, "tariq": 20},
				Security:   35,
			},
		},
		{
			ID:        "tariq",
			Name:      "Tariq",
			AvatarURL: "https://api.dicebear.com/7.x/personas/svg?seed=tariq&backgroundColor=c9c9c9",
			Personality: Personality{
				Attachment: 55, Novelty: 30, TrustBias: 55, Volatility: 25,
			},
			EmotionalState: EmotionalState{
				Attraction: map[string]float64{"ayla": 45, "miro": 25, "sena": 50, "ravi": 30, "luna": 60},
				Trust:      map[string]float64{"ayla": 50, "miro": 55, "sena": 45, "ravi": 60, "luna": 40},
				Jealousy:   map[string]float64{"ayla": 10, "miro": 5, "sena": 15, "ravi": 5, "luna": 25},
				Security:   60,
			},
		},
	}

	for i := range cast {
		cast[i].LastInteractionAt = now
		cast[i].LastConfessionalAt = now
	}
	return cast
}

// CharacterName resolves an id to a display name, falling back to the id
// itself for unknown characters.
func CharacterName(id string) string {
	for _, c := range SeedCharacters() {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

type castFile struct {
	Characters []Character `yaml:"characters"`
}

// LoadCastFile reads an alternative seed cast from a YAML file. The file
// must describe at least two characters, each with a unique id and with no
// self-references in the emotional maps.
func LoadCastFile(path string) ([]Character, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cast file: %w", err)
	}

	var f castFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse cast file: %w", err)
	}
	if len(f.Characters) < 2 {
		return nil, fmt.Errorf("cast file %s: need at least two characters, got %d", path, len(f.Characters))
	}

	now := time.Now()
	seen := map[string]bool{}
	for i := range f.Characters {
		c := &f.Characters[i]
		if c.ID == "" {
			return nil, fmt.Errorf("cast file %s: character %d has no id", path, i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("cast file %s: duplicate character id %q", path, c.ID)
		}
		seen[c.ID] = true

		// A character never keys its own emotional maps.
		delete(c.EmotionalState.Attraction, c.ID)
		delete(c.EmotionalState.Trust, c.ID)
		delete(c.EmotionalState.Jealousy, c.ID)
		c.EmotionalState.Security = Clamp(c.EmotionalState.Security)

		if c.LastInteractionAt.IsZero() {
			c.LastInteractionAt = now
		}
		if c.LastConfessionalAt.IsZero() {
			c.LastConfessionalAt = now
		}
	}
	return f.Characters, nil
}
