package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3))
	assert.Equal(t, 100.0, Clamp(180))
	assert.Equal(t, 42.5, Clamp(42.5))
}

func TestClampDelta(t *testing.T) {
	assert.Equal(t, -5.0, ClampDelta(-99, 5))
	assert.Equal(t, 5.0, ClampDelta(99, 5))
	assert.Equal(t, 3.0, ClampDelta(3, 5))
	assert.Equal(t, 10.0, ClampDelta(12, 10))
}

func TestEmotionalStateDefaults(t *testing.T) {
	es := EmotionalState{}
	assert.Equal(t, 50.0, es.AttractionToward("miro"))
	assert.Equal(t, 50.0, es.TrustToward("miro"))
	assert.Equal(t, 0.0, es.JealousyToward("miro"))
}

func TestAppendMemoryEvictsOldestFirst(t *testing.T) {
	var memories []string
	for i := 0; i < MemoryLimit+5; i++ {
		memories = AppendMemory(memories, fmt.Sprintf("memory %d", i))
	}

	require.Len(t, memories, MemoryLimit)
	assert.Equal(t, "memory 5", memories[0])
	assert.Equal(t, fmt.Sprintf("memory %d", MemoryLimit+4), memories[MemoryLimit-1])
}

func TestAppendMemoryDoesNotMutateInput(t *testing.T) {
	original := []string{"first"}
	out := AppendMemory(original, "second")

	assert.Equal(t, []string{"first"}, original)
	assert.Equal(t, []string{"first", "second"}, out)
}

func TestMemoryRecent(t *testing.T) {
	mem := &CharacterMemory{Memories: []string{"a", "b", "c", "d"}}
	assert.Equal(t, []string{"b", "c", "d"}, mem.Recent(3))
	assert.Equal(t, []string{"a", "b", "c", "d"}, mem.Recent(10))

	var nilMem *CharacterMemory
	assert.Nil(t, nilMem.Recent(3))
}

func TestSeedCharacters(t *testing.T) {
	cast := SeedCharacters()
	require.Len(t, cast, len(CharacterIDs))

	ids := map[string]bool{}
	for _, c := range cast {
		ids[c.ID] = true
	}
	for _, id := range CharacterIDs {
		assert.True(t, ids[id], "missing character %s", id)
	}

	for _, c := range cast {
		assert.Nil(t, c.CurrentPartner, "%s starts single", c.ID)

		// A character never keys its own emotional maps, and every value
		// starts inside [0,100].
		for _, m := range []map[string]float64{
			c.EmotionalState.Attraction,
			c.EmotionalState.Trust,
			c.EmotionalState.Jealousy,
		} {
			assert.Len(t, m, len(CharacterIDs)-1, "%s emotional map size", c.ID)
			assert.NotContains(t, m, c.ID, "%s references itself", c.ID)
			for id, v := range m {
				assert.True(t, ids[id], "%s references unknown %s", c.ID, id)
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 100.0)
			}
		}
		assert.GreaterOrEqual(t, c.EmotionalState.Security, 0.0)
		assert.LessOrEqual(t, c.EmotionalState.Security, 100.0)
	}
}

func TestCharacterName(t *testing.T) {
	assert.Equal(t, "Ayla", CharacterName("ayla"))
	assert.Equal(t, "nobody", CharacterName("nobody"))
}

func TestCloneIsDeep(t *testing.T) {
	cast := SeedCharacters()
	original := &cast[0]
	partner := "miro"
	original.CurrentPartner = &partner

	clone := original.Clone()
	clone.EmotionalState.Attraction["miro"] = 99
	*clone.CurrentPartner = "sena"

	assert.Equal(t, 45.0, original.EmotionalState.Attraction["miro"])
	assert.Equal(t, "miro", *original.CurrentPartner)
}
