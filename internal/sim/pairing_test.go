package sim

import (
	"testing"

	"github.com/dotslashsimran/ai-love-island/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func charPointers(chars ...models.Character) []*models.Character {
	out := make([]*models.Character, len(chars))
	for i := range chars {
		out[i] = &chars[i]
	}
	return out
}

func pairedIDs(pairings ...[]pairing) map[string]int {
	counts := map[string]int{}
	for _, set := range pairings {
		for _, p := range set {
			counts[p.initiator]++
			counts[p.recipient]++
		}
	}
	return counts
}

func TestPairingWeight(t *testing.T) {
	initiator := testCharacter("ana", "Ana")
	candidate := testCharacter("bo", "Bo")
	initiator.EmotionalState.Attraction["bo"] = 60

	// Base: attraction + both-single bonus.
	assert.Equal(t, 75.0, pairingWeight(&initiator, &candidate))

	// Jealousy above 30 adds half its value.
	initiator.EmotionalState.Jealousy["bo"] = 40
	assert.Equal(t, 95.0, pairingWeight(&initiator, &candidate))

	// Low trust adds the clear-the-air bonus.
	initiator.EmotionalState.Trust["bo"] = 30
	assert.Equal(t, 115.0, pairingWeight(&initiator, &candidate))

	// Partnership replaces the both-single bonus with partner priority.
	bo := "bo"
	ana := "ana"
	initiator.CurrentPartner = &bo
	candidate.CurrentPartner = &ana
	assert.Equal(t, 130.0, pairingWeight(&initiator, &candidate))
}

func TestBuildPairingsEvenCountCoversEveryoneOnce(t *testing.T) {
	engine := newTestEngine(newFakeStore(), &fakeOracle{})
	chars := charPointers(
		testCharacter("ana", "Ana"),
		testCharacter("bo", "Bo"),
		testCharacter("cia", "Cia"),
		testCharacter("dev", "Dev"),
	)

	first, second := engine.buildPairings(chars)

	assert.Len(t, first, 2)
	assert.Empty(t, second, "even count needs no second pass")

	counts := pairedIDs(first)
	for _, c := range chars {
		assert.Equal(t, 1, counts[c.ID], "%s paired exactly once", c.ID)
	}
}

func TestBuildPairingsOddCountUsesSecondPass(t *testing.T) {
	engine := newTestEngine(newFakeStore(), &fakeOracle{})
	chars := charPointers(
		testCharacter("ana", "Ana"),
		testCharacter("bo", "Bo"),
		testCharacter("cia", "Cia"),
	)

	first, second := engine.buildPairings(chars)

	require.Len(t, first, 1)
	require.Len(t, second, 1, "odd character out gets a fallback pairing")

	counts := pairedIDs(first, second)
	for _, c := range chars {
		assert.GreaterOrEqual(t, counts[c.ID], 1, "%s left without a conversation", c.ID)
	}

	// The fallback initiator is the one the first pass skipped, and its
	// partner already talked once this cycle.
	firstCounts := pairedIDs(first)
	assert.Zero(t, firstCounts[second[0].initiator])
	assert.Equal(t, 1, firstCounts[second[0].recipient])
}

func TestBuildPairingsLoneCharacter(t *testing.T) {
	engine := newTestEngine(newFakeStore(), &fakeOracle{})
	chars := charPointers(testCharacter("ana", "Ana"))

	first, second := engine.buildPairings(chars)
	assert.Empty(t, first)
	assert.Empty(t, second)
}

func TestPickPartnerPrefersHighestWeight(t *testing.T) {
	engine := newTestEngine(newFakeStore(), &fakeOracle{})

	ana := testCharacter("ana", "Ana")
	ana.EmotionalState.Attraction["bo"] = 20
	ana.EmotionalState.Attraction["cia"] = 80
	chars := charPointers(ana, testCharacter("bo", "Bo"), testCharacter("cia", "Cia"))

	partner := engine.pickPartner(chars[0], chars, map[string]bool{})
	require.NotNil(t, partner)
	assert.Equal(t, "cia", partner.ID)

	// With cia consumed, bo is the only candidate left.
	partner = engine.pickPartner(chars[0], chars, map[string]bool{"cia": true})
	require.NotNil(t, partner)
	assert.Equal(t, "bo", partner.ID)

	// Nobody available.
	partner = engine.pickPartner(chars[0], chars, map[string]bool{"bo": true, "cia": true})
	assert.Nil(t, partner)
}
