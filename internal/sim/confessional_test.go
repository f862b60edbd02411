package sim

import (
	"context"
	"testing"

	"github.com/dotslashsimran/ai-love-island/internal/models"
	"github.com/dotslashsimran/ai-love-island/internal/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackConfessionalPriority(t *testing.T) {
	bo := "bo"

	tests := []struct {
		name  string
		setup func(c *models.Character)
		want  string
	}{
		{
			"torn between partner and crush",
			func(c *models.Character) {
				c.CurrentPartner = &bo
				c.EmotionalState.Attraction["cia"] = 70
				c.EmotionalState.Trust["bo"] = 80
			},
			"I'm with Bo, but I can't stop thinking about Cia.",
		},
		{
			"doubting the partner",
			func(c *models.Character) {
				c.CurrentPartner = &bo
				c.EmotionalState.Trust["bo"] = 30
			},
			"I don't know if I can trust Bo anymore.",
		},
		{
			"single with a crush",
			func(c *models.Character) {
				c.EmotionalState.Attraction["cia"] = 55
			},
			"Cia is definitely catching my eye.",
		},
		{
			"insecure",
			func(c *models.Character) {
				c.EmotionalState.Security = 20
			},
			"I'm not sure where I stand in here anymore.",
		},
		{
			"nothing going on",
			func(c *models.Character) {},
			"Things are getting interesting in the villa.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ana := testCharacter("ana", "Ana")
			tt.setup(&ana)

			all := charPointers(ana, testCharacter("bo", "Bo"), testCharacter("cia", "Cia"))
			assert.Equal(t, tt.want, fallbackConfessional(all[0], all))
		})
	}
}

func TestHighestAttractionSkipsPartner(t *testing.T) {
	ana := testCharacter("ana", "Ana")
	bo := "bo"
	ana.CurrentPartner = &bo
	ana.EmotionalState.Attraction["bo"] = 90
	ana.EmotionalState.Attraction["cia"] = 40

	id, value := highestAttraction(&ana)
	assert.Equal(t, "cia", id)
	assert.Equal(t, 40.0, value)
}

func TestHighestAttractionTieBreaksOnID(t *testing.T) {
	ana := testCharacter("ana", "Ana")
	ana.EmotionalState.Attraction["dev"] = 60
	ana.EmotionalState.Attraction["bo"] = 60

	id, _ := highestAttraction(&ana)
	assert.Equal(t, "bo", id)
}

func TestRunConfessionalsCount(t *testing.T) {
	chars := []models.Character{
		testCharacter("ana", "Ana"),
		testCharacter("bo", "Bo"),
		testCharacter("cia", "Cia"),
	}

	// Float64 at 0 books one visit, above 0.5 books two.
	for _, tt := range []struct {
		roll float64
		want int
	}{
		{0, 1},
		{0.9, 2},
	} {
		engine := newTestEngine(newFakeStore(), &fakeOracle{}, WithRand(fixedRand{f: tt.roll}))
		st := newCycleState(chars)
		engine.runConfessionals(context.Background(), st, nil)

		require.Len(t, st.confessionals, tt.want)
		for _, conf := range st.confessionals {
			assert.NotEmpty(t, conf.Content)
			assert.False(t, st.character(conf.CharacterID).LastConfessionalAt.IsZero())
		}
		assert.Len(t, st.events, tt.want, "one booth event per visit")
	}
}

func TestConfessionalContentPrefersOracle(t *testing.T) {
	line := "Honestly? I came here for the pool."
	orc := &fakeOracle{decide: func(*models.Character) (*models.AgentResponse, error) {
		return &models.AgentResponse{Confessional: &line}, nil
	}}
	engine := newTestEngine(newFakeStore(), orc)

	ana := testCharacter("ana", "Ana")
	all := charPointers(ana)
	assert.Equal(t, line, engine.confessionalContent(context.Background(), all[0], all, nil))
}

func TestConfessionalContentFallsBackWhenOracleOmitsIt(t *testing.T) {
	orc := &fakeOracle{decide: func(*models.Character) (*models.AgentResponse, error) {
		return &models.AgentResponse{}, nil
	}}
	engine := newTestEngine(newFakeStore(), orc)

	ana := testCharacter("ana", "Ana")
	all := charPointers(ana)
	assert.Equal(t, "Things are getting interesting in the villa.",
		engine.confessionalContent(context.Background(), all[0], all, nil))

	orc.decide = func(*models.Character) (*models.AgentResponse, error) {
		return nil, oracle.ErrUnavailable
	}
	assert.Equal(t, "Things are getting interesting in the villa.",
		engine.confessionalContent(context.Background(), all[0], all, nil))
}
