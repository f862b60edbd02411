// Package db integration tests run against a real SurrealDB container.
package db

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/dotslashsimran/ai-love-island/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var testDB *Client
var testContainer testcontainers.Container

// TestMain sets up and tears down the SurrealDB container for all tests.
func TestMain(m *testing.M) {
	// Disable ryuk (cleanup container) as it can cause issues in some environments
	os.Setenv("TESTCONTAINERS_RYUK_DISABLED", "true")

	ctx := context.Background()

	var err error
	testContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "surrealdb/surrealdb:v3.0.0-beta.1",
			ExposedPorts: []string{"8000/tcp"},
			Cmd:          []string{"start", "--log", "info", "--user", "root", "--pass", "root"},
			WaitingFor:   wait.ForLog("Started web server").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		log.Fatalf("Failed to start SurrealDB container: %v", err)
	}

	host, err := testContainer.Host(ctx)
	if err != nil {
		log.Fatalf("Failed to get container host: %v", err)
	}
	// Workaround: testcontainers may return "null" as host in some environments
	if host == "" || host == "null" {
		host = "localhost"
	}
	mappedPort, err := testContainer.MappedPort(ctx, "8000")
	if err != nil {
		log.Fatalf("Failed to get mapped port: %v", err)
	}

	testDB, err = NewClient(ctx, Config{
		URL:       fmt.Sprintf("ws://%s:%s/rpc", host, mappedPort.Port()),
		Namespace: "test",
		Database:  "test",
		Username:  "root",
		Password:  "root",
		AuthLevel: "root",
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := testDB.InitSchema(ctx); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	code := m.Run()

	_ = testDB.Close(ctx)
	_ = testContainer.Terminate(ctx)

	os.Exit(code)
}

func wipe(t *testing.T) {
	t.Helper()
	require.NoError(t, testDB.WipeData(context.Background()))
}

func TestSaveAndLoadCharacters(t *testing.T) {
	ctx := context.Background()
	wipe(t)

	cast := models.SeedCharacters()
	for _, char := range cast {
		require.NoError(t, testDB.SaveCharacter(ctx, char))
	}

	loaded, err := testDB.LoadCharacters(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, len(cast))

	byID := map[string]models.Character{}
	for _, c := range loaded {
		byID[c.ID] = c
	}
	for _, want := range cast {
		got, ok := byID[want.ID]
		require.True(t, ok, "character %s missing after round-trip", want.ID)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Personality, got.Personality)
		assert.Equal(t, want.EmotionalState.Attraction, got.EmotionalState.Attraction)
		assert.Equal(t, want.EmotionalState.Security, got.EmotionalState.Security)
		assert.Nil(t, got.CurrentPartner)
	}
}

func TestSaveCharacterUpserts(t *testing.T) {
	ctx := context.Background()
	wipe(t)

	cast := models.SeedCharacters()
	char := cast[0]
	require.NoError(t, testDB.SaveCharacter(ctx, char))

	partner := cast[1].ID
	char.CurrentPartner = &partner
	char.EmotionalState.Security = 72
	require.NoError(t, testDB.SaveCharacter(ctx, char))

	loaded, err := testDB.LoadCharacters(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1, "second save must not create a duplicate")
	require.NotNil(t, loaded[0].CurrentPartner)
	assert.Equal(t, partner, *loaded[0].CurrentPartner)
	assert.Equal(t, 72.0, loaded[0].EmotionalState.Security)
}

func TestEnsureSeededIsIdempotent(t *testing.T) {
	ctx := context.Background()
	wipe(t)

	cast := models.SeedCharacters()
	require.NoError(t, testDB.EnsureSeeded(ctx, cast))

	// Mutate one character, then seed again. The mutation must survive.
	char := cast[2]
	char.EmotionalState.Security = 10
	require.NoError(t, testDB.SaveCharacter(ctx, char))
	require.NoError(t, testDB.EnsureSeeded(ctx, cast))

	loaded, err := testDB.LoadCharacters(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, len(cast))
	for _, c := range loaded {
		if c.ID == char.ID {
			assert.Equal(t, 10.0, c.EmotionalState.Security, "reseed must not overwrite state")
		}
	}
}

func TestInteractionRoundTrip(t *testing.T) {
	ctx := context.Background()
	wipe(t)

	excerpt := "I heard them whispering by the pool."
	in := models.Interaction{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC().Truncate(time.Millisecond),
		Initiator: "ayla",
		Recipient: "miro",
		Type:      models.InteractionPrivateConversation,
		Effects: &models.InteractionEffects{
			AttractionDelta: 3,
			TrustDelta:      -2,
		},
		LeakedExcerpt: &excerpt,
	}
	require.NoError(t, testDB.AppendInteraction(ctx, in))

	loaded, err := testDB.LoadRecentInteractions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	got := loaded[0]
	assert.Equal(t, in.ID, got.ID)
	assert.Equal(t, in.Initiator, got.Initiator)
	assert.Equal(t, in.Type, got.Type)
	require.NotNil(t, got.Effects)
	assert.Equal(t, 3.0, got.Effects.AttractionDelta)
	require.NotNil(t, got.LeakedExcerpt)
	assert.Equal(t, excerpt, *got.LeakedExcerpt)
}

func TestLoadRecentInteractionsOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	wipe(t)

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, testDB.AppendInteraction(ctx, models.Interaction{
			ID:        uuid.NewString(),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Initiator: "ayla",
			Recipient: "miro",
			Type:      models.InteractionPrivateConversation,
		}))
	}

	loaded, err := testDB.LoadRecentInteractions(ctx, 3)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.True(t, loaded[0].Timestamp.After(loaded[1].Timestamp), "newest first")
	assert.True(t, loaded[1].Timestamp.After(loaded[2].Timestamp))
}

func TestTimelineEventRoundTrip(t *testing.T) {
	ctx := context.Background()
	wipe(t)

	ev := models.TimelineEvent{
		ID:          uuid.NewString(),
		Timestamp:   time.Now().UTC().Truncate(time.Millisecond),
		Category:    models.EventCoupling,
		Actors:      []string{"ayla", "miro"},
		Description: "Ayla and Miro made it official.",
	}
	require.NoError(t, testDB.AppendTimelineEvent(ctx, ev))

	// Actorless events keep an empty array rather than null.
	require.NoError(t, testDB.AppendTimelineEvent(ctx, models.TimelineEvent{
		ID:          uuid.NewString(),
		Timestamp:   ev.Timestamp.Add(time.Second),
		Category:    models.EventShift,
		Description: "A new cycle begins in the villa.",
	}))

	loaded, err := testDB.LoadTimelineEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, models.EventShift, loaded[0].Category)
	assert.NotNil(t, loaded[0].Actors)
	assert.Empty(t, loaded[0].Actors)
	assert.Equal(t, []string{"ayla", "miro"}, loaded[1].Actors)
}

func TestConfessionalRoundTrip(t *testing.T) {
	ctx := context.Background()
	wipe(t)

	conf := models.Confessional{
		ID:          uuid.NewString(),
		Timestamp:   time.Now().UTC().Truncate(time.Millisecond),
		CharacterID: "luna",
		Content:     "Honestly? Everyone here is a subplot in my story.",
	}
	require.NoError(t, testDB.AppendConfessional(ctx, conf))

	loaded, err := testDB.LoadConfessionals(ctx, 10)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, conf.CharacterID, loaded[0].CharacterID)
	assert.Equal(t, conf.Content, loaded[0].Content)
}

func TestConversationRoundTripAndCharacterFilter(t *testing.T) {
	ctx := context.Background()
	wipe(t)

	base := time.Now().UTC().Truncate(time.Millisecond)
	conv := models.Conversation{
		ID:           uuid.NewString(),
		Timestamp:    base,
		Participants: [2]string{"ayla", "miro"},
		Messages: []models.ConversationMessage{
			{Speaker: "Ayla", Content: "Can I be honest with you?"},
			{Speaker: "Miro", Content: "Always."},
		},
		Context: models.ContextPursue,
		EmotionalOutcome: models.EmotionalOutcome{
			Initiator: models.PartyOutcome{AttractionDelta: 4, TrustDelta: 2},
			Recipient: models.PartyOutcome{AttractionDelta: 1, TrustDelta: 3},
		},
	}
	require.NoError(t, testDB.AppendConversation(ctx, conv))
	require.NoError(t, testDB.AppendConversation(ctx, models.Conversation{
		ID:           uuid.NewString(),
		Timestamp:    base.Add(time.Second),
		Participants: [2]string{"sena", "ravi"},
		Messages: []models.ConversationMessage{
			{Speaker: "Sena", Content: "Bold of you to sit here."},
		},
		Context: models.ContextMaintain,
	}))

	all, err := testDB.LoadConversations(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 2)

	filtered, err := testDB.LoadConversationsForCharacter(ctx, "miro", 10)
	require.NoError(t, err)
	require.Len(t, filtered, 1)

	got := filtered[0]
	assert.Equal(t, conv.ID, got.ID)
	assert.Equal(t, [2]string{"ayla", "miro"}, got.Participants)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "Can I be honest with you?", got.Messages[0].Content)
	assert.Equal(t, models.ContextPursue, got.Context)
	assert.Equal(t, 4.0, got.EmotionalOutcome.Initiator.AttractionDelta)
}

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	wipe(t)

	// Nothing recorded yet.
	mem, err := testDB.LoadMemory(ctx, "ayla", "miro")
	require.NoError(t, err)
	assert.Nil(t, mem)

	require.NoError(t, testDB.SaveMemory(ctx, "ayla", "miro", "He actually listened."))
	require.NoError(t, testDB.SaveMemory(ctx, "ayla", "miro", "Talked about the stars."))

	mem, err = testDB.LoadMemory(ctx, "ayla", "miro")
	require.NoError(t, err)
	require.NotNil(t, mem)
	assert.Equal(t, "ayla", mem.CharacterID)
	assert.Equal(t, "miro", mem.AboutCharacterID)
	assert.Equal(t, []string{"He actually listened.", "Talked about the stars."}, mem.Memories)

	// Direction matters.
	reverse, err := testDB.LoadMemory(ctx, "miro", "ayla")
	require.NoError(t, err)
	assert.Nil(t, reverse)
}

func TestMemoryEvictsBeyondLimit(t *testing.T) {
	ctx := context.Background()
	wipe(t)

	for i := 0; i < models.MemoryLimit+3; i++ {
		require.NoError(t, testDB.SaveMemory(ctx, "tariq", "luna", fmt.Sprintf("entry %d", i)))
	}

	mem, err := testDB.LoadMemory(ctx, "tariq", "luna")
	require.NoError(t, err)
	require.NotNil(t, mem)
	require.Len(t, mem.Memories, models.MemoryLimit)
	assert.Equal(t, "entry 3", mem.Memories[0], "oldest entries evicted first")
	assert.Equal(t, fmt.Sprintf("entry %d", models.MemoryLimit+2), mem.Memories[models.MemoryLimit-1])
}

func TestWipeData(t *testing.T) {
	ctx := context.Background()

	require.NoError(t, testDB.SaveCharacter(ctx, models.SeedCharacters()[0]))
	require.NoError(t, testDB.WipeData(ctx))

	chars, err := testDB.LoadCharacters(ctx)
	require.NoError(t, err)
	assert.Empty(t, chars)
}
