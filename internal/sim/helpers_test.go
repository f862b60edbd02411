package sim

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dotslashsimran/ai-love-island/internal/models"
	"github.com/dotslashsimran/ai-love-island/internal/oracle"
)

// fakeStore is an in-memory Store capturing everything the engine persists.
type fakeStore struct {
	mu sync.Mutex

	characters []models.Character
	loadErr    error
	recent     []models.Interaction

	saved         map[string]models.Character
	interactions  []models.Interaction
	events        []models.TimelineEvent
	confessionals []models.Confessional
	conversations []models.Conversation
	memories      map[string][]string
}

func newFakeStore(characters ...models.Character) *fakeStore {
	return &fakeStore{
		characters: characters,
		saved:      map[string]models.Character{},
		memories:   map[string][]string{},
	}
}

func (s *fakeStore) LoadCharacters(ctx context.Context) ([]models.Character, error) {
	return s.characters, s.loadErr
}

func (s *fakeStore) SaveCharacter(ctx context.Context, char models.Character) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved[char.ID] = char
	return nil
}

func (s *fakeStore) LoadRecentInteractions(ctx context.Context, limit int) ([]models.Interaction, error) {
	return s.recent, nil
}

func (s *fakeStore) AppendInteraction(ctx context.Context, in models.Interaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interactions = append(s.interactions, in)
	return nil
}

func (s *fakeStore) AppendTimelineEvent(ctx context.Context, ev models.TimelineEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *fakeStore) AppendConfessional(ctx context.Context, conf models.Confessional) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confessionals = append(s.confessionals, conf)
	return nil
}

func (s *fakeStore) AppendConversation(ctx context.Context, conv models.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations = append(s.conversations, conv)
	return nil
}

func (s *fakeStore) LoadMemory(ctx context.Context, characterID, aboutID string) (*models.CharacterMemory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mems, ok := s.memories[characterID+"_"+aboutID]
	if !ok {
		return nil, nil
	}
	return &models.CharacterMemory{
		CharacterID:      characterID,
		AboutCharacterID: aboutID,
		Memories:         mems,
	}, nil
}

func (s *fakeStore) SaveMemory(ctx context.Context, characterID, aboutID, entry string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := characterID + "_" + aboutID
	s.memories[key] = models.AppendMemory(s.memories[key], entry)
	return nil
}

// fakeOracle answers with the configured funcs, defaulting to unavailable.
type fakeOracle struct {
	mu            sync.Mutex
	decideCalls   int
	converseCalls int

	decide   func(character *models.Character) (*models.AgentResponse, error)
	converse func(req oracle.ConversationRequest) (*models.GeneratedConversation, error)
}

func (o *fakeOracle) DecideForCharacter(ctx context.Context, character *models.Character, all []*models.Character, recent []models.Interaction) (*models.AgentResponse, error) {
	o.mu.Lock()
	o.decideCalls++
	o.mu.Unlock()
	if o.decide == nil {
		return nil, oracle.ErrUnavailable
	}
	return o.decide(character)
}

func (o *fakeOracle) GenerateConversation(ctx context.Context, req oracle.ConversationRequest) (*models.GeneratedConversation, error) {
	o.mu.Lock()
	o.converseCalls++
	o.mu.Unlock()
	if o.converse == nil {
		return nil, oracle.ErrUnavailable
	}
	return o.converse(req)
}

// fixedRand removes all randomness: zero jitter, first-element picks, no-op
// shuffles.
type fixedRand struct {
	f float64
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) IntN(n int) int { return 0 }

func (r fixedRand) Shuffle(n int, swap func(i, j int)) {}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// testCharacter builds a minimal character with neutral state.
func testCharacter(id, name string) models.Character {
	return models.Character{
		ID:   id,
		Name: name,
		EmotionalState: models.EmotionalState{
			Attraction: map[string]float64{},
			Trust:      map[string]float64{},
			Jealousy:   map[string]float64{},
			Security:   50,
		},
	}
}

// conversationWith returns a converse func producing a fixed shift.
func conversationWith(shift models.EmotionalShift) func(oracle.ConversationRequest) (*models.GeneratedConversation, error) {
	return func(req oracle.ConversationRequest) (*models.GeneratedConversation, error) {
		return &models.GeneratedConversation{
			Messages: []models.ConversationMessage{
				{Speaker: req.Initiator.Name, Content: "Hey."},
				{Speaker: req.Recipient.Name, Content: "Hey yourself."},
			},
			EmotionalShift:     shift,
			MemoryForInitiator: "Talked with " + req.Recipient.Name,
			MemoryForRecipient: "Talked with " + req.Initiator.Name,
		}, nil
	}
}
