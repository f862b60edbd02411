package sim

import (
	"context"

	"github.com/dotslashsimran/ai-love-island/internal/models"
	"github.com/dotslashsimran/ai-love-island/internal/oracle"
)

// Store is the persistence surface the engine depends on. All writes are
// fire-and-forget from the engine's perspective; failures are logged and the
// cycle continues.
type Store interface {
	LoadCharacters(ctx context.Context) ([]models.Character, error)
	SaveCharacter(ctx context.Context, char models.Character) error
	LoadRecentInteractions(ctx context.Context, limit int) ([]models.Interaction, error)
	AppendInteraction(ctx context.Context, in models.Interaction) error
	AppendTimelineEvent(ctx context.Context, ev models.TimelineEvent) error
	AppendConfessional(ctx context.Context, conf models.Confessional) error
	AppendConversation(ctx context.Context, conv models.Conversation) error
	LoadMemory(ctx context.Context, characterID, aboutID string) (*models.CharacterMemory, error)
	SaveMemory(ctx context.Context, characterID, aboutID, entry string) error
}

// Oracle is the generative surface the engine depends on. Both calls return
// oracle.ErrUnavailable for every failure mode; the engine treats that as
// "use the fallback", never as fatal.
type Oracle interface {
	DecideForCharacter(ctx context.Context, character *models.Character, all []*models.Character, recent []models.Interaction) (*models.AgentResponse, error)
	GenerateConversation(ctx context.Context, req oracle.ConversationRequest) (*models.GeneratedConversation, error)
}
