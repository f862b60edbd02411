package db

import (
	"context"
	"fmt"
	"time"

	"github.com/dotslashsimran/ai-love-island/internal/models"
	"github.com/surrealdb/surrealdb.go"
)

// first unwraps the leading result set of a query, tolerating empty results.
func first[T any](results *[]surrealdb.QueryResult[[]T]) []T {
	if results == nil || len(*results) == 0 {
		return nil
	}
	return (*results)[0].Result
}

// LoadCharacters returns all characters ordered by name. An empty result is
// not an error; callers fall back to the seed cast.
func (c *Client) LoadCharacters(ctx context.Context) ([]models.Character, error) {
	results, err := surrealdb.Query[[]models.Character](ctx, c.db, `
		SELECT *, record::id(id) AS id FROM character ORDER BY name
	`, nil)
	if err != nil {
		return nil, fmt.Errorf("load characters: %w", err)
	}
	return first(results), nil
}

// SaveCharacter upserts a character keyed by its stable id.
func (c *Client) SaveCharacter(ctx context.Context, char models.Character) error {
	_, err := surrealdb.Query[any](ctx, c.db, `
		UPSERT type::record("character", $id) SET
			name = $name,
			avatarUrl = $avatarUrl,
			personality = $personality,
			currentPartner = $currentPartner,
			emotionalState = $emotionalState,
			lastInteractionAt = $lastInteractionAt,
			lastConfessionalAt = $lastConfessionalAt
	`, map[string]any{
		"id":                 char.ID,
		"name":               char.Name,
		"avatarUrl":          char.AvatarURL,
		"personality":        char.Personality,
		"currentPartner":     char.CurrentPartner,
		"emotionalState":     char.EmotionalState,
		"lastInteractionAt":  char.LastInteractionAt,
		"lastConfessionalAt": char.LastConfessionalAt,
	})
	if err != nil {
		return fmt.Errorf("save character %s: %w", char.ID, err)
	}
	return nil
}

// EnsureSeeded writes the given cast if the character table is empty.
func (c *Client) EnsureSeeded(ctx context.Context, cast []models.Character) error {
	results, err := surrealdb.Query[[]struct {
		C int `json:"c"`
	}](ctx, c.db, `SELECT count() AS c FROM character GROUP ALL`, nil)
	if err != nil {
		return fmt.Errorf("count characters: %w", err)
	}
	if counts := first(results); len(counts) > 0 && counts[0].C > 0 {
		return nil
	}

	c.logger.Info("seeding characters", "count", len(cast))
	for _, char := range cast {
		if err := c.SaveCharacter(ctx, char); err != nil {
			return err
		}
	}
	return nil
}

// AppendInteraction stores one immutable interaction record.
func (c *Client) AppendInteraction(ctx context.Context, in models.Interaction) error {
	_, err := surrealdb.Query[any](ctx, c.db, `
		CREATE type::record("interaction", $id) SET
			timestamp = $timestamp,
			initiator = $initiator,
			recipient = $recipient,
			type = $type,
			effects = $effects,
			leakedExcerpt = $leakedExcerpt
	`, map[string]any{
		"id":            in.ID,
		"timestamp":     in.Timestamp,
		"initiator":     in.Initiator,
		"recipient":     in.Recipient,
		"type":          string(in.Type),
		"effects":       in.Effects,
		"leakedExcerpt": in.LeakedExcerpt,
	})
	if err != nil {
		return fmt.Errorf("append interaction: %w", err)
	}
	return nil
}

// LoadRecentInteractions returns the newest interactions, most recent first.
func (c *Client) LoadRecentInteractions(ctx context.Context, limit int) ([]models.Interaction, error) {
	results, err := surrealdb.Query[[]models.Interaction](ctx, c.db, `
		SELECT *, record::id(id) AS id FROM interaction
		ORDER BY timestamp DESC LIMIT $limit
	`, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("load recent interactions: %w", err)
	}
	return first(results), nil
}

// AppendTimelineEvent stores one immutable narrative event.
func (c *Client) AppendTimelineEvent(ctx context.Context, ev models.TimelineEvent) error {
	actors := ev.Actors
	if actors == nil {
		actors = []string{}
	}
	_, err := surrealdb.Query[any](ctx, c.db, `
		CREATE type::record("timeline_event", $id) SET
			timestamp = $timestamp,
			category = $category,
			actors = $actors,
			description = $description
	`, map[string]any{
		"id":          ev.ID,
		"timestamp":   ev.Timestamp,
		"category":    string(ev.Category),
		"actors":      actors,
		"description": ev.Description,
	})
	if err != nil {
		return fmt.Errorf("append timeline event: %w", err)
	}
	return nil
}

// LoadTimelineEvents returns the newest events, most recent first.
func (c *Client) LoadTimelineEvents(ctx context.Context, limit int) ([]models.TimelineEvent, error) {
	results, err := surrealdb.Query[[]models.TimelineEvent](ctx, c.db, `
		SELECT *, record::id(id) AS id FROM timeline_event
		ORDER BY timestamp DESC LIMIT $limit
	`, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("load timeline events: %w", err)
	}
	return first(results), nil
}

// AppendConfessional stores one immutable confessional.
func (c *Client) AppendConfessional(ctx context.Context, conf models.Confessional) error {
	_, err := surrealdb.Query[any](ctx, c.db, `
		CREATE type::record("confessional", $id) SET
			timestamp = $timestamp,
			characterId = $characterId,
			content = $content
	`, map[string]any{
		"id":          conf.ID,
		"timestamp":   conf.Timestamp,
		"characterId": conf.CharacterID,
		"content":     conf.Content,
	})
	if err != nil {
		return fmt.Errorf("append confessional: %w", err)
	}
	return nil
}

// LoadConfessionals returns the newest confessionals, most recent first.
func (c *Client) LoadConfessionals(ctx context.Context, limit int) ([]models.Confessional, error) {
	results, err := surrealdb.Query[[]models.Confessional](ctx, c.db, `
		SELECT *, record::id(id) AS id FROM confessional
		ORDER BY timestamp DESC LIMIT $limit
	`, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("load confessionals: %w", err)
	}
	return first(results), nil
}

// AppendConversation stores one immutable two-party exchange.
func (c *Client) AppendConversation(ctx context.Context, conv models.Conversation) error {
	_, err := surrealdb.Query[any](ctx, c.db, `
		CREATE type::record("conversation", $id) SET
			timestamp = $timestamp,
			participants = $participants,
			messages = $messages,
			context = $context,
			emotionalOutcome = $emotionalOutcome
	`, map[string]any{
		"id":               conv.ID,
		"timestamp":        conv.Timestamp,
		"participants":     conv.Participants[:],
		"messages":         conv.Messages,
		"context":          string(conv.Context),
		"emotionalOutcome": conv.EmotionalOutcome,
	})
	if err != nil {
		return fmt.Errorf("append conversation: %w", err)
	}
	return nil
}

// LoadConversations returns the newest conversations, most recent first.
func (c *Client) LoadConversations(ctx context.Context, limit int) ([]models.Conversation, error) {
	results, err := surrealdb.Query[[]models.Conversation](ctx, c.db, `
		SELECT *, record::id(id) AS id FROM conversation
		ORDER BY timestamp DESC LIMIT $limit
	`, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("load conversations: %w", err)
	}
	return first(results), nil
}

// LoadConversationsForCharacter returns the newest conversations involving
// the given character, most recent first.
func (c *Client) LoadConversationsForCharacter(ctx context.Context, characterID string, limit int) ([]models.Conversation, error) {
	results, err := surrealdb.Query[[]models.Conversation](ctx, c.db, `
		SELECT *, record::id(id) AS id FROM conversation
		WHERE $characterId IN participants
		ORDER BY timestamp DESC LIMIT $limit
	`, map[string]any{"characterId": characterID, "limit": limit})
	if err != nil {
		return nil, fmt.Errorf("load conversations for %s: %w", characterID, err)
	}
	return first(results), nil
}

// memoryKey builds the record key for a (character, about) memory pair.
func memoryKey(characterID, aboutID string) string {
	return characterID + "_" + aboutID
}

// LoadMemory returns what characterID remembers about aboutID, or nil when
// nothing has been recorded yet.
func (c *Client) LoadMemory(ctx context.Context, characterID, aboutID string) (*models.CharacterMemory, error) {
	results, err := surrealdb.Query[[]models.CharacterMemory](ctx, c.db, `
		SELECT * OMIT id FROM type::record("character_memory", $key)
	`, map[string]any{"key": memoryKey(characterID, aboutID)})
	if err != nil {
		return nil, fmt.Errorf("load memory %s/%s: %w", characterID, aboutID, err)
	}
	mems := first(results)
	if len(mems) == 0 {
		return nil, nil
	}
	return &mems[0], nil
}

// SaveMemory appends one entry to the rolling memory log, evicting the
// oldest entries beyond models.MemoryLimit.
func (c *Client) SaveMemory(ctx context.Context, characterID, aboutID, entry string) error {
	existing, err := c.LoadMemory(ctx, characterID, aboutID)
	if err != nil {
		return err
	}
	var memories []string
	if existing != nil {
		memories = existing.Memories
	}
	memories = models.AppendMemory(memories, entry)

	_, err = surrealdb.Query[any](ctx, c.db, `
		UPSERT type::record("character_memory", $key) SET
			characterId = $characterId,
			aboutCharacterId = $aboutCharacterId,
			memories = $memories,
			lastUpdated = $lastUpdated
	`, map[string]any{
		"key":              memoryKey(characterID, aboutID),
		"characterId":      characterID,
		"aboutCharacterId": aboutID,
		"memories":         memories,
		"lastUpdated":      time.Now(),
	})
	if err != nil {
		return fmt.Errorf("save memory %s/%s: %w", characterID, aboutID, err)
	}
	return nil
}
