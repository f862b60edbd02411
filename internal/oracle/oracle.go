// Package oracle wraps the external generative service that decides what
// characters do and what they say to each other. All responses are loosely
// typed JSON; validation clamps out-of-range values instead of rejecting
// them, and every failure mode collapses to ErrUnavailable so callers can
// fall back without aborting a cycle.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dotslashsimran/ai-love-island/internal/config"
	"github.com/dotslashsimran/ai-love-island/internal/metrics"
	"github.com/dotslashsimran/ai-love-island/internal/models"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrUnavailable is returned for every oracle failure mode: missing
// credentials, transport errors, timeouts and malformed responses. Callers
// treat it as "use the fallback", never as fatal.
var ErrUnavailable = errors.New("oracle unavailable")

const (
	decisionMaxTokens     = 500
	conversationMaxTokens = 1000
	temperature           = 0.9
)

// ConversationRequest carries everything needed to generate a two-party
// exchange.
type ConversationRequest struct {
	Initiator         *models.Character
	Recipient         *models.Character
	InitiatorMemories *models.CharacterMemory
	RecipientMemories *models.CharacterMemory
	Reason            models.ConversationContext
}

// Oracle is the adapter for the external generative service.
type Oracle struct {
	llm       llms.Model
	modelName string
	timeout   time.Duration
	logger    *slog.Logger
	metrics   *metrics.Collector
}

// New creates an oracle from configuration. A missing credential does not
// fail construction: the oracle comes up disabled and every call returns
// ErrUnavailable, which keeps the simulation on its fallback paths.
func New(cfg config.Config, logger *slog.Logger, collector *metrics.Collector) (*Oracle, error) {
	o := &Oracle{
		modelName: cfg.OracleModel,
		timeout:   cfg.OracleTimeout,
		logger:    logger,
		metrics:   collector,
	}

	switch cfg.OracleProvider {
	case config.ProviderOpenAI:
		if cfg.OracleAPIKey == "" {
			logger.Warn("oracle API key not configured, running disabled")
			return o, nil
		}
		model, err := openai.New(
			openai.WithToken(cfg.OracleAPIKey),
			openai.WithModel(cfg.OracleModel),
			openai.WithBaseURL(cfg.OracleBaseURL),
		)
		if err != nil {
			return nil, fmt.Errorf("create openai model: %w", err)
		}
		o.llm = model

	case config.ProviderAnthropic:
		if cfg.OracleAPIKey == "" {
			logger.Warn("oracle API key not configured, running disabled")
			return o, nil
		}
		model, err := anthropic.New(
			anthropic.WithToken(cfg.OracleAPIKey),
			anthropic.WithModel(cfg.OracleModel),
		)
		if err != nil {
			return nil, fmt.Errorf("create anthropic model: %w", err)
		}
		o.llm = model

	case config.ProviderOllama:
		model, err := ollama.New(
			ollama.WithModel(cfg.OracleModel),
			ollama.WithServerURL(cfg.OllamaHost),
		)
		if err != nil {
			return nil, fmt.Errorf("create ollama model: %w", err)
		}
		o.llm = model

	default:
		return nil, fmt.Errorf("unsupported oracle provider: %s", cfg.OracleProvider)
	}

	return o, nil
}

// NewWithModel creates an oracle around an existing model (for testing).
func NewWithModel(model llms.Model, logger *slog.Logger) *Oracle {
	return &Oracle{
		llm:       model,
		modelName: "test",
		timeout:   5 * time.Second,
		logger:    logger,
	}
}

// Enabled reports whether a generative backend is configured.
func (o *Oracle) Enabled() bool {
	return o.llm != nil
}

// DecideForCharacter asks the oracle for a character's autonomous move:
// bounded emotional deltas, an intent, and optional confessional and leaked
// excerpt text, all in the character's own voice.
func (o *Oracle) DecideForCharacter(
	ctx context.Context,
	character *models.Character,
	all []*models.Character,
	recent []models.Interaction,
) (*models.AgentResponse, error) {
	system := buildDecisionSystemPrompt(character)
	user := buildDecisionUserPrompt(character, all, recent)

	var raw agentResponseRaw
	if err := o.generateJSON(ctx, metrics.OpOracleDecision, system, user, decisionMaxTokens, &raw); err != nil {
		return nil, err
	}

	resp, err := validateAgentResponse(raw)
	if err != nil {
		o.logger.Warn("oracle decision response rejected", "character", character.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

// GenerateConversation asks the oracle for a full two-party exchange:
// dialogue turns, a symmetric emotional shift and a memory summary per
// participant.
func (o *Oracle) GenerateConversation(ctx context.Context, req ConversationRequest) (*models.GeneratedConversation, error) {
	prompt := buildConversationPrompt(req)

	var raw conversationRaw
	if err := o.generateJSON(ctx, metrics.OpOracleConversation, "", prompt, conversationMaxTokens, &raw); err != nil {
		return nil, err
	}

	conv, err := validateConversation(raw, req.Initiator.Name, req.Recipient.Name)
	if err != nil {
		o.logger.Warn("oracle conversation response rejected",
			"initiator", req.Initiator.ID, "recipient", req.Recipient.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return conv, nil
}

// generateJSON runs one validated oracle call: prompt in, fenced-JSON
// tolerant parse into out. Both logical request shapes share this path.
func (o *Oracle) generateJSON(ctx context.Context, op, system, user string, maxTokens int, out any) error {
	if o.llm == nil {
		return ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	var messages []llms.MessageContent
	if system != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, system))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, user))

	start := time.Now()
	resp, err := o.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		o.metrics.RecordFailure(op)
		o.logger.Warn("oracle call failed", "op", op, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	o.metrics.RecordTiming(op, time.Since(start))

	if len(resp.Choices) == 0 {
		o.metrics.RecordFailure(op)
		return fmt.Errorf("%w: empty response", ErrUnavailable)
	}

	if err := decodeJSONResponse(resp.Choices[0].Content, out); err != nil {
		o.metrics.RecordFailure(op)
		o.logger.Warn("oracle returned malformed JSON", "op", op, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
