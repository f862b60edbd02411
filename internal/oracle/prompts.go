package oracle

import (
	"fmt"
	"strings"

	"github.com/dotslashsimran/ai-love-island/internal/models"
)

// buildDecisionSystemPrompt embeds the character's full persona and the JSON
// response contract for a decision call.
func buildDecisionSystemPrompt(character *models.Character) string {
	profile := speechProfiles[character.ID]

	quirks := make([]string, 0, len(profile.Quirks))
	for _, q := range profile.Quirks {
		quirks = append(quirks, "- "+q)
	}
	phrases := make([]string, 0, len(profile.ExamplePhrases))
	for _, p := range profile.ExamplePhrases {
		phrases = append(phrases, fmt.Sprintf("%q", p))
	}

	return fmt.Sprintf(`You are %s, a contestant on a dating show in a villa with five other people.

WHO YOU ARE:
%s

HOW YOU SPEAK:
%s

YOUR QUIRKS:
%s

HOW YOU FLIRT:
%s

YOUR VULNERABILITIES:
%s

PHRASES YOU MIGHT SAY:
%s

Your emotional tendencies (0-100 scale):
- Attachment: %g (how fast you catch feelings)
- Novelty seeking: %g (desire for new connections vs loyalty)
- Trust bias: %g (how easily you trust)
- Volatility: %g (emotional swings)

You are here to find love. You act on feelings, attraction, and instincts.
You take risks. You pursue people who interest you.
You get jealous. You feel insecure. You make moves.

IMPORTANT: You should frequently "pursue" people you're attracted to. This means pulling them aside for private conversations. Don't just observe - make moves.

Respond ONLY with valid JSON:
{
  "emotionalUpdates": {
    "attraction": { "characterId": delta },
    "trust": { "characterId": delta },
    "jealousy": { "characterId": delta }
  },
  "intent": {
    "target": "characterId or null",
    "action": "pursue | maintain | pull_away | observe"
  },
  "confessional": "your private thought IN YOUR VOICE (1-2 sentences) or null",
  "leakedExcerpt": "something you might say out loud IN YOUR VOICE (under 10 words) or null"
}

CRITICAL: Your confessional and leakedExcerpt MUST sound like YOU. Use your speech patterns, your phrases, your accent. Stay in character.

Actions explained:
- pursue: Pull someone aside for a private conversation. Do this when attracted to someone.
- maintain: Stay close to your current partner or someone you're comfortable with.
- pull_away: Create distance from someone. Do this when trust is broken or feelings fade.
- observe: Watch from afar. Only do this if genuinely unsure what to do.

Deltas: -10 to +10. Only include characters whose feelings changed.`,
		character.Name,
		profile.Background,
		profile.SpeakingStyle,
		strings.Join(quirks, "\n"),
		profile.FlirtStyle,
		profile.Vulnerabilities,
		strings.Join(phrases, ", "),
		character.Personality.Attachment,
		character.Personality.Novelty,
		character.Personality.TrustBias,
		character.Personality.Volatility,
	)
}

// buildDecisionUserPrompt describes the character's current situation: who is
// available, how they feel about everyone, and their recent history.
func buildDecisionUserPrompt(character *models.Character, all []*models.Character, recent []models.Interaction) string {
	others := make([]*models.Character, 0, len(all)-1)
	for _, c := range all {
		if c.ID != character.ID {
			others = append(others, c)
		}
	}

	var summaries []string
	for _, in := range recent {
		if !in.Involves(character.ID) {
			continue
		}
		if len(summaries) == 10 {
			break
		}
		other := in.Recipient
		role := "initiated"
		if in.Recipient == character.ID {
			other = in.Initiator
			role = "received"
		}
		kind := strings.ReplaceAll(string(in.Type), "_", " ")
		summaries = append(summaries, fmt.Sprintf("- %s %s with %s", role, kind, models.CharacterName(other)))
	}
	history := strings.Join(summaries, "\n")
	if history == "" {
		history = "Nothing notable"
	}

	var singles, taken []string
	for _, o := range others {
		if o.Single() {
			singles = append(singles, o.Name)
		} else {
			taken = append(taken, fmt.Sprintf("%s (with %s)", o.Name, models.CharacterName(*o.CurrentPartner)))
		}
	}
	singlesLine := "Nobody"
	if len(singles) > 0 {
		singlesLine = strings.Join(singles, ", ")
	}
	takenLine := "Nobody"
	if len(taken) > 0 {
		takenLine = strings.Join(taken, ", ")
	}

	status := "SINGLE"
	if character.CurrentPartner != nil {
		status = "coupled with " + models.CharacterName(*character.CurrentPartner)
	}

	var feelings []string
	for _, o := range others {
		feelings = append(feelings, fmt.Sprintf("- %s: attraction=%g, trust=%g, jealousy=%g",
			o.Name,
			character.EmotionalState.AttractionToward(o.ID),
			character.EmotionalState.TrustToward(o.ID),
			character.EmotionalState.JealousyToward(o.ID)))
	}

	suggestion := buildSuggestion(character, others)

	return fmt.Sprintf(`CURRENT SITUATION:
You are: %s
Security level: %g/100

YOUR FEELINGS:
%s

WHO'S AVAILABLE:
Single: %s
Taken: %s

RECENT HISTORY:
%s
%s

What do you do? Who do you pursue, maintain connection with, or pull away from?`,
		status,
		character.EmotionalState.Security,
		strings.Join(feelings, "\n"),
		singlesLine,
		takenLine,
		history,
		suggestion,
	)
}

// buildSuggestion nudges the character toward whoever their current state
// points at. Empty when there is nothing worth nudging about.
func buildSuggestion(character *models.Character, others []*models.Character) string {
	if character.Single() {
		for _, o := range others {
			if character.EmotionalState.AttractionToward(o.ID) > 55 {
				return fmt.Sprintf("\nYou've been thinking about %s. Maybe it's time to make a move.", o.Name)
			}
		}
		return "\nYou're single. Who catches your eye?"
	}
	for _, o := range others {
		if o.ID != *character.CurrentPartner && character.EmotionalState.AttractionToward(o.ID) > 60 {
			return fmt.Sprintf("\nYou're with %s, but you can't stop thinking about %s.",
				models.CharacterName(*character.CurrentPartner), o.Name)
		}
	}
	return ""
}

var reasonContext = map[models.ConversationContext]string{
	models.ContextPursue:   "%s is actively interested in %s and initiates conversation with romantic intent.",
	models.ContextMaintain: "%s and %s are comfortable with each other. This is a casual, intimate moment.",
	models.ContextTension:  "There's unresolved tension between them. Something feels off or uncertain.",
}

// buildConversationPrompt lays out both participants, their mutual feelings
// and memories, the reason for the exchange, and the JSON contract.
func buildConversationPrompt(req ConversationRequest) string {
	initiator, recipient := req.Initiator, req.Recipient

	initiatorFeelings := fmt.Sprintf("attraction: %g, trust: %g, jealousy: %g",
		initiator.EmotionalState.AttractionToward(recipient.ID),
		initiator.EmotionalState.TrustToward(recipient.ID),
		initiator.EmotionalState.JealousyToward(recipient.ID))
	recipientFeelings := fmt.Sprintf("attraction: %g, trust: %g, jealousy: %g",
		recipient.EmotionalState.AttractionToward(initiator.ID),
		recipient.EmotionalState.TrustToward(initiator.ID),
		recipient.EmotionalState.JealousyToward(initiator.ID))

	context := reasonContext[req.Reason]
	if strings.Contains(context, "%s") {
		context = fmt.Sprintf(context, initiator.Name, recipient.Name)
	}

	return fmt.Sprintf(`You are simulating a private conversation between two people in a romantic social environment (like a dating show villa).

CHARACTERS:
%s (initiating):
- Personality: attachment=%g, novelty=%g, volatility=%g
- Feelings toward %s: %s
- Partner: %s
%s

%s (responding):
- Personality: attachment=%g, novelty=%g, volatility=%g
- Feelings toward %s: %s
- Partner: %s
%s

CONTEXT: %s

Generate a realistic, emotionally authentic conversation of 4-8 exchanges. The dialogue should:
- Feel natural and human, not scripted
- Show subtext and emotional undercurrents
- Include flirtation, vulnerability, or tension as appropriate
- Never be explicit, but can be suggestive and intimate
- Reflect each character's personality and current feelings
- Reference memories if relevant

Respond with JSON only:
{
  "messages": [
    { "speaker": "name", "content": "dialogue" },
    ...
  ],
  "emotionalShift": {
    "initiator": { "attractionDelta": number, "trustDelta": number },
    "recipient": { "attractionDelta": number, "trustDelta": number }
  },
  "memoryForInitiator": "A one-sentence summary of what %s will remember about this conversation",
  "memoryForRecipient": "A one-sentence summary of what %s will remember about this conversation"
}

Deltas should be between -5 and +5. Positive means feelings increased.`,
		initiator.Name,
		initiator.Personality.Attachment, initiator.Personality.Novelty, initiator.Personality.Volatility,
		recipient.Name, initiatorFeelings,
		partnerName(initiator),
		memorySummary(initiator, recipient, req.InitiatorMemories),
		recipient.Name,
		recipient.Personality.Attachment, recipient.Personality.Novelty, recipient.Personality.Volatility,
		initiator.Name, recipientFeelings,
		partnerName(recipient),
		memorySummary(recipient, initiator, req.RecipientMemories),
		context,
		initiator.Name,
		recipient.Name,
	)
}

func partnerName(c *models.Character) string {
	if c.CurrentPartner == nil {
		return "None"
	}
	return models.CharacterName(*c.CurrentPartner)
}

func memorySummary(owner, about *models.Character, mem *models.CharacterMemory) string {
	recent := mem.Recent(3)
	if len(recent) == 0 {
		return fmt.Sprintf("%s has no specific memories of %s yet.", owner.Name, about.Name)
	}
	return fmt.Sprintf("%s's memories of %s: %s", owner.Name, about.Name, strings.Join(recent, "; "))
}
