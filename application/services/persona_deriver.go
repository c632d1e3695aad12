package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/FlyingGorillaz/Sons-Of-Anton/application/ports/inbound"
	"github.com/FlyingGorillaz/Sons-Of-Anton/application/ports/outbound"
	"github.com/FlyingGorillaz/Sons-Of-Anton/domain"
)

const perspectivePersonaPrompt = `Analyze this commenter perspective and determine the ideal voice characteristics.
Return a JSON object with these fields:
- age_range: "young", "middle-aged", or "old"
- gender: "male" or "female"
- tone: describe the ideal tone (e.g., "authoritative", "casual", "energetic")
- expertise_level: "expert", "enthusiast", or "general"
- background: type of background (e.g., "academic", "industry", "activist")
- speaking_style: how they would speak (e.g., "formal", "conversational", "passionate")
- accent_preference: preferred accent if relevant (e.g., "british", "american", "australian"), or null if no preference

Perspective: %s

Consider the perspective's implied:
- Professional background
- Level of expertise
- Typical age range
- Communication style
- Cultural context

Return only the JSON object, no other text.`

const summaryPersonaPrompt = `Analyze this news title and summary to determine the ideal voice characteristics for narration.
Consider the content's tone, subject matter, and emotional impact.

Title: %s
Summary: %s
Style: %s

Return a JSON object with these fields:
- age_range: "young", "middle-aged", or "old"
- gender: "male" or "female"
- tone: describe the ideal tone (e.g., "authoritative", "empathetic", "energetic", "serious", "casual", "dramatic")
- expertise_level: "expert", "enthusiast", or "general"
- background: type of background (e.g., "journalistic", "sports", "tech", "entertainment")
- speaking_style: how they should speak (e.g., "formal", "conversational", "passionate", "narrative")
- accent_preference: preferred accent if content suggests one (e.g., "british", "american", "australian"), or null if no preference

Consider factors like:
- Is this breaking news, analysis, or feature story?
- What's the emotional tone (serious, upbeat, dramatic)?
- Is this general news or specialized content?
- Does the content suggest a particular cultural context?
- How should the style (%s) influence the voice?

Return only the JSON object, no other text.`

type personaCharacteristics struct {
	AgeRange         string  `json:"age_range"`
	Gender           string  `json:"gender"`
	Tone             string  `json:"tone"`
	ExpertiseLevel   string  `json:"expertise_level"`
	Background       string  `json:"background"`
	SpeakingStyle    string  `json:"speaking_style"`
	AccentPreference *string `json:"accent_preference"`
}

type personaDeriver struct {
	logger        outbound.LoggerPort
	textGenerator outbound.TextGeneratorPort
}

func NewPersonaDeriver(logger outbound.LoggerPort, textGenerator outbound.TextGeneratorPort) inbound.PersonaDeriverPort {
	return &personaDeriver{
		logger:        logger,
		textGenerator: textGenerator,
	}
}

func (p *personaDeriver) FromPerspectiveLabel(ctx context.Context, label string) (domain.Persona, error) {
	completion, err := p.textGenerator.Complete(ctx, fmt.Sprintf(perspectivePersonaPrompt, label))
	if err != nil {
		p.logger.ErrorWithFields(err, "Failed to get persona characteristics", map[string]interface{}{
			"perspective": label,
		})
		return domain.Persona{}, fmt.Errorf("%w for perspective %q: %v", domain.ErrPersonaDerivation, label, err)
	}

	persona, err := p.parsePersona(completion, label)
	if err != nil {
		p.logger.ErrorWithFields(err, "Failed to parse persona characteristics", map[string]interface{}{
			"perspective": label,
			"completion":  completion,
		})
		return domain.Persona{}, fmt.Errorf("%w for perspective %q: %v", domain.ErrPersonaDerivation, label, err)
	}
	return persona, nil
}

func (p *personaDeriver) FromContentSummary(ctx context.Context, title string, summary string, style string) domain.Persona {
	completion, err := p.textGenerator.Complete(ctx, fmt.Sprintf(summaryPersonaPrompt, title, summary, style, style))
	if err != nil {
		p.logger.Warn("Failed to get narrator persona, using default")
		return p.DefaultPersona(style)
	}

	persona, err := p.parsePersona(completion, "News Narrator")
	if err != nil {
		p.logger.WarnWithFields("Failed to parse narrator persona, using default", map[string]interface{}{
			"completion": completion,
		})
		return p.DefaultPersona(style)
	}
	return persona
}

// DefaultPersona returns the hard-coded narration persona for a style.
// Conversational styles get an engaging narrator, everything else a
// formal news anchor.
func (p *personaDeriver) DefaultPersona(style string) domain.Persona {
	switch strings.ToLower(style) {
	case "rap", "poetic", "funny", "casual":
		return domain.Persona{
			Perspective:      "News Narrator",
			AgeRange:         "middle-aged",
			Gender:           "male",
			Tone:             "engaging",
			ExpertiseLevel:   "expert",
			Background:       "journalistic",
			SpeakingStyle:    "conversational",
			AccentPreference: "american",
		}
	default:
		return domain.Persona{
			Perspective:      "News Anchor",
			AgeRange:         "middle-aged",
			Gender:           "male",
			Tone:             "authoritative",
			ExpertiseLevel:   "expert",
			Background:       "journalistic",
			SpeakingStyle:    "formal",
			AccentPreference: "american",
		}
	}
}

func (p *personaDeriver) parsePersona(completion string, perspective string) (domain.Persona, error) {
	var characteristics personaCharacteristics
	if err := json.Unmarshal([]byte(completion), &characteristics); err != nil {
		return domain.Persona{}, fmt.Errorf("persona response is not valid JSON: %w", err)
	}

	persona := domain.Persona{
		Perspective:    perspective,
		AgeRange:       strings.ToLower(strings.TrimSpace(characteristics.AgeRange)),
		Gender:         strings.ToLower(strings.TrimSpace(characteristics.Gender)),
		Tone:           strings.ToLower(strings.TrimSpace(characteristics.Tone)),
		ExpertiseLevel: strings.ToLower(strings.TrimSpace(characteristics.ExpertiseLevel)),
		Background:     strings.TrimSpace(characteristics.Background),
		SpeakingStyle:  strings.ToLower(strings.TrimSpace(characteristics.SpeakingStyle)),
	}
	if characteristics.AccentPreference != nil {
		persona.AccentPreference = strings.ToLower(strings.TrimSpace(*characteristics.AccentPreference))
	}

	if err := validatePersona(persona); err != nil {
		return domain.Persona{}, err
	}
	return persona, nil
}

func validatePersona(persona domain.Persona) error {
	switch persona.AgeRange {
	case "young", "middle-aged", "old":
	default:
		return fmt.Errorf("persona has invalid age_range %q", persona.AgeRange)
	}
	switch persona.Gender {
	case "male", "female":
	default:
		return fmt.Errorf("persona has invalid gender %q", persona.Gender)
	}
	switch persona.ExpertiseLevel {
	case "expert", "enthusiast", "general":
	default:
		return fmt.Errorf("persona has invalid expertise_level %q", persona.ExpertiseLevel)
	}
	if persona.Tone == "" {
		return fmt.Errorf("persona is missing tone")
	}
	if persona.Background == "" {
		return fmt.Errorf("persona is missing background")
	}
	if persona.SpeakingStyle == "" {
		return fmt.Errorf("persona is missing speaking_style")
	}
	return nil
}
