package services

import (
	"sort"
	"strings"

	"github.com/FlyingGorillaz/Sons-Of-Anton/application/ports/inbound"
	"github.com/FlyingGorillaz/Sons-Of-Anton/domain"
)

const (
	ageWeight           = 0.2
	genderWeight        = 0.15
	accentWeight        = 0.1
	expertiseWeight     = 0.2
	toneWeight          = 0.2
	speakingStyleWeight = 0.15

	matchThreshold = 0.5
	maxMatches     = 5
)

type voiceMatcher struct {
	toneKeywords  map[string][]string
	styleKeywords map[string][]string
}

func NewVoiceMatcher() inbound.VoiceMatcherPort {
	return &voiceMatcher{
		toneKeywords: map[string][]string{
			"authoritative": {"authoritative", "commanding", "professional"},
			"casual":        {"casual", "relaxed", "friendly"},
			"energetic":     {"energetic", "dynamic", "lively"},
			"formal":        {"formal", "serious", "proper"},
			"caring":        {"warm", "caring", "gentle", "nurturing"},
			"passionate":    {"passionate", "enthusiastic", "driven"},
			"analytical":    {"analytical", "precise", "detailed"},
			"engaging":      {"engaging", "interactive", "approachable"},
		},
		styleKeywords: map[string][]string{
			"formal":         {"formal", "professional", "proper"},
			"conversational": {"conversational", "natural", "friendly"},
			"passionate":     {"passionate", "enthusiastic", "energetic"},
			"academic":       {"academic", "scholarly", "educational"},
			"journalistic":   {"journalistic", "news", "reporting"},
			"storytelling":   {"narrative", "storytelling", "engaging"},
		},
	}
}

// Score computes a weighted match between a voice and a persona. The
// weights sum to 1.0, so the result is always within [0, 1].
func (m *voiceMatcher) Score(voice domain.Voice, persona domain.Persona) float64 {
	score := 0.0

	voiceAge := strings.ToLower(voice.Age)
	personaAge := strings.ToLower(persona.AgeRange)
	if voiceAge == personaAge {
		score += ageWeight
	} else if abs(ageToNumber(voiceAge)-ageToNumber(personaAge)) == 1 {
		score += ageWeight * 0.5
	}

	if strings.ToLower(voice.Gender) == strings.ToLower(persona.Gender) {
		score += genderWeight
	}

	// No accent preference means any accent is fine, even "unknown".
	if persona.AccentPreference == "" {
		score += accentWeight
	} else if strings.ToLower(voice.Accent) == strings.ToLower(persona.AccentPreference) {
		score += accentWeight
	}

	voiceExpertise := determineVoiceExpertise(voice)
	if voiceExpertise == persona.ExpertiseLevel {
		score += expertiseWeight
	} else if voiceExpertise == "expert" && persona.ExpertiseLevel == "enthusiast" {
		score += expertiseWeight * 0.7
	}

	description := strings.ToLower(voice.Description)

	if containsAny(description, m.toneKeywords[strings.ToLower(persona.Tone)]) {
		score += toneWeight
	}
	if containsAny(description, m.styleKeywords[strings.ToLower(persona.SpeakingStyle)]) {
		score += speakingStyleWeight
	}

	return score
}

// MatchTopVoices returns the up to five voices scoring above the
// threshold, sorted by descending score. Equal scores are broken by
// ascending voice id so the ranking is deterministic regardless of
// catalog order.
func (m *voiceMatcher) MatchTopVoices(persona domain.Persona, catalog []domain.Voice) []domain.VoiceMatch {
	matched := make([]domain.VoiceMatch, 0, len(catalog))
	for _, voice := range catalog {
		score := m.Score(voice, persona)
		if score > matchThreshold {
			matched = append(matched, domain.VoiceMatch{Voice: voice, Score: score})
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Score != matched[j].Score {
			return matched[i].Score > matched[j].Score
		}
		return matched[i].Voice.VoiceID < matched[j].Voice.VoiceID
	})

	if len(matched) > maxMatches {
		matched = matched[:maxMatches]
	}
	return matched
}

func determineVoiceExpertise(voice domain.Voice) string {
	if voice.Category == domain.ProfessionalVoiceCategory {
		return "expert"
	}
	description := strings.ToLower(voice.Description)
	if strings.Contains(description, "expert") {
		return "expert"
	}
	if strings.Contains(description, "enthusiast") {
		return "enthusiast"
	}
	return "general"
}

func ageToNumber(age string) int {
	switch age {
	case "young":
		return 1
	case "middle-aged", "middle aged":
		return 2
	case "old":
		return 3
	default:
		return 2
	}
}

func containsAny(description string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(description, keyword) {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
