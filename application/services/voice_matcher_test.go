package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlyingGorillaz/Sons-Of-Anton/domain"
)

func professionalNarratorVoice() domain.Voice {
	return domain.Voice{
		VoiceID:     "v1",
		Name:        "Narrator",
		Category:    domain.ProfessionalVoiceCategory,
		Accent:      "american",
		Age:         "old",
		Gender:      "male",
		UseCase:     "narration",
		Description: "authoritative formal professional narrator",
	}
}

func scholarPersona() domain.Persona {
	return domain.Persona{
		Perspective:      "X",
		AgeRange:         "old",
		Gender:           "male",
		Tone:             "authoritative",
		ExpertiseLevel:   "expert",
		Background:       "academic",
		SpeakingStyle:    "formal",
		AccentPreference: "american",
	}
}

func TestScorePerfectMatch(t *testing.T) {
	matcher := NewVoiceMatcher()

	score := matcher.Score(professionalNarratorVoice(), scholarPersona())
	assert.InDelta(t, 1.0, score, 1e-9)

	matches := matcher.MatchTopVoices(scholarPersona(), []domain.Voice{professionalNarratorVoice()})
	require.Len(t, matches, 1)
	assert.Equal(t, "v1", matches[0].Voice.VoiceID)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-9)
}

func TestScoreIsPureAndBounded(t *testing.T) {
	matcher := NewVoiceMatcher()

	voices := []domain.Voice{
		professionalNarratorVoice(),
		{VoiceID: "v2", Age: "unknown", Gender: "unknown", Accent: "unknown", Category: domain.PremadeVoiceCategory},
		{VoiceID: "v3", Age: "young", Gender: "female", Accent: "british", Description: "casual relaxed enthusiast"},
	}
	personas := []domain.Persona{
		scholarPersona(),
		{AgeRange: "young", Gender: "female", Tone: "casual", ExpertiseLevel: "enthusiast", SpeakingStyle: "conversational"},
		{AgeRange: "middle-aged", Gender: "male", Tone: "unheard-of", ExpertiseLevel: "general", SpeakingStyle: "whispering"},
	}

	for _, voice := range voices {
		for _, persona := range personas {
			first := matcher.Score(voice, persona)
			second := matcher.Score(voice, persona)
			assert.Equal(t, first, second)
			assert.GreaterOrEqual(t, first, 0.0)
			assert.LessOrEqual(t, first, 1.0)
		}
	}
}

func TestScoreAgeOrdinalDistance(t *testing.T) {
	matcher := NewVoiceMatcher()

	// Everything except age mismatches, so the score isolates the age term.
	persona := domain.Persona{
		AgeRange:         "old",
		Gender:           "male",
		Tone:             "unrecognized",
		ExpertiseLevel:   "expert",
		SpeakingStyle:    "unrecognized",
		AccentPreference: "british",
	}
	voice := domain.Voice{
		VoiceID:  "age-test",
		Age:      "middle-aged",
		Gender:   "female",
		Accent:   "american",
		Category: domain.PremadeVoiceCategory,
	}

	assert.InDelta(t, 0.1, matcher.Score(voice, persona), 1e-9)

	voice.Age = "young"
	assert.InDelta(t, 0.0, matcher.Score(voice, persona), 1e-9)

	voice.Age = "old"
	assert.InDelta(t, 0.2, matcher.Score(voice, persona), 1e-9)

	// Unmapped age labels count as middle-aged.
	voice.Age = "unknown"
	assert.InDelta(t, 0.1, matcher.Score(voice, persona), 1e-9)
}

func TestScoreNoAccentPreferenceAlwaysCredits(t *testing.T) {
	matcher := NewVoiceMatcher()

	persona := domain.Persona{
		AgeRange:       "old",
		Gender:         "male",
		Tone:           "unrecognized",
		ExpertiseLevel: "expert",
		SpeakingStyle:  "unrecognized",
	}
	voice := domain.Voice{
		VoiceID:  "accent-test",
		Age:      "young",
		Gender:   "female",
		Accent:   "unknown",
		Category: domain.PremadeVoiceCategory,
	}

	assert.InDelta(t, 0.1, matcher.Score(voice, persona), 1e-9)
}

func TestScoreExpertisePartialCredit(t *testing.T) {
	matcher := NewVoiceMatcher()

	persona := domain.Persona{
		AgeRange:         "old",
		Gender:           "male",
		Tone:             "unrecognized",
		ExpertiseLevel:   "enthusiast",
		SpeakingStyle:    "unrecognized",
		AccentPreference: "british",
	}
	voice := domain.Voice{
		VoiceID:  "expertise-test",
		Age:      "young",
		Gender:   "female",
		Accent:   "american",
		Category: domain.ProfessionalVoiceCategory,
	}

	// Expert voice offered to an enthusiast persona earns 0.7 of the weight.
	assert.InDelta(t, 0.14, matcher.Score(voice, persona), 1e-9)
}

func TestMatchTopVoicesThresholdOrderingAndTruncation(t *testing.T) {
	matcher := NewVoiceMatcher()
	persona := scholarPersona()

	catalog := []domain.Voice{
		{VoiceID: "weak", Age: "young", Gender: "female", Accent: "british", Category: domain.PremadeVoiceCategory},
	}
	// Six identical perfect voices plus one weak one: the result must
	// hold five entries ordered by id on the tie.
	for _, id := range []string{"f", "b", "d", "a", "e", "c"} {
		voice := professionalNarratorVoice()
		voice.VoiceID = id
		catalog = append(catalog, voice)
	}

	matches := matcher.MatchTopVoices(persona, catalog)
	require.Len(t, matches, 5)
	for i, match := range matches {
		assert.Greater(t, match.Score, 0.5)
		if i > 0 {
			assert.LessOrEqual(t, match.Score, matches[i-1].Score)
		}
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, []string{
		matches[0].Voice.VoiceID, matches[1].Voice.VoiceID, matches[2].Voice.VoiceID,
		matches[3].Voice.VoiceID, matches[4].Voice.VoiceID,
	})
}

func TestMatchTopVoicesEmptyWhenNothingClearsThreshold(t *testing.T) {
	matcher := NewVoiceMatcher()

	catalog := []domain.Voice{
		{VoiceID: "v1", Age: "young", Gender: "female", Accent: "british", Category: domain.PremadeVoiceCategory},
	}
	persona := domain.Persona{
		AgeRange:         "old",
		Gender:           "male",
		Tone:             "authoritative",
		ExpertiseLevel:   "expert",
		SpeakingStyle:    "formal",
		AccentPreference: "american",
	}

	matches := matcher.MatchTopVoices(persona, catalog)
	assert.Empty(t, matches)
}
