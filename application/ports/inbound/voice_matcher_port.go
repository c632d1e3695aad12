package inbound

import "github.com/FlyingGorillaz/Sons-Of-Anton/domain"

// VoiceMatcherPort scores catalog voices against a persona. Score is
// pure and deterministic; implementations must not perform I/O.
type VoiceMatcherPort interface {
	Score(voice domain.Voice, persona domain.Persona) float64
	MatchTopVoices(persona domain.Persona, catalog []domain.Voice) []domain.VoiceMatch
}
