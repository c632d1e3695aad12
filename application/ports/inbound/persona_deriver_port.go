package inbound

import (
	"context"

	"github.com/FlyingGorillaz/Sons-Of-Anton/domain"
)

// PersonaDeriverPort turns either a stakeholder perspective label or a
// (title, summary, style) triple into a structured persona.
//
// FromPerspectiveLabel propagates derivation failures so the caller can
// drop that one perspective. FromContentSummary never fails: the
// narrator persona is cosmetic and falls back to DefaultPersona.
type PersonaDeriverPort interface {
	FromPerspectiveLabel(ctx context.Context, label string) (domain.Persona, error)
	FromContentSummary(ctx context.Context, title string, summary string, style string) domain.Persona
	DefaultPersona(style string) domain.Persona
}
