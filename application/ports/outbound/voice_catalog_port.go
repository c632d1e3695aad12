package outbound

import (
	"context"

	"github.com/FlyingGorillaz/Sons-Of-Anton/domain"
)

// VoiceCatalogPort loads the immutable set of available voices. Load
// is called once at startup; the returned slice is deduplicated by
// voice id and safe for unsynchronized concurrent reads afterwards.
type VoiceCatalogPort interface {
	Load(ctx context.Context) ([]domain.Voice, error)
}
