package domain

import "errors"

var (
	ErrCatalogFetch         = errors.New("failed to fetch voice catalog")
	ErrCatalogParse         = errors.New("voice catalog response is malformed")
	ErrArticleFetch         = errors.New("failed to fetch or parse article")
	ErrPersonaDerivation    = errors.New("failed to derive persona")
	ErrPerspectiveDiscovery = errors.New("failed to discover perspectives")
	ErrAudioSynthesis       = errors.New("failed to synthesize audio")
)
