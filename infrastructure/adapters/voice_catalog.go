package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/FlyingGorillaz/Sons-Of-Anton/application/ports/outbound"
	"github.com/FlyingGorillaz/Sons-Of-Anton/config"
	"github.com/FlyingGorillaz/Sons-Of-Anton/domain"
)

type rawVoiceLabels struct {
	Accent  string `json:"accent"`
	Age     string `json:"age"`
	Gender  string `json:"gender"`
	UseCase string `json:"use_case"`
}

type rawVoice struct {
	VoiceID     string         `json:"voice_id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Labels      rawVoiceLabels `json:"labels"`
	Description string         `json:"description"`
	PreviewURL  string         `json:"preview_url"`
}

type voiceListResponse struct {
	Voices *[]rawVoice `json:"voices"`
}

type voiceCatalog struct {
	logger           outbound.LoggerPort
	fetcher          ContentFetcher
	elevenLabsConfig *config.ElevenLabsConfig
}

func NewVoiceCatalog(fetcher ContentFetcher, elevenLabsConfig *config.ElevenLabsConfig,
	logger outbound.LoggerPort) outbound.VoiceCatalogPort {
	return &voiceCatalog{
		logger:           logger,
		fetcher:          fetcher,
		elevenLabsConfig: elevenLabsConfig,
	}
}

// Load fetches the voice listing once and normalizes each record:
// absent labels default to "unknown", an absent category to "premade",
// and label values are lower-cased for the loose comparisons the
// matcher performs. Duplicate voice ids keep their first occurrence.
func (v *voiceCatalog) Load(ctx context.Context) ([]domain.Voice, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", v.elevenLabsConfig.VoicesUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogFetch, err)
	}
	req.Header.Set("xi-api-key", v.elevenLabsConfig.ApiKey)

	payload, err := v.fetcher.FetchContent(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogFetch, err)
	}

	var listing voiceListResponse
	if err := json.Unmarshal(payload, &listing); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogParse, err)
	}
	if listing.Voices == nil {
		return nil, fmt.Errorf("%w: response is missing the voices field", domain.ErrCatalogParse)
	}

	seen := make(map[string]struct{}, len(*listing.Voices))
	voices := make([]domain.Voice, 0, len(*listing.Voices))
	for _, raw := range *listing.Voices {
		if _, duplicate := seen[raw.VoiceID]; duplicate {
			continue
		}
		seen[raw.VoiceID] = struct{}{}
		voices = append(voices, normalizeVoice(raw))
	}

	v.logger.InfoWithFields("Loaded voice catalog", map[string]interface{}{
		"voices": len(voices),
	})
	return voices, nil
}

func normalizeVoice(raw rawVoice) domain.Voice {
	category := domain.VoiceCategory(strings.ToLower(raw.Category))
	switch category {
	case domain.PremadeVoiceCategory, domain.ProfessionalVoiceCategory, domain.GeneratedVoiceCategory:
	case "":
		category = domain.PremadeVoiceCategory
	default:
		category = domain.UnknownVoiceCategory
	}

	return domain.Voice{
		VoiceID:     raw.VoiceID,
		Name:        raw.Name,
		Category:    category,
		Accent:      normalizeLabel(raw.Labels.Accent),
		Age:         normalizeLabel(raw.Labels.Age),
		Gender:      normalizeLabel(raw.Labels.Gender),
		UseCase:     normalizeLabel(raw.Labels.UseCase),
		Description: raw.Description,
		PreviewURL:  raw.PreviewURL,
	}
}

func normalizeLabel(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return "unknown"
	}
	return label
}
