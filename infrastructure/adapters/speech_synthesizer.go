package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/FlyingGorillaz/Sons-Of-Anton/application/ports/outbound"
	"github.com/FlyingGorillaz/Sons-Of-Anton/config"
	"github.com/FlyingGorillaz/Sons-Of-Anton/domain"
)

type elevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelId       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

type speechSynthesizer struct {
	logger           outbound.LoggerPort
	fetcher          ContentFetcher
	elevenLabsConfig *config.ElevenLabsConfig
}

func NewSpeechSynthesizer(fetcher ContentFetcher, elevenLabsConfig *config.ElevenLabsConfig,
	logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &speechSynthesizer{
		logger:           logger,
		fetcher:          fetcher,
		elevenLabsConfig: elevenLabsConfig,
	}
}

// Synthesize streams MP3 audio for the passage. The response body is
// handed to the caller unread so delivery can stream it straight
// through without buffering the whole file.
func (s *speechSynthesizer) Synthesize(ctx context.Context, synthesizeReq outbound.SynthesizeSpeechRequest) (io.ReadCloser, error) {
	voiceID := synthesizeReq.VoiceID
	if voiceID == "" {
		voiceID = s.elevenLabsConfig.DefaultVoiceID
	}

	req, err := s.getRequest(ctx, synthesizeReq.Text, voiceID)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to construct the HTTP request for audio synthesis", map[string]interface{}{
			"voice_id": voiceID,
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrAudioSynthesis, err)
	}

	res, err := s.fetcher.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAudioSynthesis, err)
	}

	if res.StatusCode != http.StatusOK {
		bodyPayload, _ := io.ReadAll(res.Body)
		_ = res.Body.Close()
		s.logger.ErrorWithFields(nil, "Audio synthesis returned non-OK status code", map[string]interface{}{
			"status":   res.StatusCode,
			"message":  string(bodyPayload),
			"voice_id": voiceID,
		})
		return nil, fmt.Errorf("%w: non-OK status code %d", domain.ErrAudioSynthesis, res.StatusCode)
	}

	return res.Body, nil
}

func (s *speechSynthesizer) getRequest(ctx context.Context, text string, voiceID string) (*http.Request, error) {
	reqBody := elevenLabsRequest{
		Text:    text,
		ModelId: s.elevenLabsConfig.ModelId,
		VoiceSettings: voiceSettings{
			Stability:       s.elevenLabsConfig.Stability,
			SimilarityBoost: s.elevenLabsConfig.SimilarityBoost,
			Style:           0.0,
			UseSpeakerBoost: false,
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := s.elevenLabsConfig.ApiUrl + "/" + voiceID + "?output_format=" + s.elevenLabsConfig.OutputFormat
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", s.elevenLabsConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
