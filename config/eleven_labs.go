package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultElevenLabsApiUrl       = "https://api.elevenlabs.io/v1/text-to-speech"
	defaultElevenLabsVoicesUrl    = "https://api.elevenlabs.io/v1/voices"
	defaultElevenLabsModelId      = "eleven_turbo_v2_5"
	defaultElevenLabsOutputFormat = "mp3_44100_128"
	defaultElevenLabsVoiceID      = "onwK4e9ZLuTAKqWW03F9"
	defaultStability              = 0.5
	defaultSimilarityBoost        = 0.75
)

type ElevenLabsConfig struct {
	ApiUrl          string
	VoicesUrl       string
	ApiKey          string
	ModelId         string
	OutputFormat    string
	DefaultVoiceID  string
	Stability       float64
	SimilarityBoost float64
}

func GetElevenLabsConfig() (*ElevenLabsConfig, error) {
	apiKey := os.Getenv("ELEVENLABS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVENLABS_API_KEY must be set")
	}

	apiUrl := os.Getenv("ELEVEN_LABS_API_URL")
	if apiUrl == "" {
		apiUrl = defaultElevenLabsApiUrl
	}
	voicesUrl := os.Getenv("ELEVEN_LABS_VOICES_URL")
	if voicesUrl == "" {
		voicesUrl = defaultElevenLabsVoicesUrl
	}
	modelId := os.Getenv("ELEVEN_LABS_MODEL_ID")
	if modelId == "" {
		modelId = defaultElevenLabsModelId
	}
	outputFormat := os.Getenv("ELEVEN_LABS_OUTPUT_FORMAT")
	if outputFormat == "" {
		outputFormat = defaultElevenLabsOutputFormat
	}
	defaultVoiceID := os.Getenv("ELEVEN_LABS_DEFAULT_VOICE_ID")
	if defaultVoiceID == "" {
		defaultVoiceID = defaultElevenLabsVoiceID
	}

	stabilityVal := defaultStability
	if stability := os.Getenv("ELEVEN_LABS_STABILITY"); stability != "" {
		parsed, err := strconv.ParseFloat(stability, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ELEVEN_LABS_STABILITY: %w", err)
		}
		stabilityVal = parsed
	}
	similarityBoostVal := defaultSimilarityBoost
	if similarityBoost := os.Getenv("ELEVEN_LABS_SIMILARITY_BOOST"); similarityBoost != "" {
		parsed, err := strconv.ParseFloat(similarityBoost, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ELEVEN_LABS_SIMILARITY_BOOST: %w", err)
		}
		similarityBoostVal = parsed
	}

	return &ElevenLabsConfig{
		ApiUrl:          apiUrl,
		VoicesUrl:       voicesUrl,
		ApiKey:          apiKey,
		ModelId:         modelId,
		OutputFormat:    outputFormat,
		DefaultVoiceID:  defaultVoiceID,
		Stability:       stabilityVal,
		SimilarityBoost: similarityBoostVal,
	}, nil
}
