package config

import (
	"fmt"
	"os"
)

const (
	defaultGptApiUrl = "https://api.openai.com/v1/chat/completions"
	defaultGptModel  = "gpt-3.5-turbo"
)

type GptConfig struct {
	ApiUrl string
	ApiKey string
	Model  string
}

func GetGptConfig() (*GptConfig, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	apiUrl := os.Getenv("GPT_API_URL")
	if apiUrl == "" {
		apiUrl = defaultGptApiUrl
	}
	model := os.Getenv("GPT_MODEL")
	if model == "" {
		model = defaultGptModel
	}
	return &GptConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
		Model:  model,
	}, nil
}
