package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultCallTimeoutSeconds = 60

// PipelineConfig selects which optional stages run. The boolean flags
// replace what used to be separate summarizer-only, styler-only and
// commenter-only entry points.
type PipelineConfig struct {
	EnableStyling       bool
	EnableComments      bool
	EnableVoiceMatching bool
	CallTimeout         time.Duration
}

func GetPipelineConfig() (*PipelineConfig, error) {
	cfg := &PipelineConfig{
		EnableStyling:       true,
		EnableComments:      true,
		EnableVoiceMatching: true,
		CallTimeout:         defaultCallTimeoutSeconds * time.Second,
	}

	var err error
	if cfg.EnableStyling, err = boolEnv("PIPELINE_ENABLE_STYLING", cfg.EnableStyling); err != nil {
		return nil, err
	}
	if cfg.EnableComments, err = boolEnv("PIPELINE_ENABLE_COMMENTS", cfg.EnableComments); err != nil {
		return nil, err
	}
	if cfg.EnableVoiceMatching, err = boolEnv("PIPELINE_ENABLE_VOICE_MATCHING", cfg.EnableVoiceMatching); err != nil {
		return nil, err
	}

	if timeout := os.Getenv("PIPELINE_CALL_TIMEOUT_SECONDS"); timeout != "" {
		seconds, err := strconv.Atoi(timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to parse PIPELINE_CALL_TIMEOUT_SECONDS: %w", err)
		}
		cfg.CallTimeout = time.Duration(seconds) * time.Second
	}

	return cfg, nil
}

func boolEnv(name string, fallback bool) (bool, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return value, nil
}
