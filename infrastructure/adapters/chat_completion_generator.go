package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/donovanhide/eventsource"

	"github.com/FlyingGorillaz/Sons-Of-Anton/application/ports/outbound"
	"github.com/FlyingGorillaz/Sons-Of-Anton/config"
)

const DoneSignal = "[DONE]"

type chatGptRequest struct {
	Stream   bool             `json:"stream"`
	Model    string           `json:"model"`
	Messages []chatGptMessage `json:"messages"`
}

type chatGptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatGptChunkBody struct {
	Choices []chatGptResponseChoice `json:"choices"`
}

type chatGptResponseChoice struct {
	Index int `json:"index"`
	Delta struct {
		Content string `json:"content"`
	} `json:"delta"`
}

type chatCompletionGenerator struct {
	logger    outbound.LoggerPort
	gptConfig *config.GptConfig
}

// NewChatCompletionGenerator builds the text-generation collaborator
// adapter. Completions are requested as a server-sent-event stream and
// accumulated into the full response text.
func NewChatCompletionGenerator(gptConfig *config.GptConfig, logger outbound.LoggerPort) outbound.TextGeneratorPort {
	return &chatCompletionGenerator{
		logger:    logger,
		gptConfig: gptConfig,
	}
}

func (g *chatCompletionGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	req, err := g.createRequest(ctx, prompt)
	if err != nil {
		g.logger.Error(err, "Failed to create HTTP request for completion stream")
		return "", err
	}

	stream, err := eventsource.SubscribeWithRequest("", req)
	if err != nil {
		g.logger.Error(err, "Failed to subscribe to completion stream")
		return "", err
	}
	defer stream.Close()

	var builder strings.Builder
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case ev := <-stream.Events:
			if ev.Data() == DoneSignal {
				return strings.TrimSpace(builder.String()), nil
			}
			payload, err := g.extractPayload(ev)
			if err != nil {
				return "", err
			}
			builder.WriteString(payload)
		case err := <-stream.Errors:
			if err == io.EOF {
				return strings.TrimSpace(builder.String()), nil
			}
			g.logger.Error(err, "Error occurred during completion streaming")
			return "", err
		}
	}
}

func (g *chatCompletionGenerator) extractPayload(event eventsource.Event) (string, error) {
	var chunkBody chatGptChunkBody
	if err := json.Unmarshal([]byte(event.Data()), &chunkBody); err != nil {
		g.logger.Error(err, "Failed to unmarshal event data")
		return "", err
	}
	if len(chunkBody.Choices) == 0 {
		return "", nil
	}
	return chunkBody.Choices[0].Delta.Content, nil
}

func (g *chatCompletionGenerator) createRequest(ctx context.Context, prompt string) (*http.Request, error) {
	promptReq := chatGptRequest{
		Stream: true,
		Model:  g.gptConfig.Model,
		Messages: []chatGptMessage{{
			Role:    "user",
			Content: prompt,
		}},
	}

	payloadBytes, err := json.Marshal(promptReq)
	if err != nil {
		g.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.gptConfig.ApiUrl, bytes.NewBuffer(payloadBytes))
	if err != nil {
		g.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+g.gptConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
