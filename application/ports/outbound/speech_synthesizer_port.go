package outbound

import (
	"context"
	"io"
)

type SynthesizeSpeechRequest struct {
	Text    string
	VoiceID string
}

// SpeechSynthesizerPort streams synthesized audio for a passage of
// text. The caller owns the returned reader and must close it.
type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeSpeechRequest) (io.ReadCloser, error)
}
