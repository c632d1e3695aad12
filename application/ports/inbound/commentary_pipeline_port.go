package inbound

import (
	"context"

	"github.com/FlyingGorillaz/Sons-Of-Anton/domain"
)

type AnalyzeArticleParams struct {
	RequestID string
	URL       string
	Style     string
}

type CommentaryPipelinePort interface {
	Analyze(ctx context.Context, params AnalyzeArticleParams) (domain.CommentaryResult, error)
}
