package outbound

import (
	"context"

	"github.com/FlyingGorillaz/Sons-Of-Anton/domain"
)

type ArticleExtractorPort interface {
	Extract(ctx context.Context, url string) (domain.Article, error)
}
