package adapters

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	gocache "github.com/patrickmn/go-cache"

	"github.com/FlyingGorillaz/Sons-Of-Anton/application/ports/outbound"
	"github.com/FlyingGorillaz/Sons-Of-Anton/domain"
)

const (
	articleCacheTTL     = 10 * time.Minute
	articleCacheCleanup = 30 * time.Minute
)

type articleExtractor struct {
	logger  outbound.LoggerPort
	fetcher ContentFetcher
	cache   *gocache.Cache
}

// NewArticleExtractor fetches a news page and extracts its readable
// title and body text. Extracted articles are cached by URL for a
// short window so repeated requests for the same story skip the
// download.
func NewArticleExtractor(fetcher ContentFetcher, logger outbound.LoggerPort) outbound.ArticleExtractorPort {
	return &articleExtractor{
		logger:  logger,
		fetcher: fetcher,
		cache:   gocache.New(articleCacheTTL, articleCacheCleanup),
	}
}

func (a *articleExtractor) Extract(ctx context.Context, rawURL string) (domain.Article, error) {
	if cached, found := a.cache.Get(rawURL); found {
		a.logger.DebugWithFields("Article cache hit", map[string]interface{}{"url": rawURL})
		return cached.(domain.Article), nil
	}

	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return domain.Article{}, fmt.Errorf("%w: invalid URL %q: %v", domain.ErrArticleFetch, rawURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return domain.Article{}, fmt.Errorf("%w: %v", domain.ErrArticleFetch, err)
	}

	payload, err := a.fetcher.FetchContent(req)
	if err != nil {
		return domain.Article{}, fmt.Errorf("%w: %v", domain.ErrArticleFetch, err)
	}

	parsed, err := readability.FromReader(bytes.NewReader(payload), pageURL)
	if err != nil {
		a.logger.ErrorWithFields(err, "Failed to extract readable content", map[string]interface{}{
			"url": rawURL,
		})
		return domain.Article{}, fmt.Errorf("%w: %v", domain.ErrArticleFetch, err)
	}

	text := strings.TrimSpace(parsed.TextContent)
	if text == "" {
		return domain.Article{}, fmt.Errorf("%w: page has no readable article text", domain.ErrArticleFetch)
	}

	article := domain.Article{
		URL:   rawURL,
		Title: strings.TrimSpace(parsed.Title),
		Text:  text,
	}
	a.cache.SetDefault(rawURL, article)
	return article, nil
}
