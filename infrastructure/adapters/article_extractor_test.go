package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlyingGorillaz/Sons-Of-Anton/domain"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Major Development In Local Tax Case</title></head>
<body>
<article>
<h1>Major Development In Local Tax Case</h1>
<p>A long running dispute over the taxation of income derived from creative work reached a
turning point on Tuesday, when the tribunal issued a detailed ruling that is expected to
shape how similar cases are argued for years to come.</p>
<p>Lawyers for both sides spent months exchanging filings about whether the money derived
substantially the whole of its value from the activities of the claimant, and whether it
was otherwise realised as income under the relevant statute.</p>
<p>Observers noted that the ruling carefully distinguishes earlier precedent, and that an
appeal remains possible. The claimant's representatives declined to comment on Tuesday
evening, while the revenue service welcomed what it called a thorough decision.</p>
</article>
</body>
</html>`

func TestArticleExtractorExtractsTitleAndText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	extractor := NewArticleExtractor(NewContentFetcher(nopLogger{}, time.Second), nopLogger{})

	article, err := extractor.Extract(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, server.URL, article.URL)
	assert.Contains(t, article.Title, "Major Development")
	assert.Contains(t, article.Text, "turning point on Tuesday")
}

func TestArticleExtractorCachesByURL(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	extractor := NewArticleExtractor(NewContentFetcher(nopLogger{}, time.Second), nopLogger{})

	first, err := extractor.Extract(context.Background(), server.URL)
	require.NoError(t, err)
	second, err := extractor.Extract(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestArticleExtractorFailsOnHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	extractor := NewArticleExtractor(NewContentFetcher(nopLogger{}, time.Second), nopLogger{})

	_, err := extractor.Extract(context.Background(), server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArticleFetch)
}

func TestArticleExtractorFailsOnEmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><head></head><body></body></html>"))
	}))
	defer server.Close()

	extractor := NewArticleExtractor(NewContentFetcher(nopLogger{}, time.Second), nopLogger{})

	_, err := extractor.Extract(context.Background(), server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArticleFetch)
}
