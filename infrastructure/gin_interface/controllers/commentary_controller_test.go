package controllers

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlyingGorillaz/Sons-Of-Anton/application/ports/inbound"
	"github.com/FlyingGorillaz/Sons-Of-Anton/application/ports/outbound"
	"github.com/FlyingGorillaz/Sons-Of-Anton/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string)                                           {}
func (nopLogger) InfoWithFields(string, map[string]interface{})         {}
func (nopLogger) Error(error, string)                                   {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Debug(string)                                          {}
func (nopLogger) DebugWithFields(string, map[string]interface{})        {}
func (nopLogger) Warn(string)                                           {}
func (nopLogger) WarnWithFields(string, map[string]interface{})         {}

type fakePipeline struct {
	calls  int
	result domain.CommentaryResult
	err    error
}

func (f *fakePipeline) Analyze(ctx context.Context, params inbound.AnalyzeArticleParams) (domain.CommentaryResult, error) {
	f.calls++
	return f.result, f.err
}

type fakeSynthesizer struct {
	calls   int
	voiceID string
	err     error
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) (io.ReadCloser, error) {
	f.calls++
	f.voiceID = req.VoiceID
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(strings.NewReader("mp3-bytes")), nil
}

func testRouter(pipeline *fakePipeline, synthesizer *fakeSynthesizer, catalog []domain.Voice) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewCommentaryController(nopLogger{}, pipeline, synthesizer, catalog)
	controller.RegisterRoutes(router)
	return router
}

func postData(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/data", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestProcessArticleRejectsNonHTTPScheme(t *testing.T) {
	pipeline := &fakePipeline{}
	synthesizer := &fakeSynthesizer{}
	router := testRouter(pipeline, synthesizer, nil)

	recorder := postData(router, `{"url": "ftp://example.com/story"}`)

	assert.Equal(t, 400, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Only HTTP and HTTPS URLs are supported")
	// No collaborator is touched for an invalid scheme.
	assert.Zero(t, pipeline.calls)
	assert.Zero(t, synthesizer.calls)
}

func TestProcessArticleRejectsMissingURL(t *testing.T) {
	pipeline := &fakePipeline{}
	router := testRouter(pipeline, &fakeSynthesizer{}, nil)

	recorder := postData(router, `{"style": "rap"}`)

	assert.Equal(t, 400, recorder.Code)
	assert.Zero(t, pipeline.calls)
}

func TestProcessArticleMapsArticleFetchTo400(t *testing.T) {
	pipeline := &fakePipeline{err: domain.ErrArticleFetch}
	router := testRouter(pipeline, &fakeSynthesizer{}, nil)

	recorder := postData(router, `{"url": "https://example.com/story"}`)

	assert.Equal(t, 400, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Failed to generate article summary")
}

func TestProcessArticleMapsOtherPipelineErrorsTo500(t *testing.T) {
	pipeline := &fakePipeline{err: domain.ErrPerspectiveDiscovery}
	router := testRouter(pipeline, &fakeSynthesizer{}, nil)

	recorder := postData(router, `{"url": "https://example.com/story"}`)

	assert.Equal(t, 500, recorder.Code)
}

func TestProcessArticleMapsSynthesisFailureTo500(t *testing.T) {
	pipeline := &fakePipeline{result: domain.CommentaryResult{OriginalSummary: "summary"}}
	synthesizer := &fakeSynthesizer{err: domain.ErrAudioSynthesis}
	router := testRouter(pipeline, synthesizer, nil)

	recorder := postData(router, `{"url": "https://example.com/story"}`)

	assert.Equal(t, 500, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Failed to generate audio")
}

func TestProcessArticleStreamsAudioAttachment(t *testing.T) {
	pipeline := &fakePipeline{result: domain.CommentaryResult{
		OriginalSummary: "plain summary",
		StyledSummary:   "styled summary",
		PerspectiveComments: []domain.PerspectiveComment{
			{Perspective: "Economist", Comment: "costs will rise"},
		},
		StyledSummaryVoiceMatches: []domain.VoiceMatch{
			{Voice: domain.Voice{VoiceID: "lower"}, Score: 0.7},
			{Voice: domain.Voice{VoiceID: "best"}, Score: 0.9},
		},
	}}
	synthesizer := &fakeSynthesizer{}
	router := testRouter(pipeline, synthesizer, nil)

	recorder := postData(router, `{"url": "https://example.com/story", "style": "poetic"}`)

	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, "audio/mpeg", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=speech.mp3", recorder.Header().Get("Content-Disposition"))
	assert.Equal(t, "mp3-bytes", recorder.Body.String())
	assert.Equal(t, "best", synthesizer.voiceID)
}

func TestAssemblePassageFallsBackToPlainSummary(t *testing.T) {
	passage := assemblePassage(domain.CommentaryResult{OriginalSummary: "plain summary"})
	assert.Equal(t, "plain summary", passage)

	passage = assemblePassage(domain.CommentaryResult{
		OriginalSummary: "plain summary",
		StyledSummary:   "styled summary",
		PerspectiveComments: []domain.PerspectiveComment{
			{Perspective: "Economist", Comment: "costs will rise"},
			{Perspective: "Union Representative", Comment: "workers first"},
		},
	})
	assert.True(t, strings.HasPrefix(passage, "styled summary"))
	assert.Contains(t, passage, "Perspectives:")
	assert.Less(t, strings.Index(passage, "Economist"), strings.Index(passage, "Union Representative"))
}

func TestListVoicesReturnsCatalog(t *testing.T) {
	catalog := []domain.Voice{{VoiceID: "v1", Name: "Arthur"}}
	router := testRouter(&fakePipeline{}, &fakeSynthesizer{}, catalog)

	req := httptest.NewRequest("GET", "/api/voices", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, 200, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"count":1`)
	assert.Contains(t, recorder.Body.String(), `"v1"`)
}
