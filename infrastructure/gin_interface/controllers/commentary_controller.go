package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/FlyingGorillaz/Sons-Of-Anton/application/ports/inbound"
	"github.com/FlyingGorillaz/Sons-Of-Anton/application/ports/outbound"
	"github.com/FlyingGorillaz/Sons-Of-Anton/domain"
	"github.com/FlyingGorillaz/Sons-Of-Anton/infrastructure/gin_interface/dto"
)

type CommentaryController interface {
	ProcessArticle(c *gin.Context)
	ListVoices(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type commentaryController struct {
	logger      outbound.LoggerPort
	pipeline    inbound.CommentaryPipelinePort
	synthesizer outbound.SpeechSynthesizerPort
	catalog     []domain.Voice
}

func NewCommentaryController(logger outbound.LoggerPort, pipeline inbound.CommentaryPipelinePort,
	synthesizer outbound.SpeechSynthesizerPort, catalog []domain.Voice) CommentaryController {
	return &commentaryController{
		logger:      logger,
		pipeline:    pipeline,
		synthesizer: synthesizer,
		catalog:     catalog,
	}
}

// ProcessArticle runs the commentary pipeline for the submitted URL
// and streams the synthesized narration back as an MP3 attachment.
func (ctrl *commentaryController) ProcessArticle(c *gin.Context) {
	newCtx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	var request dto.ProcessArticleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.String(400, "invalid request body: %v", err)
		return
	}
	if request.Style == "" {
		request.Style = dto.DefaultStyle
	}

	parsedURL, err := url.Parse(request.URL)
	if err != nil || (parsedURL.Scheme != "http" && parsedURL.Scheme != "https") {
		c.String(400, "Only HTTP and HTTPS URLs are supported")
		return
	}

	requestID := uuid.NewString()
	result, err := ctrl.pipeline.Analyze(newCtx, inbound.AnalyzeArticleParams{
		RequestID: requestID,
		URL:       request.URL,
		Style:     request.Style,
	})
	if err != nil {
		ctrl.logger.ErrorWithFields(err, "Pipeline failed", map[string]interface{}{
			"request_id": requestID,
			"url":        request.URL,
		})
		if errors.Is(err, domain.ErrArticleFetch) {
			c.String(400, "Failed to generate article summary: %v", err)
			return
		}
		c.String(500, "%v", err)
		return
	}

	passage := assemblePassage(result)
	voiceID := narrationVoiceID(result)

	audio, err := ctrl.synthesizer.Synthesize(newCtx, outbound.SynthesizeSpeechRequest{
		Text:    passage,
		VoiceID: voiceID,
	})
	if err != nil {
		ctrl.logger.ErrorWithFields(err, "Audio synthesis failed", map[string]interface{}{
			"request_id": requestID,
		})
		c.String(500, "Failed to generate audio: %v", err)
		return
	}
	defer func() {
		if err := audio.Close(); err != nil {
			ctrl.logger.Error(err, "Failed to close audio stream")
		}
	}()

	c.DataFromReader(200, -1, "audio/mpeg", audio, map[string]string{
		"Content-Disposition": "attachment; filename=speech.mp3",
	})
}

func (ctrl *commentaryController) ListVoices(c *gin.Context) {
	c.JSON(200, gin.H{
		"voices": ctrl.catalog,
		"count":  len(ctrl.catalog),
	})
}

func (ctrl *commentaryController) RegisterRoutes(g *gin.Engine) {
	g.POST("/api/data", ctrl.ProcessArticle)
	g.GET("/api/voices", ctrl.ListVoices)
}

// assemblePassage builds the narration text: the styled summary
// followed by each perspective's comment in discovery order, falling
// back to the plain summary when styling is unavailable.
func assemblePassage(result domain.CommentaryResult) string {
	if result.StyledSummary == "" {
		return result.OriginalSummary
	}

	var builder strings.Builder
	builder.WriteString(result.StyledSummary)
	if len(result.PerspectiveComments) > 0 {
		builder.WriteString("\n\nPerspectives:\n")
		for _, comment := range result.PerspectiveComments {
			builder.WriteString(fmt.Sprintf("\n%s: %s\n", comment.Perspective, comment.Comment))
		}
	}
	return builder.String()
}

// narrationVoiceID picks the best-scoring styled-summary match, then
// the best plain-summary match. Empty means the synthesizer's default
// voice.
func narrationVoiceID(result domain.CommentaryResult) string {
	if best, ok := domain.BestVoice(result.StyledSummaryVoiceMatches); ok {
		return best.Voice.VoiceID
	}
	if best, ok := domain.BestVoice(result.SummaryVoiceMatches); ok {
		return best.Voice.VoiceID
	}
	return ""
}
