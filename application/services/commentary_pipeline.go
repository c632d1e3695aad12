package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/FlyingGorillaz/Sons-Of-Anton/application/ports/inbound"
	"github.com/FlyingGorillaz/Sons-Of-Anton/application/ports/outbound"
	"github.com/FlyingGorillaz/Sons-Of-Anton/domain"
)

const summarizePrompt = "Summarize this news article briefly keep the length less than 30 seconds of speech:\n%s"

const perspectivesPrompt = `Based on this news article, determine the 4-5 most relevant perspectives or stakeholders
who would have interesting and diverse viewpoints on this topic. Return the result as a JSON array of
strings, where each string is a specific type of commenter (e.g., "Tech Industry Expert", "Privacy Advocate", etc.).

Article text: %s

Consider factors like:
- The main topic and field (tech, politics, sports, etc.)
- Key stakeholders mentioned or affected
- Relevant expert viewpoints needed
- Potential opposing viewpoints
- Local vs global perspectives if relevant

Return only the JSON array, no other text.`

const styledCommentPrompt = `As a %s, provide a comment on this news in a %s style:

Article Summary: %s

Write your comment in %s style while maintaining the authenticity of your perspective.
For example, if the style is 'RAP' and you're a tech expert, write like a world famous rapper
discussing technology. If the style is 'poetic' and you're a political analyst, write a poetic
analysis of the political situation.

Make it creative and entertaining while still providing meaningful insights from your perspective.
The output will be used for text to speech so make minor adjustments accordingly to make it sound
like natural human speech.`

const plainCommentPrompt = `As a %s, provide a brief, realistic comment on this news:

Article Summary: %s

Write your comment in a style and tone typical of your perspective. Include specific insights
relevant to your expertise or viewpoint. Be authentic to how this type of person would actually respond.`

const styledSummaryPrompt = "Rewrite this news summary in %s style:\n%s"

// PipelineOptions selects the optional pipeline stages and bounds each
// external collaborator call.
type PipelineOptions struct {
	EnableStyling       bool
	EnableComments      bool
	EnableVoiceMatching bool
	CallTimeout         time.Duration
}

type commentaryPipeline struct {
	logger           outbound.LoggerPort
	workerPool       outbound.TaskDispatcher
	articleExtractor outbound.ArticleExtractorPort
	textGenerator    outbound.TextGeneratorPort
	personaDeriver   inbound.PersonaDeriverPort
	voiceMatcher     inbound.VoiceMatcherPort
	catalog          []domain.Voice
	options          PipelineOptions
}

func NewCommentaryPipeline(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	articleExtractor outbound.ArticleExtractorPort, textGenerator outbound.TextGeneratorPort,
	personaDeriver inbound.PersonaDeriverPort, voiceMatcher inbound.VoiceMatcherPort,
	catalog []domain.Voice, options PipelineOptions) inbound.CommentaryPipelinePort {
	return &commentaryPipeline{
		logger:           logger,
		workerPool:       workerPool,
		articleExtractor: articleExtractor,
		textGenerator:    textGenerator,
		personaDeriver:   personaDeriver,
		voiceMatcher:     voiceMatcher,
		catalog:          catalog,
		options:          options,
	}
}

func (p *commentaryPipeline) Analyze(ctx context.Context, params inbound.AnalyzeArticleParams) (domain.CommentaryResult, error) {
	p.logger.InfoWithFields("Starting article analysis", map[string]interface{}{
		"request_id": params.RequestID,
		"url":        params.URL,
		"style":      params.Style,
	})

	article, err := p.extractArticle(ctx, params.URL)
	if err != nil {
		return domain.CommentaryResult{}, err
	}

	summary, err := p.complete(ctx, fmt.Sprintf(summarizePrompt, article.Text))
	if err != nil {
		p.logger.Error(err, "Failed to summarize article")
		return domain.CommentaryResult{}, fmt.Errorf("%w: summary generation failed: %v", domain.ErrArticleFetch, err)
	}

	result := domain.CommentaryResult{
		Title:           article.Title,
		OriginalSummary: summary,
	}

	if p.options.EnableVoiceMatching {
		result.SummaryVoiceMatches = p.matchNarration(ctx, article.Title, summary, params.Style)
	}

	if p.options.EnableComments {
		perspectives, err := p.discoverPerspectives(ctx, article.Text)
		if err != nil {
			return domain.CommentaryResult{}, err
		}
		result.PerspectivesChosen = perspectives

		comments, err := p.commentPerPerspective(ctx, perspectives, summary, params.Style)
		if err != nil {
			return domain.CommentaryResult{}, err
		}
		result.PerspectiveComments = comments
	}

	if p.options.EnableStyling {
		styledSummary, err := p.complete(ctx, fmt.Sprintf(styledSummaryPrompt, params.Style, summary))
		if err != nil {
			p.logger.Error(err, "Failed to style summary")
			return domain.CommentaryResult{}, fmt.Errorf("failed to style summary: %w", err)
		}
		result.StyledSummary = styledSummary
		if p.options.EnableVoiceMatching {
			result.StyledSummaryVoiceMatches = p.matchNarration(ctx, article.Title, styledSummary, params.Style)
		}
	}

	p.logger.InfoWithFields("Completed article analysis", map[string]interface{}{
		"request_id":   params.RequestID,
		"perspectives": len(result.PerspectiveComments),
	})
	return result, nil
}

func (p *commentaryPipeline) extractArticle(ctx context.Context, url string) (domain.Article, error) {
	callCtx, cancel := p.callContext(ctx)
	defer cancel()

	article, err := p.articleExtractor.Extract(callCtx, url)
	if err != nil {
		p.logger.ErrorWithFields(err, "Failed to extract article", map[string]interface{}{
			"url": url,
		})
		return domain.Article{}, err
	}
	return article, nil
}

func (p *commentaryPipeline) matchNarration(ctx context.Context, title string, summary string, style string) []domain.VoiceMatch {
	callCtx, cancel := p.callContext(ctx)
	defer cancel()

	persona := p.personaDeriver.FromContentSummary(callCtx, title, summary, style)
	return p.voiceMatcher.MatchTopVoices(persona, p.catalog)
}

func (p *commentaryPipeline) discoverPerspectives(ctx context.Context, articleText string) ([]string, error) {
	completion, err := p.complete(ctx, fmt.Sprintf(perspectivesPrompt, articleText))
	if err != nil {
		p.logger.Error(err, "Failed to discover perspectives")
		return nil, fmt.Errorf("%w: %v", domain.ErrPerspectiveDiscovery, err)
	}

	var perspectives []string
	if err := json.Unmarshal([]byte(completion), &perspectives); err != nil {
		p.logger.ErrorWithFields(err, "Perspectives response is not a JSON array", map[string]interface{}{
			"completion": completion,
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrPerspectiveDiscovery, err)
	}
	return perspectives, nil
}

// commentPerPerspective fans out one task per perspective. The indexed
// result slice keeps the assembled output in discovery order no matter
// which task finishes first. A perspective whose persona derivation
// fails is dropped; any other failure aborts the whole request.
func (p *commentaryPipeline) commentPerPerspective(ctx context.Context, perspectives []string,
	summary string, style string) ([]domain.PerspectiveComment, error) {
	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]*domain.PerspectiveComment, len(perspectives))
	taskErrs := make([]error, len(perspectives))

	var wg sync.WaitGroup
	for i, perspective := range perspectives {
		i, perspective := i, perspective
		wg.Add(1)
		err := p.workerPool.Submit(func() {
			defer wg.Done()
			select {
			case <-newCtx.Done():
				return
			default:
			}

			comment, err := p.processPerspective(newCtx, perspective, summary, style)
			if err != nil {
				taskErrs[i] = err
				cancel()
				return
			}
			results[i] = comment
		})
		if err != nil {
			wg.Done()
			cancel()
			return nil, err
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range taskErrs {
		if err != nil {
			return nil, err
		}
	}

	comments := make([]domain.PerspectiveComment, 0, len(perspectives))
	for _, result := range results {
		if result != nil {
			comments = append(comments, *result)
		}
	}
	return comments, nil
}

// processPerspective returns (nil, nil) when the perspective should be
// dropped because its persona could not be derived.
func (p *commentaryPipeline) processPerspective(ctx context.Context, perspective string,
	summary string, style string) (*domain.PerspectiveComment, error) {
	prompt := fmt.Sprintf(plainCommentPrompt, perspective, summary)
	if p.options.EnableStyling {
		prompt = fmt.Sprintf(styledCommentPrompt, perspective, style, summary, style)
	}

	comment, err := p.complete(ctx, prompt)
	if err != nil {
		p.logger.ErrorWithFields(err, "Failed to generate comment", map[string]interface{}{
			"perspective": perspective,
		})
		return nil, fmt.Errorf("failed to generate comment for %q: %w", perspective, err)
	}

	result := &domain.PerspectiveComment{
		Perspective: perspective,
		Comment:     comment,
	}

	if p.options.EnableVoiceMatching {
		callCtx, cancel := p.callContext(ctx)
		persona, err := p.personaDeriver.FromPerspectiveLabel(callCtx, perspective)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			p.logger.WarnWithFields("Dropping perspective with underivable persona", map[string]interface{}{
				"perspective": perspective,
				"cause":       err.Error(),
			})
			return nil, nil
		}
		result.VoiceMatches = p.voiceMatcher.MatchTopVoices(persona, p.catalog)
	}

	return result, nil
}

func (p *commentaryPipeline) complete(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := p.callContext(ctx)
	defer cancel()
	return p.textGenerator.Complete(callCtx, prompt)
}

func (p *commentaryPipeline) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.options.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.options.CallTimeout)
}
