package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/FlyingGorillaz/Sons-Of-Anton/application/ports/inbound"
	"github.com/FlyingGorillaz/Sons-Of-Anton/application/ports/outbound"
	"github.com/FlyingGorillaz/Sons-Of-Anton/application/services"
	"github.com/FlyingGorillaz/Sons-Of-Anton/config"
	"github.com/FlyingGorillaz/Sons-Of-Anton/domain"
	"github.com/FlyingGorillaz/Sons-Of-Anton/infrastructure/adapters"
	"github.com/FlyingGorillaz/Sons-Of-Anton/infrastructure/gin_interface/controllers"
	"github.com/FlyingGorillaz/Sons-Of-Anton/middleware"
)

type app struct {
	logger      outbound.LoggerPort
	workerPool  *ants.Pool
	pipeline    inbound.CommentaryPipelinePort
	synthesizer outbound.SpeechSynthesizerPort
	catalog     []domain.Voice
}

func buildApp() *app {
	gptConfig, err := config.GetGptConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get gpt config")
	}

	elevenLabsConfig, err := config.GetElevenLabsConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get eleven labs config")
	}

	pipelineConfig, err := config.GetPipelineConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get pipeline config")
	}

	logger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		logger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}

	contentFetcher := adapters.NewContentFetcher(logger, pipelineConfig.CallTimeout)

	catalogLoader := adapters.NewVoiceCatalog(contentFetcher, elevenLabsConfig, logger)
	catalog, err := catalogLoader.Load(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load voice catalog")
	}

	textGenerator := adapters.NewChatCompletionGenerator(gptConfig, logger)
	articleExtractor := adapters.NewArticleExtractor(contentFetcher, logger)
	synthesizer := adapters.NewSpeechSynthesizer(contentFetcher, elevenLabsConfig, logger)

	personaDeriver := services.NewPersonaDeriver(logger, textGenerator)
	voiceMatcher := services.NewVoiceMatcher()

	pipeline := services.NewCommentaryPipeline(logger, workerPool, articleExtractor, textGenerator,
		personaDeriver, voiceMatcher, catalog, services.PipelineOptions{
			EnableStyling:       pipelineConfig.EnableStyling,
			EnableComments:      pipelineConfig.EnableComments,
			EnableVoiceMatching: pipelineConfig.EnableVoiceMatching,
			CallTimeout:         pipelineConfig.CallTimeout,
		})

	return &app{
		logger:      logger,
		workerPool:  workerPool,
		pipeline:    pipeline,
		synthesizer: synthesizer,
		catalog:     catalog,
	}
}

func serve() {
	a := buildApp()
	defer a.workerPool.Release()

	router := gin.Default()
	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}
	router.Use(middleware.CORSMiddleware())

	controller := controllers.NewCommentaryController(a.logger, a.pipeline, a.synthesizer, a.catalog)
	controller.RegisterRoutes(router)

	if err := router.Run(":8000"); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}

func analyze() {
	a := buildApp()
	defer a.workerPool.Release()

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter news article URL: ")
	url, err := reader.ReadString('\n')
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read URL")
	}
	fmt.Print("\nEnter your preferred style: ")
	style, err := reader.ReadString('\n')
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read style")
	}
	url = strings.TrimSpace(url)
	style = strings.TrimSpace(style)

	result, err := a.pipeline.Analyze(context.Background(), inbound.AnalyzeArticleParams{
		RequestID: uuid.NewString(),
		URL:       url,
		Style:     style,
	})
	if err != nil {
		fmt.Printf("Error processing article: %v\n", err)
		os.Exit(1)
	}

	printReport(result, style)
}

func printReport(result domain.CommentaryResult, style string) {
	styleName := capitalize(style)

	fmt.Println("\nArticle Title:", result.Title)
	fmt.Println("\nOriginal Summary:")
	fmt.Println(result.OriginalSummary)
	printBestVoice(result.SummaryVoiceMatches, "Original Summary")

	if result.StyledSummary != "" {
		fmt.Printf("\n%s Style Summary:\n", styleName)
		fmt.Println(result.StyledSummary)
		printBestVoice(result.StyledSummaryVoiceMatches, styleName+" Style Summary")
	}

	if len(result.PerspectivesChosen) > 0 {
		fmt.Println("\nRelevant Perspectives Identified:", strings.Join(result.PerspectivesChosen, ", "))
		fmt.Printf("\n%s Style Comments from Each Perspective:\n", styleName)
		fmt.Println(strings.Repeat("=", 50))
		for _, comment := range result.PerspectiveComments {
			fmt.Printf("\n%s:\n", comment.Perspective)
			fmt.Println(strings.Repeat("-", len(comment.Perspective)))
			fmt.Println(comment.Comment)
			printBestVoice(comment.VoiceMatches, comment.Perspective)
			fmt.Println()
		}
	}
}

func printBestVoice(matches []domain.VoiceMatch, section string) {
	if best, ok := domain.BestVoice(matches); ok {
		fmt.Printf("\nRecommended Voice for %s: %s\n", section, best.Voice.VoiceID)
	} else {
		fmt.Printf("\nNo voice match found for %s\n", section)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "sons-of-anton",
		Short: "News commentary generation with persona-matched voices",
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Run: func(cmd *cobra.Command, args []string) {
			serve()
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "analyze",
		Short: "Analyze an article interactively and print the commentary report",
		Run: func(cmd *cobra.Command, args []string) {
			analyze()
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
