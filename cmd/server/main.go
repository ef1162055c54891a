package main

import (
	"fmt"
	"log"

	"vocalis/internal/config"
	"vocalis/internal/extract"
	"vocalis/internal/guardrails"
	"vocalis/internal/handler"
	"vocalis/internal/llm/openai"
	"vocalis/internal/normalize"
	"vocalis/internal/router"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.LLM.APIKey == "" {
		return fmt.Errorf("missing LLM API key (set VOCALIS_LLM_API_KEY)")
	}

	// Extraction pipeline
	llmClient := openai.NewClient(&cfg.LLM)
	analyzer := extract.NewAnalyzer(
		extract.NewRouter(llmClient),
		extract.NewSectionExtractors(llmClient),
		guardrails.NewGuardrails(),
		normalize.NewNormalizer(),
	)

	// Handlers
	extractionH := handler.NewExtractionHandler(analyzer, normalize.NewNormalizer())
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, extractionH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
