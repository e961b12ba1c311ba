package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"

	"svoji/internal/config"
	"svoji/internal/database"
	"svoji/internal/llm"
	"svoji/internal/vendor"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	url := flag.String("url", "", "vendor listing page to import")
	flag.Parse()

	if *url == "" {
		log.Fatal().Msg("usage: vendor-import -url <listing page>")
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	geminiClient, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Gemini client")
	}
	defer geminiClient.Close()

	importer := vendor.NewImporter(geminiClient, vendor.NewRepository(db.SQL))

	vendors, err := importer.ImportURL(ctx, *url)
	if err != nil {
		log.Fatal().Err(err).Int("imported", len(vendors)).Msg("import failed")
	}

	for _, v := range vendors {
		log.Info().Str("name", v.Name).Str("category", v.Category).Str("city", v.City).Msg("imported vendor")
	}
	log.Info().Int("count", len(vendors)).Msg("import finished")
}
