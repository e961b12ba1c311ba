package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"svoji/internal/advisor"
	"svoji/internal/api"
	"svoji/internal/auth"
	"svoji/internal/budget"
	"svoji/internal/chat"
	"svoji/internal/checklist"
	"svoji/internal/config"
	"svoji/internal/couple"
	"svoji/internal/database"
	"svoji/internal/guest"
	"svoji/internal/llm"
	"svoji/internal/metrics"
	"svoji/internal/reminder"
	"svoji/internal/vendor"
	"svoji/internal/website"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// 1. Load Configuration
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Initialize Infrastructure
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

	// 3. Initialize repositories
	coupleRepo := couple.NewRepository(db.SQL)
	itemRepo := checklist.NewRepository(db.SQL)
	guestRepo := guest.NewRepository(db.SQL)
	budgetRepo := budget.NewRepository(db.SQL)
	chatRepo := chat.NewRepository(db.SQL)
	websiteRepo := website.NewRepository(db.SQL)
	vendorRepo := vendor.NewRepository(db.SQL)
	metricsStore := metrics.NewStore(db.SQL)

	// 4. Initialize services
	authService := auth.NewService(cfg.JWTSecret)
	weddingAdvisor := advisor.NewAdvisor(geminiClient, chatRepo, metricsStore)

	server := api.New(api.Deps{
		Auth:     authService,
		Couples:  coupleRepo,
		Items:    itemRepo,
		Guests:   guestRepo,
		Budgets:  budgetRepo,
		Chats:    chatRepo,
		Websites: websiteRepo,
		Vendors:  vendorRepo,
		Advisor:  weddingAdvisor,
		Log:      log,
	})

	// 5. Telegram reminders (optional)
	if cfg.TelegramBotToken != "" {
		sender, err := reminder.NewTelegramSender(cfg.TelegramBotToken)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize telegram sender")
		}
		poller := reminder.NewPoller(coupleRepo, itemRepo, sender, cfg.ReminderInterval, log)
		go poller.Run(ctx)
		log.Info().Dur("interval", cfg.ReminderInterval).Msg("telegram reminders enabled")
	}

	// 6. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")
	cancel()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}
