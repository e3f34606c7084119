package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Black-And-White-Club/roomly/app/botrelay"
	"github.com/Black-And-White-Club/roomly/app/observability"
	"github.com/Black-And-White-Club/roomly/config"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg, err := config.LoadBotConfig()
	if err != nil {
		log.Fatalf("failed to load bot config: %v", err)
	}

	logger := observability.NewLogger(observability.Config{LogLevel: cfg.LogLevel}).With("component", "bot")

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		log.Fatalf("failed to connect to Telegram: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bot := botrelay.NewBot(
		botrelay.NewClient(cfg.APIBaseURL, cfg.AdminToken, cfg.VerifySSL),
		botrelay.NewTelegramSender(api),
		cfg.AdminIDs,
		logger,
	)

	logger.Info("Starting bot", slog.String("api_base_url", cfg.APIBaseURL), slog.Int("admins", len(cfg.AdminIDs)))
	if err := bot.Poll(ctx, api); err != nil {
		logger.Error("Bot stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}
