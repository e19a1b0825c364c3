package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"mealer/internal/catalog"
	"mealer/internal/config"
	"mealer/internal/database"
	"mealer/internal/favorites"
	"mealer/internal/planner"
	"mealer/internal/telegram"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable not set")
	}

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load meal catalog: %v", err)
	}

	var favStore favorites.Store
	if cfg.DBPath != "" {
		db, err := database.NewDB(cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
		favStore = favorites.NewSQLiteStore(db.SQL)
	} else {
		favStore = favorites.NewMemoryStore()
	}

	mealPlanner := planner.New(cat, favStore, nil)

	bot, err := telegram.NewBot(cfg, mealPlanner, favStore)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram Bot: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down bot...")
		cancel()
	}()

	log.Println("Telegram bot polling for updates")
	bot.Run(ctx)
	log.Println("Bot exiting")
}
