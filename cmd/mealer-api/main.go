package main

import (
	"log"

	"github.com/joho/godotenv"

	"mealer/internal/api"
	"mealer/internal/catalog"
	"mealer/internal/config"
	"mealer/internal/database"
	"mealer/internal/favorites"
	"mealer/internal/planner"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load meal catalog: %v", err)
	}
	log.Printf("Loaded %d meals from catalog", cat.Len())

	var favStore favorites.Store
	if cfg.DBPath != "" {
		db, err := database.NewDB(cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
		favStore = favorites.NewSQLiteStore(db.SQL)
		log.Printf("Using SQLite favorites store at %s", cfg.DBPath)
	} else {
		favStore = favorites.NewMemoryStore()
		log.Println("Using in-memory favorites store")
	}

	p := planner.New(cat, favStore, nil)
	handler := api.NewHandler(p, favStore)
	router := api.NewRouter(handler, cfg.AuthSecret, cfg.CORSOrigins)

	log.Printf("Starting server on %s", cfg.ListenAddr)
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
