// catalog-ingest fetches recipe pages and prints them as catalog meal JSON,
// ready to be appended to the embedded catalog.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"mealer/internal/catalog"
	"mealer/internal/ingest"
)

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "overall timeout for all fetches")
	flag.Parse()

	urls := flag.Args()
	if len(urls) == 0 {
		log.Fatal("usage: catalog-ingest [-timeout 30s] <url> [url...]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	ig := ingest.NewIngester()
	meals := make([]catalog.Meal, 0, len(urls))
	for _, url := range urls {
		meal, err := ig.FetchMeal(ctx, url)
		if err != nil {
			log.Fatalf("Failed to ingest %s: %v", url, err)
		}
		meals = append(meals, meal)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meals); err != nil {
		log.Fatalf("Failed to encode meals: %v", err)
	}
}
