package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"tubeseo/api"
	"tubeseo/cache"
	"tubeseo/extractor"
	"tubeseo/seo"
	"tubeseo/thumbnail"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	metaCache, err := cache.NewFromEnv()
	if err != nil {
		log.Printf("Warning: metadata cache disabled: %v", err)
	}
	if metaCache != nil {
		defer metaCache.Close()
	}

	deps := &api.Deps{
		Extractor:  extractor.NewService(os.Getenv("YOUTUBE_API_KEY"), metaCache),
		Refiner:    seo.NewTagRefinerFromEnv(),
		Thumbnails: thumbnail.NewGenerator(os.Getenv("OPENAI_API_KEY")),
	}

	r := api.NewRouter(deps)
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /")
	log.Println("  POST /api/analyze")
	log.Println("  GET  /api/video")
	log.Println("  GET  /api/channel")
	log.Println("  POST /api/preview")
	log.Println("  GET  /api/health")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
