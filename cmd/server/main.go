package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"route-optimization-service/internal/adapters/cache"
	"route-optimization-service/internal/adapters/repositories"
	"route-optimization-service/internal/api"
	"route-optimization-service/internal/config"
	"route-optimization-service/internal/platform/db"
	"route-optimization-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := config.Get("PORT", "8080")

	sqlDB, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	repo := repositories.NewPostgresStopRepository(sqlDB)

	// Redis is optional: without it every optimization recomputes,
	// which is correct, just slower for repeated identical requests.
	var resultCache ports.ResultCache
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		ttl, err := time.ParseDuration(config.Get("RESULT_CACHE_TTL", "1h"))
		if err != nil {
			log.Fatalf("invalid RESULT_CACHE_TTL: %v", err)
		}
		client := redis.NewClient(&redis.Options{Addr: addr})
		defer client.Close()
		resultCache = cache.NewRedisResultCache(client, ttl)
	} else {
		log.Println("REDIS_ADDR not set, result caching disabled")
	}

	router := api.NewRouter(repo, resultCache)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
