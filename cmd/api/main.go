package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"bookshelf/internal/cache"
	"bookshelf/internal/catalog"
	apphttp "bookshelf/internal/http"
	"bookshelf/internal/httpx"
	"bookshelf/internal/platform/openlibrary"
	"bookshelf/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	catalogBaseURL := getEnv("OPENLIBRARY_BASE_URL", "https://openlibrary.org")
	userAgent := getEnv("USER_AGENT", "bookshelf/1.0")
	snapshotPath := getEnv("LOCAL_BOOKS_FILE", "books.json")
	devMode := getEnv("APP_ENV", "development") != "production"
	catalogRPS := getEnvInt("OPENLIBRARY_RPS", 5)
	allowedOrigins := strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ",")

	localStore := store.NewMemory()
	if err := localStore.LoadSnapshot(snapshotPath); err != nil {
		log.Printf("local snapshot %s not loaded, starting empty: %v", snapshotPath, err)
	} else {
		log.Printf("loaded %d books from %s", len(localStore.GetAll()), snapshotPath)
	}

	results := cache.New(cache.DefaultTTL)
	defer results.Stop()

	olClient := openlibrary.NewClient(catalogBaseURL, userAgent, catalogRPS)
	catalogService := catalog.NewService(olClient, results)

	errs := httpx.ErrorWriter{Dev: devMode}
	bookHandler := apphttp.NewBookHandler(localStore, catalogService, errs)

	router := http.NewServeMux()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.HandleFunc("GET /books", bookHandler.List)
	router.HandleFunc("POST /books", bookHandler.Create)
	router.HandleFunc("GET /books/search", bookHandler.Search)
	router.HandleFunc("GET /books/{id}", bookHandler.GetByID)

	rateLimit := httpx.NewRateLimitMiddleware(20, 40)

	var handler http.Handler = router
	handler = httpx.RecoveryMiddleware(errs)(handler)
	handler = httpx.RequestSizeLimitMiddleware(1 << 20)(handler)
	handler = httpx.SecurityHeadersMiddleware(getEnv("ENABLE_HSTS", "") == "true")(handler)
	handler = httpx.CORSMiddleware(allowedOrigins)(handler)
	handler = rateLimit.Middleware(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", serverAddress)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}
