package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"freight-quotation-service/internal/adapters/repositories"
	"freight-quotation-service/internal/adapters/sheets"
	"freight-quotation-service/internal/adapters/snapshot"
	"freight-quotation-service/internal/api"
	"freight-quotation-service/internal/cache"
	"freight-quotation-service/internal/config"
	"freight-quotation-service/internal/match"
	"freight-quotation-service/internal/platform/db"
	"freight-quotation-service/internal/ports"
)

// main is the application composition root.
// It wires a rate source (Google Sheets, Postgres, SQLite, or the built-in
// demo dataset) behind the cache and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	source, closeSource, err := buildSource()
	if err != nil {
		log.Fatal(err)
	}
	defer closeSource()

	opts := cache.Options{
		TTL:          config.GetSeconds("CACHE_TTL", 300),
		FetchTimeout: config.GetSeconds("FETCH_TIMEOUT", 15),
	}

	// Optional Redis snapshot store: survives restarts while upstream is down.
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		store := snapshot.NewRedisStore(addr)
		defer store.Close()
		opts.Snapshots = store
	}

	datasetCache := cache.New(source, opts)
	matcher := match.NewLocationMatcher(config.GetFloat("MATCH_THRESHOLD", match.DefaultThreshold))

	router := api.NewRouter(datasetCache, source, matcher)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildSource picks the rate source from RATE_SOURCE and returns it with
// a cleanup func (a no-op for sources that hold no connections).
func buildSource() (ports.RateSource, func(), error) {
	noop := func() {}

	switch kind := config.Get("RATE_SOURCE", "sheets"); kind {
	case "sheets":
		src, err := sheets.New(
			os.Getenv("SHEETS_API_KEY"),
			os.Getenv("SHEETS_ID"),
			config.Get("SHEETS_RANGE", "Sheet1"),
		)
		if err != nil {
			return nil, nil, err
		}
		if base := os.Getenv("SHEETS_BASE_URL"); base != "" {
			src.SetBaseURL(base)
		}
		return src, noop, nil

	case "postgres":
		conn, err := db.Open(os.Getenv("DATABASE_URL"))
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewSQLRateSource(conn), func() { conn.Close() }, nil

	case "sqlite":
		conn, err := db.OpenSQLite(config.Get("DB_PATH", "data/app.db"))
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitSchema(conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		if seedPath := os.Getenv("SEED_PATH"); seedPath != "" {
			if err := repositories.SeedFromJSON(conn, seedPath); err != nil {
				conn.Close()
				return nil, nil, err
			}
		}
		return repositories.NewSqliteRateSource(conn), func() { conn.Close() }, nil

	case "demo":
		return sheets.NewDemoSource(), noop, nil

	default:
		log.Fatalf("unknown RATE_SOURCE %q (want sheets, postgres, sqlite, or demo)", kind)
		return nil, nil, nil
	}
}
