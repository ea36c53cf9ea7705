package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"freight-quotation-service/internal/adapters/repositories"
	"freight-quotation-service/internal/config"
	"freight-quotation-service/internal/platform/db"
)

// dbtool initializes the vendor_rates schema and seeds it from a JSON file.
// It targets Postgres when DATABASE_URL is set, otherwise SQLite at DB_PATH.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	conn, err := openTarget()
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/rates.json")
	initAndSeed(conn, seedPath)
}

func openTarget() (*sql.DB, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		return db.Open(databaseURL)
	}
	return db.OpenSQLite(config.Get("DB_PATH", "data/app.db"))
}

func initAndSeed(conn *sql.DB, seedPath string) {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromJSON(conn, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
