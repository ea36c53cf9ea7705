package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the vendor_rates schema. Works on both SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRatesQuery := `
	CREATE TABLE IF NOT EXISTS vendor_rates (
		id INTEGER PRIMARY KEY,
		from_origin TEXT NOT NULL DEFAULT '',
		pincode TEXT NOT NULL DEFAULT '',
		area TEXT NOT NULL DEFAULT '',
		receiver_name TEXT NOT NULL DEFAULT '',
		vehicle_no TEXT NOT NULL DEFAULT '',
		vehicle_type TEXT NOT NULL DEFAULT '',
		rate REAL NOT NULL DEFAULT 0,
		vendor_name TEXT NOT NULL DEFAULT ''
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_vendor_rates_origin_area
	ON vendor_rates(from_origin, area);
	`

	statements := []string{
		createRatesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type RateSeed struct {
	ID           int     `json:"id"`
	FromOrigin   string  `json:"from_origin"`
	Pincode      string  `json:"pincode"`
	Area         string  `json:"area"`
	ReceiverName string  `json:"receiver_name"`
	VehicleNo    string  `json:"vehicle_no"`
	VehicleType  string  `json:"vehicle_type"`
	Rate         float64 `json:"rate"`
	VendorName   string  `json:"vendor_name"`
}

// Populate the vendor_rates table from a JSON seed file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed rates: read %q: %w", jsonPath, err)
	}

	var data []RateSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed rates: parse json: %w", err)
	}

	for i, item := range data {
		if item.ID <= 0 {
			return fmt.Errorf("seed rates: invalid id at index %d: %d", i, item.ID)
		}
		origin := strings.TrimSpace(item.FromOrigin)
		area := strings.TrimSpace(item.Area)
		if origin == "" && area == "" && item.Rate <= 0 {
			return fmt.Errorf("seed rates: row at index %d has no origin, area or rate", i)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed rates: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// $N placeholders and ON CONFLICT upserts work on both engines.
	query := `
	INSERT INTO vendor_rates (
		id, from_origin, pincode, area, receiver_name,
		vehicle_no, vehicle_type, rate, vendor_name
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (id) DO UPDATE SET
		from_origin = excluded.from_origin, pincode = excluded.pincode,
		area = excluded.area, receiver_name = excluded.receiver_name,
		vehicle_no = excluded.vehicle_no, vehicle_type = excluded.vehicle_type,
		rate = excluded.rate, vendor_name = excluded.vendor_name;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed rates: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range data {
		if _, err := stmt.Exec(
			r.ID, strings.TrimSpace(r.FromOrigin), strings.TrimSpace(r.Pincode),
			strings.TrimSpace(r.Area), strings.TrimSpace(r.ReceiverName),
			strings.TrimSpace(r.VehicleNo), strings.TrimSpace(r.VehicleType),
			r.Rate, strings.TrimSpace(r.VendorName),
		); err != nil {
			return fmt.Errorf("seed rates: insert id=%d: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed rates: commit tx: %w", err)
	}

	return nil
}
