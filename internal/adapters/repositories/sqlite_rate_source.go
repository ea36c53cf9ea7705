package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"freight-quotation-service/internal/domain"
)

// SQLite-backed implementation of the RateSource port, used for local
// runs and the dbtool-seeded demo database.
type SqliteRateSource struct {
	DB *sql.DB
}

func NewSqliteRateSource(db *sql.DB) *SqliteRateSource {
	return &SqliteRateSource{DB: db}
}

func (s *SqliteRateSource) FetchRawRows(ctx context.Context) ([]domain.RawRow, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite rate source: db is nil")
	}

	q := `
	SELECT from_origin, pincode, area, receiver_name, vehicle_no, vehicle_type, rate, vendor_name
	FROM vendor_rates
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetch rate rows: query vendor_rates table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.RawRow, 0, 256)
	for rows.Next() {
		var origin, pincode, area, receiver, vehicleNo, vehicleType, vendor string
		var rate float64
		if err := rows.Scan(&origin, &pincode, &area, &receiver, &vehicleNo, &vehicleType, &rate, &vendor); err != nil {
			return nil, fmt.Errorf("fetch rate rows: scan row: %w", err)
		}
		out = append(out, domain.RawRow{
			"from_origin":   origin,
			"pincode":       pincode,
			"area":          area,
			"receiver_name": receiver,
			"vehicle_no":    vehicleNo,
			"vehicle_type":  vehicleType,
			"rate":          rate,
			"vendor_name":   vendor,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch rate rows: row iteration: %w", err)
	}

	return out, nil
}

func (s *SqliteRateSource) UpdateRow(ctx context.Context, row domain.RawRow, rowIndex int) (bool, error) {
	if s.DB == nil {
		return false, errors.New("sqlite rate source: db is nil")
	}
	if rowIndex < 0 {
		return false, fmt.Errorf("update rate row: invalid row index %d", rowIndex)
	}

	q := `
	UPDATE vendor_rates
	SET from_origin = ?, pincode = ?, area = ?, receiver_name = ?,
		vehicle_no = ?, vehicle_type = ?, rate = ?, vendor_name = ?
	WHERE id = (
		SELECT id FROM vendor_rates ORDER BY id LIMIT 1 OFFSET ?
	);
	`
	res, err := s.DB.ExecContext(ctx, q,
		text(row, "from_origin"), text(row, "pincode"), text(row, "area"),
		text(row, "receiver_name"), text(row, "vehicle_no"), text(row, "vehicle_type"),
		number(row, "rate"), text(row, "vendor_name"), rowIndex,
	)
	if err != nil {
		return false, fmt.Errorf("update rate row %d: %w", rowIndex, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update rate row %d: rows affected: %w", rowIndex, err)
	}
	return affected > 0, nil
}

// text extracts a string cell from a raw row, tolerating numeric values.
func text(row domain.RawRow, key string) string {
	switch v := row[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// number extracts a numeric cell from a raw row.
func number(row domain.RawRow, key string) float64 {
	switch v := row[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
