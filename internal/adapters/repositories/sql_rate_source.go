package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"freight-quotation-service/internal/domain"
	"freight-quotation-service/internal/platform/obs"
)

// Postgres-backed implementation of the RateSource port.
type SQLRateSource struct {
	DB *sql.DB
}

func NewSQLRateSource(db *sql.DB) *SQLRateSource {
	return &SQLRateSource{DB: db}
}

// Fetch every rate row, in insertion order, as raw rows with canonical
// snake_case headers (the cleaner's alias table accepts them).
func (s *SQLRateSource) FetchRawRows(ctx context.Context) (_ []domain.RawRow, err error) {
	defer obs.Time(ctx, "rates.sql.fetch")(&err)

	if s.DB == nil {
		return nil, errors.New("sql rate source: db is nil")
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

// UpdateRow rewrites one row by its zero-based position in fetch order.
func (s *SQLRateSource) UpdateRow(ctx context.Context, row domain.RawRow, rowIndex int) (_ bool, err error) {
	defer obs.Time(ctx, "rates.sql.update")(&err)

	if s.DB == nil {
		return false, errors.New("sql rate source: db is nil")
	}
	if rowIndex < 0 {
		return false, fmt.Errorf("update rate row: invalid row index %d", rowIndex)
	}

	q := `
	UPDATE vendor_rates
	SET from_origin = $1, pincode = $2, area = $3, receiver_name = $4,
		vehicle_no = $5, vehicle_type = $6, rate = $7, vendor_name = $8
	WHERE id = (
		SELECT id FROM vendor_rates ORDER BY id OFFSET $9 LIMIT 1
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
