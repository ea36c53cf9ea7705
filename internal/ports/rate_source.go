package ports

import (
	"context"
	"freight-quotation-service/internal/domain"
)

// Port: a boundary for retrieving raw rate rows from an upstream
// tabular source (spreadsheet, SQL table, canned demo data).
type RateSource interface {
	// Return every raw row of the rate table. Implementations should
	// honor ctx deadlines; a slow or unavailable upstream surfaces as
	// an error, which the cache absorbs.
	FetchRawRows(ctx context.Context) ([]domain.RawRow, error)

	// Write one row back to the upstream table, best-effort.
	// rowIndex is the zero-based data row position (header excluded).
	// Returns false when the source does not support updates.
	UpdateRow(ctx context.Context, row domain.RawRow, rowIndex int) (bool, error)
}
