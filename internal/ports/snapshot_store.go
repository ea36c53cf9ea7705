package ports

import (
	"context"
	"freight-quotation-service/internal/domain"
)

// Optional port: persists the latest cleaned dataset so a cold cache can
// warm-start when the upstream is unavailable. All calls are best-effort.
type SnapshotStore interface {
	Save(ctx context.Context, records []domain.RouteRecord) error
	Load(ctx context.Context) ([]domain.RouteRecord, error)
}
