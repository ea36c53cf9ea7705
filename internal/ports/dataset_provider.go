package ports

import (
	"context"
	"freight-quotation-service/internal/domain"
)

// Port: supplies the current cleaned dataset snapshot.
// Callers receive a read-only slice they must not mutate.
type DatasetProvider interface {
	Current(ctx context.Context) []domain.RouteRecord
}
