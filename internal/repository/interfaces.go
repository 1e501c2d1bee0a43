package repository

import (
	"context"
	"errors"

	"github.com/ml4phys/lhcdata/internal/domain"
)

// ErrNotFound indicates the requested row does not exist.
var ErrNotFound = errors.New("not found")

// FetchLogRepo stores the manifest of completed fetches.
type FetchLogRepo interface {
	Record(ctx context.Context, rec *domain.FetchRecord) error
	ListRecent(ctx context.Context, limit int) ([]*domain.FetchRecord, error)
	LastByDataset(ctx context.Context, datasetID int) (*domain.FetchRecord, error)
}
