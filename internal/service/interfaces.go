package service

import (
	"context"
	"time"

	"github.com/ml4phys/lhcdata/internal/domain"
)

// FetchRequest names a dataset and where its files should land.
type FetchRequest struct {
	DatasetID int
	DestDir   string
}

// FetchResult summarizes a completed fetch.
type FetchResult struct {
	Dataset        domain.Dataset
	ArchivePath    string
	ArchiveBytes   int64
	ExtractedFiles int
	Duration       time.Duration
}

// FetchService runs the download pipeline: resolve the identifier, enter
// the destination, download the archive and unpack it.
type FetchService interface {
	Fetch(ctx context.Context, req FetchRequest, obs FetchObserver) (*FetchResult, error)
}

// HistoryService reads the manifest of past fetches.
type HistoryService interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.FetchRecord, error)
	LastByDataset(ctx context.Context, datasetID int) (*domain.FetchRecord, error)
}
