package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ml4phys/lhcdata/internal/domain"
	"github.com/ml4phys/lhcdata/internal/extract"
	"github.com/ml4phys/lhcdata/internal/fetch"
	"github.com/ml4phys/lhcdata/internal/repository"
)

type fetchService struct {
	fetcher  *fetch.Fetcher
	history  repository.FetchLogRepo
	baseURL  string
	observer UseCaseObserver
}

// NewFetchService wires the download pipeline. history may be nil when no
// manifest should be kept; an empty baseURL falls back to the published
// location.
func NewFetchService(fetcher *fetch.Fetcher, history repository.FetchLogRepo, baseURL string, observers ...UseCaseObserver) FetchService {
	return &fetchService{
		fetcher:  fetcher,
		history:  history,
		baseURL:  baseURL,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *fetchService) Fetch(ctx context.Context, req FetchRequest, obs FetchObserver) (*FetchResult, error) {
	if obs == nil {
		obs = NoopFetchObserver{}
	}
	start := time.Now()

	ds, err := domain.ResolveDataset(req.DatasetID)
	if err != nil {
		return nil, s.fail(ctx, start, req, err)
	}

	// The destination is entered before any network traffic so that
	// filesystem failures surface first.
	if err := os.Chdir(req.DestDir); err != nil {
		return nil, s.fail(ctx, start, req, fmt.Errorf("changing into destination %s: %w", req.DestDir, err))
	}
	destAbs, err := os.Getwd()
	if err != nil {
		return nil, s.fail(ctx, start, req, fmt.Errorf("resolving destination: %w", err))
	}

	url := ds.URL(s.baseURL)
	obs.OnResolve(ds, url)

	archiveBytes, err := s.fetcher.Download(ctx, url, ds.Archive, obs.OnDownloadProgress)
	if err != nil {
		return nil, s.fail(ctx, start, req, err)
	}
	obs.OnDownloadComplete(archiveBytes)

	files, err := extract.Unpack(ctx, ds.Archive, destAbs, obs.OnExtractProgress)
	if err != nil {
		return nil, s.fail(ctx, start, req, err)
	}

	res := &FetchResult{
		Dataset:        ds,
		ArchivePath:    filepath.Join(destAbs, ds.Archive),
		ArchiveBytes:   archiveBytes,
		ExtractedFiles: files,
		Duration:       time.Since(start),
	}

	if s.history != nil {
		rec := &domain.FetchRecord{
			ID:           uuid.New().String(),
			DatasetID:    ds.ID,
			Archive:      ds.Archive,
			Description:  ds.Description,
			DestDir:      destAbs,
			ArchiveBytes: archiveBytes,
			FileCount:    files,
			Duration:     res.Duration,
			FetchedAt:    time.Now().UTC(),
		}
		if err := s.history.Record(ctx, rec); err != nil {
			return nil, s.fail(ctx, start, req, fmt.Errorf("recording fetch: %w", err))
		}
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "fetch_dataset",
		Duration: time.Since(start),
		Success:  true,
		Fields: map[string]any{
			"dataset_id": ds.ID,
			"archive":    ds.Archive,
			"bytes":      archiveBytes,
			"files":      files,
		},
	})
	return res, nil
}

func (s *fetchService) fail(ctx context.Context, start time.Time, req FetchRequest, err error) error {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "fetch_dataset",
		Duration: time.Since(start),
		Success:  false,
		Err:      err,
		Fields:   map[string]any{"dataset_id": req.DatasetID},
	})
	return err
}
