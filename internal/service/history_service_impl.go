package service

import (
	"context"

	"github.com/ml4phys/lhcdata/internal/domain"
	"github.com/ml4phys/lhcdata/internal/repository"
)

const defaultHistoryLimit = 20

type historyService struct {
	records repository.FetchLogRepo
}

func NewHistoryService(records repository.FetchLogRepo) HistoryService {
	return &historyService{records: records}
}

func (s *historyService) ListRecent(ctx context.Context, limit int) ([]*domain.FetchRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.records.ListRecent(ctx, limit)
}

func (s *historyService) LastByDataset(ctx context.Context, datasetID int) (*domain.FetchRecord, error) {
	return s.records.LastByDataset(ctx, datasetID)
}
