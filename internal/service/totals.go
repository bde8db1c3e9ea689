package service

import (
	"context"

	"github.com/platformctl/paymerge/internal/domain/models"
	"github.com/platformctl/paymerge/internal/storage"
)

// TotalsService exposes the consolidated headline sums to the API layer,
// decoupling HTTP handlers from data access.
type TotalsService interface {
	GetTotals(ctx context.Context, period, country string) (*models.Totals, error)
}

type totalsService struct {
	repo storage.ReportRepository
}

func NewTotalsService(repo storage.ReportRepository) TotalsService {
	return &totalsService{repo: repo}
}

func (s *totalsService) GetTotals(ctx context.Context, period, country string) (*models.Totals, error) {
	return s.repo.GetTotals(period, country)
}
