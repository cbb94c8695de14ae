package services

import (
	"context"
	"time"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
)

// DashboardService expõe os agregados do painel administrativo
type DashboardService struct {
	repo repositories.DashboardRepository
	now  func() time.Time
}

// NewDashboardService cria um novo DashboardService
func NewDashboardService(repo repositories.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo, now: time.Now}
}

// Summary calcula os agregados no instante atual
func (s *DashboardService) Summary(ctx context.Context) (*entities.DashboardSummary, error) {
	return s.repo.Summary(ctx, s.now().UTC())
}
