package repositories

import (
	"context"
	"time"

	"github.com/rafabene/academia-backend/internal/domain/entities"
)

// PaymentRepository define a interface para persistência de pagamentos
type PaymentRepository interface {
	Create(ctx context.Context, payment *entities.Payment) error
	FindByID(ctx context.Context, id uint64) (*entities.Payment, error)
	Update(ctx context.Context, payment *entities.Payment) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context, filters PaymentFilters) ([]*entities.Payment, error)
}

// PaymentFilters contém filtros para listagem de pagamentos
type PaymentFilters struct {
	StudentID *uint64
	Status    *entities.PaymentRecordStatus
	From      *time.Time
	To        *time.Time
	Pagination
}

// DashboardRepository calcula os agregados do painel administrativo
type DashboardRepository interface {
	Summary(ctx context.Context, now time.Time) (*entities.DashboardSummary, error)
}
