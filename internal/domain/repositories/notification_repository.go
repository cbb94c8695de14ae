package repositories

import (
	"context"

	"github.com/rafabene/academia-backend/internal/domain/entities"
)

// NotificationRepository define a interface para persistência de notificações
type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) error
	FindByID(ctx context.Context, id uint64) (*entities.Notification, error)
	MarkAsRead(ctx context.Context, id uint64) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context, filters NotificationFilters) ([]*entities.Notification, error)
	CountUnread(ctx context.Context, userID uint64) (int64, error)
}

// NotificationFilters contém filtros para listagem de notificações
type NotificationFilters struct {
	UserID     uint64
	UnreadOnly bool
	Pagination
}
