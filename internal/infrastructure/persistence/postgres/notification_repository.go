package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/academia-backend/internal/domain/errors"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
)

// NotificationRepository implementa repositories.NotificationRepository
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository cria um novo NotificationRepository
func NewNotificationRepository(db *gorm.DB) repositories.NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *entities.Notification) error {
	model := &NotificationModel{
		UserID: n.UserID,
		Type:   string(n.Type),
		Title:  n.Title,
		Read:   n.Read,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err, domainerrors.ErrConflict)
	}

	n.ID = model.ID
	n.CreatedAt = model.CreatedAt
	n.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id uint64) (*entities.Notification, error) {
	var model NotificationModel

	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toNotificationEntity(&model), nil
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, id uint64) error {
	result := getDB(ctx, r.db).Model(&NotificationModel{}).Where("id = ?", id).Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id uint64) error {
	return getDB(ctx, r.db).Delete(&NotificationModel{}, id).Error
}

func (r *NotificationRepository) List(ctx context.Context, filters repositories.NotificationFilters) ([]*entities.Notification, error) {
	var models []*NotificationModel

	query := getDB(ctx, r.db).Model(&NotificationModel{})
	if filters.UserID != 0 {
		query = query.Where("user_id = ?", filters.UserID)
	}
	if filters.UnreadOnly {
		query = query.Where(`"read" = ?`, false)
	}

	limit, offset := filters.LimitOffset()
	if err := paginate(query.Order("created_at DESC, id DESC"), limit, offset).Find(&models).Error; err != nil {
		return nil, err
	}

	notifications := make([]*entities.Notification, 0, len(models))
	for _, model := range models {
		notifications = append(notifications, toNotificationEntity(model))
	}
	return notifications, nil
}

// CountUnread usa o índice (user_id, read)
func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).
		Model(&NotificationModel{}).
		Where(`user_id = ? AND "read" = ?`, userID, false).
		Count(&count).Error
	return count, err
}

func toNotificationEntity(m *NotificationModel) *entities.Notification {
	return &entities.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      entities.NotificationType(m.Type),
		Title:     m.Title,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
