package services

import (
	"context"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	"github.com/rafabene/academia-backend/internal/domain/errors"
	"github.com/rafabene/academia-backend/internal/domain/ports"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
)

// NotificationService contém a lógica de negócio para notificações
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	publisher        ports.NotificationPublisher
	logger           ports.Logger
}

// NewNotificationService cria um novo NotificationService. publisher pode ser nil.
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	publisher ports.NotificationPublisher,
	logger ports.Logger,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

// CreateNotificationInput representa uma nova notificação
type CreateNotificationInput struct {
	UserID uint64
	Type   entities.NotificationType
	Title  string
}

// CreateNotification persiste a notificação e a publica para o destinatário
func (s *NotificationService) CreateNotification(ctx context.Context, input CreateNotificationInput) (*entities.Notification, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	kind := input.Type
	if kind == "" {
		kind = entities.NotificationSystem
	}
	n := &entities.Notification{UserID: input.UserID, Type: kind, Title: input.Title}
	if err := n.Validate(); err != nil {
		return nil, errors.Validation(err)
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, err
	}

	s.Publish(ctx, n)
	return n, nil
}

// Publish entrega a notificação já persistida. Falhas só são registradas em log.
func (s *NotificationService) Publish(ctx context.Context, n *entities.Notification) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, n); err != nil {
		s.logger.Warn("failed to publish notification", "notification_id", n.ID, "error", err)
	}
}

// ListForUser lista as notificações do usuário, mais recentes primeiro
func (s *NotificationService) ListForUser(ctx context.Context, userID uint64, unreadOnly bool, page repositories.Pagination) ([]*entities.Notification, error) {
	return s.notificationRepo.List(ctx, repositories.NotificationFilters{
		UserID:     userID,
		UnreadOnly: unreadOnly,
		Pagination: page,
	})
}

// CountUnread conta as notificações não lidas do usuário
func (s *NotificationService) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

// MarkAsRead marca a notificação como lida. Usuários não-admin só alteram as próprias.
func (s *NotificationService) MarkAsRead(ctx context.Context, id uint64, requester *entities.User) (*entities.Notification, error) {
	n, err := s.owned(ctx, id, requester)
	if err != nil {
		return nil, err
	}
	if n.Read {
		return n, nil
	}
	if err := s.notificationRepo.MarkAsRead(ctx, id); err != nil {
		return nil, err
	}
	n.MarkAsRead()
	return n, nil
}

// DeleteNotification remove a notificação. Usuários não-admin só removem as próprias.
func (s *NotificationService) DeleteNotification(ctx context.Context, id uint64, requester *entities.User) error {
	if _, err := s.owned(ctx, id, requester); err != nil {
		return err
	}
	return s.notificationRepo.Delete(ctx, id)
}

// owned devolve not found também para notificações de outros usuários
func (s *NotificationService) owned(ctx context.Context, id uint64, requester *entities.User) (*entities.Notification, error) {
	n, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil || (!requester.IsAdmin() && n.UserID != requester.ID) {
		return nil, errors.ErrNotificationNotFound
	}
	return n, nil
}
