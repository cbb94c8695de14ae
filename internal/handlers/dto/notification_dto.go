package dto

import (
	"time"

	"github.com/rafabene/academia-backend/internal/domain/entities"
)

// CreateNotificationRequest envia uma notificação para um usuário
type CreateNotificationRequest struct {
	UserID uint64 `json:"user_id" binding:"required,gt=0"`
	Type   string `json:"type" binding:"omitempty,oneof=payment system alert"`
	Title  string `json:"title" binding:"required,max=255"`
}

// NotificationListQuery são os filtros da caixa de notificações
type NotificationListQuery struct {
	PageQuery
	Unread bool `form:"unread"`
}

// NotificationResponse representa uma notificação
type NotificationResponse struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NotificationListResponse inclui o total de não lidas do usuário
type NotificationListResponse struct {
	ListResponse[NotificationResponse]
	Unread int64 `json:"unread"`
}

// ToNotificationResponse converte uma entidade Notification
func ToNotificationResponse(n *entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// ToNotificationResponses converte uma lista de notificações
func ToNotificationResponses(items []*entities.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(items))
	for i, n := range items {
		responses[i] = ToNotificationResponse(n)
	}
	return responses
}
