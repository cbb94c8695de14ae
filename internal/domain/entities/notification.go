package entities

import (
	"errors"
	"time"
)

// NotificationType classifica a notificação
type NotificationType string

const (
	NotificationPayment NotificationType = "payment"
	NotificationSystem  NotificationType = "system"
	NotificationAlert   NotificationType = "alert"
)

// IsValid verifica se o tipo é um dos valores do enum notification_type
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationPayment, NotificationSystem, NotificationAlert:
		return true
	}
	return false
}

// Notification é uma mensagem destinada a um usuário
type Notification struct {
	ID        uint64
	UserID    uint64
	Type      NotificationType
	Title     string
	Read      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MarkAsRead marca a notificação como lida
func (n *Notification) MarkAsRead() {
	n.Read = true
}

// Validate valida regras de negócio da entidade Notification
func (n *Notification) Validate() error {
	if n.UserID == 0 {
		return errors.New("user_id is required")
	}
	if !n.Type.IsValid() {
		return errors.New("invalid notification type")
	}
	if n.Title == "" || len(n.Title) > 255 {
		return errors.New("title must have between 1 and 255 characters")
	}
	return nil
}
