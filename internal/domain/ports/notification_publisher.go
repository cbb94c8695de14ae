package ports

import (
	"context"

	"github.com/rafabene/academia-backend/internal/domain/entities"
)

// NotificationPublisher entrega notificações recém-criadas para fora do banco
// (websocket, fila de mensagens). Falhas não devem desfazer a notificação persistida.
type NotificationPublisher interface {
	Publish(ctx context.Context, notification *entities.Notification) error
}
