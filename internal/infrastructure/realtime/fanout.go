package realtime

import (
	"context"
	"errors"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	"github.com/rafabene/academia-backend/internal/domain/ports"
)

// Fanout repassa cada notificação para vários publishers. Todos são chamados
// mesmo quando algum falha; os erros são agregados.
type Fanout []ports.NotificationPublisher

func (f Fanout) Publish(ctx context.Context, n *entities.Notification) error {
	var errs []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
