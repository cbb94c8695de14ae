// Package rabbitmq publica eventos de notificação em uma fila do RabbitMQ.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	"github.com/rafabene/academia-backend/internal/domain/ports"
)

// NotificationEvent é o corpo JSON publicado na fila
type NotificationEvent struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Channel é o subconjunto de *amqp.Channel usado pelo publisher
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher implementa ports.NotificationPublisher sobre um canal AMQP
type Publisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel Channel
	queue   string
	logger  ports.Logger
}

// Dial conecta ao broker e declara a fila durável
func Dial(url, queue string, logger ports.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	p, err := NewPublisher(ch, queue, logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

// NewPublisher cria um publisher sobre um canal já aberto
func NewPublisher(ch Channel, queue string, logger ports.Logger) (*Publisher, error) {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}
	return &Publisher{channel: ch, queue: queue, logger: logger}, nil
}

// Publish envia a notificação como mensagem persistente
func (p *Publisher) Publish(ctx context.Context, n *entities.Notification) error {
	body, err := json.Marshal(NotificationEvent{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		CreatedAt: n.CreatedAt,
	})
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.logger.Error("failed to publish notification", "queue", p.queue, "notification_id", n.ID, "error", err)
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}

// Close fecha canal e conexão
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := p.channel.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
