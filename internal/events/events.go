// Package events публикует доменные события об изменении платежей и категорий.
// Ошибки публикации не влияют на результат запроса: они только логируются.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/payments-tracker/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/payments-tracker/internal/lib/sl"
)

// Ключи маршрутизации событий.
const (
	PaymentCreated  = "pagamento.criado"
	PaymentUpdated  = "pagamento.atualizado"
	PaymentRemoved  = "pagamento.removido"
	CategoryCreated = "categoria.criada"
	CategoryUpdated = "categoria.atualizada"
	CategoryRemoved = "categoria.removida"
)

// Event - тело сообщения.
type Event struct {
	ID         string    `json:"event_id"`
	Type       string    `json:"type"`
	TenantID   int64     `json:"cliente_id"`
	EntityID   int64     `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data,omitempty"`
}

// Publisher отправляет событие. Реализации не возвращают ошибку наружу.
type Publisher interface {
	Publish(ctx context.Context, ev Event)
}

// Noop не публикует ничего. Используется, когда брокер не настроен.
type Noop struct{}

// Publish ничего не делает.
func (Noop) Publish(context.Context, Event) {}

// AMQPPublisher публикует события в topic exchange RabbitMQ.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       rabbitmq.Channel
	closer   func() error
	exchange string
	log      *slog.Logger
}

// NewAMQP подключается к брокеру и объявляет exchange.
func NewAMQP(log *slog.Logger, url, exchange string, retries int, delay time.Duration) (*AMQPPublisher, error) {
	const op = "events.NewAMQP"
	conn, err := rabbitmq.Connect(url, retries, delay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ch, err := rabbitmq.SetupExchange(conn, exchange)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &AMQPPublisher{
		conn:     conn,
		ch:       ch,
		closer:   ch.Close,
		exchange: exchange,
		log:      log,
	}, nil
}

// Publish отправляет событие, ключ маршрутизации равен ev.Type.
func (p *AMQPPublisher) Publish(ctx context.Context, ev Event) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	if ctx.Err() != nil {
		return
	}
	p.mu.Lock()
	err := rabbitmq.PublishMessage(p.ch, p.exchange, ev.Type, ev)
	p.mu.Unlock()
	if err != nil {
		p.log.Warn("failed to publish event",
			slog.String("type", ev.Type),
			slog.Int64("id", ev.EntityID),
			sl.Err(err),
		)
		return
	}
	p.log.Debug("event published", slog.String("type", ev.Type), slog.Int64("id", ev.EntityID))
}

// Close закрывает канал и соединение.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closer != nil {
		if err := p.closer(); err != nil {
			return err
		}
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
