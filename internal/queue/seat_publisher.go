package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Channel is the part of *amqp.Channel the publisher needs.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// ChannelOpener opens a fresh channel per publish; *amqp.Channel is not safe
// for concurrent publishers.
type ChannelOpener func() (Channel, error)

type SeatReservationPublisher struct {
	open  ChannelOpener
	queue string
	log   *zap.Logger
	now   func() time.Time
}

func NewSeatReservationPublisher(open ChannelOpener, queueName string, log *zap.Logger) *SeatReservationPublisher {
	return &SeatReservationPublisher{
		open:  open,
		queue: queueName,
		log:   log.With(zap.String("publisher", "seat_reservation")),
		now:   time.Now,
	}
}

// ConnectionOpener adapts a live AMQP connection.
func ConnectionOpener(conn *amqp.Connection) ChannelOpener {
	return func() (Channel, error) {
		ch, err := conn.Channel()
		if err != nil {
			return nil, err
		}
		return ch, nil
	}
}

// ReserveSeat publishes a persistent SeatReservationRequested message to a
// durable queue on the default exchange.
func (p *SeatReservationPublisher) ReserveSeat(ctx context.Context, accountID int64, totalSeatsToReserve int64) error {
	ch, err := p.open()
	if err != nil {
		return fmt.Errorf("open amqp channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return fmt.Errorf("declare queue %s: %w", p.queue, err)
	}

	body, err := json.Marshal(newSeatReservationRequested(accountID, totalSeatsToReserve, p.now()))
	if err != nil {
		return fmt.Errorf("marshal seat reservation: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.log.Error("Failed to publish seat reservation",
			zap.Error(err),
			zap.Int64("account_id", accountID),
			zap.Int64("seats", totalSeatsToReserve),
		)
		return fmt.Errorf("publish seat reservation for account %d: %w", accountID, err)
	}

	p.log.Info("Seat reservation published",
		zap.String("queue", p.queue),
		zap.Int64("account_id", accountID),
		zap.Int64("seats", totalSeatsToReserve),
	)
	return nil
}
