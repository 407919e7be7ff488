package mailer

import (
	"context"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrDeliveriesClosed is returned by Consume when the broker closes the
// delivery channel while the consumer is still supposed to run.
var ErrDeliveriesClosed = errors.New("amqp deliveries channel closed")

// Consume handles deliveries until ctx is cancelled or the channel closes.
// Permanent failures are dropped. Other failures are requeued after a delay
// that doubles with each consecutive failure, up to RetryMax.
func (m *EventMailer) Consume(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	failures := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return ErrDeliveriesClosed
			}
			err := m.Handle(ctx, msg.Type, msg.Body)
			switch {
			case err == nil:
				failures = 0
				_ = msg.Ack(false)
			case errors.Is(err, ErrPermanent):
				m.Logger.WithError(err).Warn("dropping message")
				_ = msg.Nack(false, false)
			default:
				failures++
				wait := m.retryDelay(failures)
				m.Logger.WithError(err).WithField("retry_in", wait).Warn("requeueing message")
				t := time.NewTimer(wait)
				select {
				case <-ctx.Done():
					t.Stop()
				case <-t.C:
				}
				_ = msg.Nack(false, true)
			}
		}
	}
}

func (m *EventMailer) retryDelay(failures int) time.Duration {
	d := m.RetryBase
	for i := 1; i < failures && d < m.RetryMax; i++ {
		d *= 2
	}
	if d > m.RetryMax {
		d = m.RetryMax
	}
	return d
}
