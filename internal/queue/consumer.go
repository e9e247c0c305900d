package queue

import (
	"context"       // context stops the consume loop
	"encoding/json" // json decodes event bodies
	"errors"        // errors matches cancellation
	"fmt"           // fmt formats audit lines and wraps broker errors
	"os"            // os opens the audit log file
	"path/filepath" // filepath locates the audit directory
	"time"          // time drives reconnect backoff

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// AuditConsumer drains the reservation event queue and appends one line
// per event to an audit file.
type AuditConsumer struct {
	URL   string
	Queue string
	Path  string
	Log   logrus.FieldLogger
}

// Run connects to RabbitMQ, declares the queue (durable) and consumes until
// ctx is cancelled.  Broker failures are retried with exponential backoff
// capped at 30s; a message that cannot be handled is rejected without
// requeue so it cannot stall the queue.
func (c *AuditConsumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		conn, err := amqp.Dial(c.URL)
		if err != nil {
			c.Log.WithError(err).Warnf("audit-consumer: failed to dial broker; retrying in %s", backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		err = c.consumeLoop(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.Log.WithError(err).Warn("audit-consumer: consume loop ended; reconnecting")
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *AuditConsumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		c.Log.WithError(err).Warn("audit-consumer: set QoS failed")
	}
	if _, err := declareQueue(ch, c.Queue); err != nil {
		return err
	}
	msgs, err := ch.Consume(c.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := c.handleMessage(d.Body); err != nil {
				c.Log.WithError(err).Error("audit-consumer: handle message failed")
				_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *AuditConsumer) handleMessage(body []byte) error {
	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(c.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open audit file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatAuditLine(ev)); err != nil {
		return fmt.Errorf("write audit file: %w", err)
	}
	return nil
}

// formatAuditLine renders ev as a single human-readable line.
func formatAuditLine(ev Event) string {
	line := fmt.Sprintf("[%s] %s | reservation_id=%s | guest=%q | room=%d | total=%.2f | paid=%.2f | balance=%.2f | payment_status=%q | status=%s",
		ev.OccurredAt.Format(time.RFC3339), ev.Type, ev.ReservationID, ev.GuestName, ev.RoomNumber,
		ev.TotalCost, ev.TotalPaid, ev.Balance, ev.PaymentStatus, ev.Status)
	if ev.PaymentID != "" {
		line += fmt.Sprintf(" | payment_id=%s | amount=%.2f", ev.PaymentID, ev.Amount)
	} else if ev.Amount != 0 {
		line += fmt.Sprintf(" | amount=%.2f", ev.Amount)
	}
	if ev.Note != "" {
		line += fmt.Sprintf(" | note=%q", ev.Note)
	}
	return line + "\n"
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
