package queue

import (
	"context"       // context bounds each publish
	"encoding/json" // json encodes events for the wire
	"fmt"           // fmt wraps broker errors
	"time"          // time stamps outgoing messages

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Publisher delivers events to a sink.  Publishing is best effort: callers
// log failures and carry on, so a sink outage never blocks the desk.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// LogPublisher writes each event as a structured log entry.  It is the
// default sink when the broker is disabled.
type LogPublisher struct {
	log logrus.FieldLogger
}

// NewLogPublisher returns a publisher logging through logger.
func NewLogPublisher(logger logrus.FieldLogger) *LogPublisher {
	return &LogPublisher{log: logger}
}

func (p *LogPublisher) Publish(_ context.Context, ev Event) error {
	p.log.WithFields(logrus.Fields{
		"event":          ev.Type,
		"event_id":       ev.ID,
		"reservation_id": ev.ReservationID,
		"payment_id":     ev.PaymentID,
		"amount":         ev.Amount,
		"balance":        ev.Balance,
		"payment_status": ev.PaymentStatus,
		"status":         ev.Status,
	}).Info("reservation event")
	return nil
}

// AMQPPublisher sends events as persistent JSON messages to a durable
// queue on the default exchange.  The connection is opened once and
// reopened on the next publish after a failure.
type AMQPPublisher struct {
	url   string
	queue string
	log   logrus.FieldLogger

	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQPPublisher returns a publisher for queue on the broker at url.
// Nothing is dialled until the first Publish.
func NewAMQPPublisher(url, queue string, logger logrus.FieldLogger) *AMQPPublisher {
	return &AMQPPublisher{url: url, queue: queue, log: logger}
}

func (p *AMQPPublisher) Publish(ctx context.Context, ev Event) error {
	if err := p.ensureChannel(); err != nil {
		p.log.WithError(err).Warn("rabbitmq: channel unavailable")
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		p.log.WithError(err).Warn("rabbitmq: marshal event failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		MessageId:    ev.ID,
		Type:         string(ev.Type),
		Timestamp:    ev.OccurredAt,
		Body:         body,
	}
	if pub.Timestamp.IsZero() {
		pub.Timestamp = time.Now()
	}

	if err := p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	); err != nil {
		p.log.WithError(err).Warn("rabbitmq: publish failed")
		p.reset()
		return err
	}
	return nil
}

// Close releases the channel and connection.
func (p *AMQPPublisher) Close() error {
	var err error
	if p.ch != nil {
		err = p.ch.Close()
	}
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	p.ch, p.conn = nil, nil
	return err
}

func (p *AMQPPublisher) ensureChannel() error {
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}
	p.reset()
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("channel open: %w", err)
	}
	// Durable so events survive broker restarts.
	if _, err := declareQueue(ch, p.queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}
	p.conn, p.ch = conn, ch
	return nil
}

func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.ch, p.conn = nil, nil
}

func declareQueue(ch *amqp.Channel, name string) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		name,  // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return q, fmt.Errorf("queue declare: %w", err)
	}
	return q, nil
}
