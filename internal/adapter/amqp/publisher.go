// Package amqp publishes committed escrow events to a RabbitMQ topic
// exchange. The routing key is the event kind, e.g. "campaign.refunded".
package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"crowdfund/internal/core/domain"
)

const dialTimeout = 10 * time.Second

// Publisher holds the RabbitMQ connection and channel used for publishing.
type Publisher struct {
	exchange string
	logger   *slog.Logger

	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// NewPublisher dials rawURL and declares exchange as a durable topic.
func NewPublisher(rawURL, exchange string, logger *slog.Logger) (*Publisher, error) {
	cleanURL, err := sanitizeURL(rawURL)
	if err != nil {
		return nil, err
	}
	conn, err := amqp091.DialConfig(cleanURL, amqp091.Config{Dial: amqp091.DefaultDial(dialTimeout)})
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	p := &Publisher{exchange: exchange, logger: logger, conn: conn}
	if err = p.reopen(); err != nil {
		conn.Close()
		return nil, err
	}
	return p, nil
}

// reopen replaces the channel and re-declares the exchange. Callers hold mu
// or own p exclusively.
func (p *Publisher) reopen() error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	if err = ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		return fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}
	if p.channel != nil {
		p.channel.Close()
	}
	p.channel = ch
	return nil
}

// Publish sends ev as JSON. A failed publish reopens the channel and is
// retried once.
func (p *Publisher) Publish(ctx context.Context, ev domain.Event) error {
	msg, err := message(ev)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx, p.exchange, string(ev.Kind), false, false, msg)
	if err == nil {
		return nil
	}
	p.logger.Warn("amqp publish failed, reopening channel",
		slog.String("exchange", p.exchange),
		slog.String("routing_key", string(ev.Kind)),
		slog.Any("error", err))
	if rerr := p.reopen(); rerr != nil {
		return errors.Join(err, rerr)
	}
	return p.channel.PublishWithContext(ctx, p.exchange, string(ev.Kind), false, false, msg)
}

// Close closes the channel and the connection.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

func message(ev domain.Event) (amqp091.Publishing, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return amqp091.Publishing{}, fmt.Errorf("encode event: %w", err)
	}
	return amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    ev.ID,
		Timestamp:    ev.At,
		Type:         string(ev.Kind),
		Body:         body,
	}, nil
}

func sanitizeURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", fmt.Errorf("parse amqp url: %w", err)
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}

// Fallback is used when the broker is not configured or unreachable at
// startup. It drops events after logging them at debug level.
type Fallback struct {
	Logger *slog.Logger
}

// Publish implements port.EventPublisher and never fails.
func (f Fallback) Publish(_ context.Context, ev domain.Event) error {
	if f.Logger != nil {
		f.Logger.Debug("event publish skipped",
			slog.String("kind", string(ev.Kind)),
			slog.String("campaign_id", ev.CampaignID.String()))
	}
	return nil
}
