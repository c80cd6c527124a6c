package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"sync"
	"time"

	"github.com/DanRulev/finquest.git/internal/config"
	"github.com/DanRulev/finquest.git/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

type ChannelI interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends lesson completion events to a durable RabbitMQ queue.
type Publisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel ChannelI
	queue   string
}

func NewRabbitMQPublisher(cfg config.EventsConfig) (*Publisher, error) {
	uri := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(cfg.RabbitMQ.User, cfg.RabbitMQ.Password),
		Host:   net.JoinHostPort(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port),
		Path:   "/",
	}

	conn, err := amqp.Dial(uri.String())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	pub, err := NewPublisher(channel, cfg.Queue)
	if err != nil {
		conn.Close()
		return nil, err
	}
	pub.conn = conn

	return pub, nil
}

// NewPublisher declares the queue on an already open channel.
func NewPublisher(channel ChannelI, queue string) (*Publisher, error) {
	_, err := channel.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	return &Publisher{
		channel: channel,
		queue:   queue,
	}, nil
}

func (p *Publisher) PublishLessonCompleted(ctx context.Context, event models.LessonCompletedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(
		ctx,
		"",      // exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         "lesson.completed",
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish lesson completed event: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NopPublisher drops every event. Used when events are disabled.
type NopPublisher struct{}

func (NopPublisher) PublishLessonCompleted(context.Context, models.LessonCompletedEvent) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
