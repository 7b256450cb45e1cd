package messaging

import (
	"context"
	"log/slog"

	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"

	sourceName = "staybook"
)

var ErrEmptyPayload = errs.New("message payload is empty")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes outbox events. The topic is chosen per message.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(cfg config.KafkaConfig, logger *slog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: requiredAcks(cfg.RequiredAcks),
		WriteTimeout: cfg.WriteTimeout,
		MaxAttempts:  1,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			logger.Warn("kafka writer error", "detail", msg, "args", args)
		}),
	}
	return &KafkaPublisher{writer: writer}
}

func NewKafkaPublisherWithWriter(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish keys the message by eventID so replays of one job land in one partition.
func (p *KafkaPublisher) Publish(ctx context.Context, topic, eventID, eventType string, payload []byte) error {
	if len(payload) == 0 {
		return ErrEmptyPayload
	}
	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(eventID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(eventID)},
			{Key: HeaderEventType, Value: []byte(eventType)},
			{Key: HeaderSource, Value: []byte(sourceName)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "publish %s to %s", eventID, topic)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func requiredAcks(n int) kafka.RequiredAcks {
	switch n {
	case 0:
		return kafka.RequireNone
	case 1:
		return kafka.RequireOne
	default:
		return kafka.RequireAll
	}
}
