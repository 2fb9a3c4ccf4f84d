package notify

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"time"

	"canvas-store/internal/domain"
	"github.com/segmentio/kafka-go"
)

// KafkaDispatcher publishes order confirmations to a Kafka topic consumed
// by the mailer.
type KafkaDispatcher struct {
	writer *kafka.Writer
	logger *log.Logger
}

// NewKafkaDispatcher builds a dispatcher writing to the given brokers/topic.
func NewKafkaDispatcher(brokers []string, topic string, logger *log.Logger) *KafkaDispatcher {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaDispatcher{writer: writer, logger: logger}
}

// OrderConfirmed publishes the rendered confirmation keyed by order id.
func (d *KafkaDispatcher) OrderConfirmed(ctx context.Context, order *domain.Order, user *domain.User) error {
	payload, err := json.Marshal(NewConfirmation(order, user))
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(order.ID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order.confirmed")},
		},
	}
	if err := d.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}
	d.logger.Printf("notify: confirmation published order_id=%s email=%s", order.ID, user.Email)
	return nil
}

// Close flushes and closes the underlying writer.
func (d *KafkaDispatcher) Close() error {
	return d.writer.Close()
}
