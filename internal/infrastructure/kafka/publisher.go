package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

// PublishOrderEvent keys messages by order id so one order's events stay ordered
// within a partition.
func (k *KafkaPublisher) PublishOrderEvent(ctx context.Context, order *domain.Order, event *domain.OrderEvent) error {
	msg, err := json.Marshal(NewOrderEvent(order, event))
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}

// LogPublisher stands in for Kafka when it is disabled.
type LogPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) PublishOrderEvent(_ context.Context, order *domain.Order, event *domain.OrderEvent) error {
	p.log.Debug("order event",
		zap.String("order_id", order.ID),
		zap.String("kind", string(event.Kind)),
		zap.String("from", event.From),
		zap.String("to", event.To),
	)
	return nil
}
