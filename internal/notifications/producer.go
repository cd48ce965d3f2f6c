package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"seatwise/pkg/logger"
)

// Publisher pushes seating events to the message bus. A nil-safe noop
// implementation backs deployments that run without Kafka.
type Publisher interface {
	PublishSeatingEvent(ctx context.Context, event SeatingEvent) error
	Close() error
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *logger.Logger
}

// NewKafkaPublisher connects a synchronous producer. Messages are
// keyed by plan id so per-plan ordering is preserved across partitions.
func NewKafkaPublisher(brokers []string, topic string) (Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1
	config.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		log:      logger.GetDefault(),
	}, nil
}

func (p *kafkaPublisher) PublishSeatingEvent(ctx context.Context, event SeatingEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal seating event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.PlanID.String()),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.WithError(err).Error("Failed to publish seating event")
		return fmt.Errorf("failed to publish seating event: %w", err)
	}

	p.log.WithFields(map[string]interface{}{
		"event_type": string(event.Type),
		"plan_id":    event.PlanID.String(),
		"partition":  partition,
		"offset":     offset,
	}).Debug("Seating event published")
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event, for
// environments without a broker.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishSeatingEvent(ctx context.Context, event SeatingEvent) error {
	return nil
}

func (noopPublisher) Close() error { return nil }
