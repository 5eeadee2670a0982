package repository

import (
	"context"
	"strconv"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/repository"
	pkgkafka "github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/kafka"
)

// KafkaEventPublisher implements repository.Events on a Kafka producer.
// Events are keyed by account so per-account ordering survives partitioning.
type KafkaEventPublisher struct {
	producer *pkgkafka.Producer
	topic    string
	metrics  repository.Metrics
}

// NewKafkaEventPublisher creates a Kafka-backed ledger event publisher.
func NewKafkaEventPublisher(producer *pkgkafka.Producer, topic string, metrics repository.Metrics) repository.Events {
	return &KafkaEventPublisher{producer: producer, topic: topic, metrics: metrics}
}

func (p *KafkaEventPublisher) Publish(ctx context.Context, e models.LedgerEvent) error {
	key := []byte(strconv.FormatInt(e.AccountID, 10))
	err := p.producer.Publish(ctx, p.topic, key, e)
	if p.metrics != nil {
		p.metrics.RecordEventPublished(p.topic, err == nil)
	}
	return err
}

func (p *KafkaEventPublisher) Close() error {
	return p.producer.Close()
}

// NoopEventPublisher discards events. Used when event publishing is disabled.
type NoopEventPublisher struct{}

// NewNoopEventPublisher creates a publisher that drops everything.
func NewNoopEventPublisher() repository.Events {
	return NoopEventPublisher{}
}

func (NoopEventPublisher) Publish(context.Context, models.LedgerEvent) error { return nil }

func (NoopEventPublisher) Close() error { return nil }
