package repository

import (
	"context"
	"fmt"

	"Screener/internal/domain/models"
	"Screener/internal/domain/repository"
	pkgkafka "Screener/pkg/kafka"
)

// KafkaResultPublisher publishes completed screening results to a topic,
// keyed by provider:config so results for one configuration land on one
// partition.
type KafkaResultPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaResultPublisher creates a Kafka-backed result publisher.
func NewKafkaResultPublisher(producer *pkgkafka.Producer, topic string) repository.Publisher {
	return &KafkaResultPublisher{producer: producer, topic: topic}
}

func (p *KafkaResultPublisher) PublishResult(ctx context.Context, res *models.ScreeningResult) error {
	key := []byte(fmt.Sprintf("%s:%s", res.Provider, res.ConfigName))
	if err := p.producer.Publish(ctx, p.topic, key, res); err != nil {
		return fmt.Errorf("publish screening result: %w", err)
	}
	return nil
}

func (p *KafkaResultPublisher) Close() error {
	return p.producer.Close()
}
