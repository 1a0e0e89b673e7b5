package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/njprem/fitcity-offers/internal/domain"
	"github.com/njprem/fitcity-offers/internal/repository/ports"
)

// ClickProducer publishes outbound clicks keyed by provider id, so clicks for
// one partner stay ordered on one partition.
type ClickProducer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *zap.Logger
}

func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	return sarama.NewSyncProducer(brokers, config)
}

func NewClickProducer(producer sarama.SyncProducer, topic string, logger *zap.Logger) *ClickProducer {
	return &ClickProducer{producer: producer, topic: topic, logger: logger}
}

func (p *ClickProducer) PublishClick(ctx context.Context, click domain.OutboundClick) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(click)
	if err != nil {
		return fmt.Errorf("marshal click: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(click.ProviderID),
		Value: sarama.ByteEncoder(data),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send click to kafka: %w", err)
	}
	p.logger.Debug("click published",
		zap.String("provider_id", click.ProviderID),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

func (p *ClickProducer) Close() error {
	return p.producer.Close()
}

var _ ports.ClickPublisher = (*ClickProducer)(nil)
