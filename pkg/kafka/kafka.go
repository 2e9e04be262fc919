package kafka

import (
	"context"
	"errors"

	"github.com/IBM/sarama"
)

const (
	BookEventsTopic  = "book-events"
	StockEventsTopic = "stock-events"

	BookstoreConsumerGroup = "bookstore"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Return.Errors = true

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume loops the consumer group session for topic until the group is closed.
func Consume(cg sarama.ConsumerGroup, h sarama.ConsumerGroupHandler, topic string) {
	ctx := context.Background()
	for {
		if err := cg.Consume(ctx, []string{topic}, h); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return
			}
		}
	}
}
