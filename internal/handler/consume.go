package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/edenbay/bookstore-service/internal/model"
	"go.uber.org/zap"
)

type adjustStock func(ctx context.Context, id string, delta int) error

type Consumer struct {
	adjustStockHandler adjustStock
	log                *zap.Logger
	ready              chan bool
}

func NewConsumer(adjustStock adjustStock, log *zap.Logger) *Consumer {
	return &Consumer{
		adjustStockHandler: adjustStock,
		log:                log.Named("consumer"),
		ready:              make(chan bool),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	// Mark the consumer as ready
	close(consumer.ready)
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event model.StockEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.adjustStockHandler(context.Background(), event.BookId, event.Delta); err != nil {
				consumer.log.Error("consumer.adjustStockHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
