package handler

import (
	"context"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-network/lending/internal/errs"
	"github.com/Astemirdum/book-network/pkg/kafka"
)

type recordEvent func(ctx context.Context, event kafka.EventLending) error

type Consumer struct {
	recordEvent recordEvent
	log         *zap.Logger
	ready       chan bool
}

func NewConsumer(recordEvent recordEvent, log *zap.Logger) *Consumer {
	return &Consumer{
		recordEvent: recordEvent,
		log:         log.Named("consumer"),
		ready:       make(chan bool),
	}
}

// Ready is closed once the first session is set up.
func (consumer *Consumer) Ready() <-chan bool {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-consumer.ready:
	default:
		close(consumer.ready)
	}
	return nil
}

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
			var event kafka.EventLending
			if err := jsoniter.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("unmarshal event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.recordEvent(session.Context(), event); err != nil {
				if errors.Is(err, errs.ErrInvalidInput) {
					consumer.log.Warn("skip invalid event", zap.String("eventID", event.EventID), zap.Error(err))
					session.MarkMessage(message, "")
					continue
				}
				// left unmarked so the event is redelivered after a rebalance
				consumer.log.Error("consumer.recordEvent", zap.String("eventID", event.EventID), zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
