package queue

import (
	"context"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	cb "github.com/Astemirdum/book-network/pkg/circuit_breaker"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate go run github.com/golang/mock/mockgen -source=queue.go -destination=../service/mocks/queue.go -package=mocks

type Enqueuer interface {
	Enqueue(ctx context.Context, topic string, key string, v any) error
}

func NewEnqueuer(producer sarama.SyncProducer, breaker cb.CircuitBreaker, log *zap.Logger) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
		breaker:  breaker,
		log:      log.Named("queue"),
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
	breaker  cb.CircuitBreaker
	log      *zap.Logger
}

func (q *enqueuerImpl) Enqueue(ctx context.Context, topic string, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshal")
	}
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}
	return q.breaker.Call(func() error {
		partition, offset, err := q.producer.SendMessage(msg)
		if err != nil {
			return errors.Wrap(err, "SendMessage")
		}
		q.log.Debug("enqueued",
			zap.String("topic", topic),
			zap.Int32("partition", partition),
			zap.Int64("offset", offset))
		return nil
	})
}

// NewNoopEnqueuer is used when the broker is disabled.
func NewNoopEnqueuer() Enqueuer {
	return noopEnqueuer{}
}

type noopEnqueuer struct{}

func (noopEnqueuer) Enqueue(context.Context, string, string, any) error { return nil }
