package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const (
	LendingTopic = "lending"
)

type Config struct {
	Addrs  []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
	Enable bool     `yaml:"enable" envconfig:"KAFKA_ENABLE"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Timeout = 5 * time.Second
	defaultCfg.Producer.Retry.Max = 1

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type EventType string

const (
	EventBorrowed       EventType = "BORROWED"
	EventReturned       EventType = "RETURNED"
	EventReturnApproved EventType = "RETURN_APPROVED"
	EventFeedback       EventType = "FEEDBACK"
)

type EventLending struct {
	EventID   string    `json:"eventId"`
	EventType EventType `json:"eventType"`
	Timestamp time.Time `json:"timestamp"`
	BookID    int64     `json:"bookId"`
	RecordID  int64     `json:"recordId,omitempty"`
	UserID    int64     `json:"userId"`
	OwnerID   int64     `json:"ownerId"`
}

const LendingStatsGroup = "lending-stats"

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

const (
	minRetryBackoff = 100 * time.Millisecond
	maxRetryBackoff = 10 * time.Second
)

// Consume rejoins the group after every rebalance until ctx is done or the group is closed.
// Failed sessions are retried with a capped exponential backoff.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, log *zap.Logger, topics ...string) {
	backoff := minRetryBackoff
	for {
		err := group.Consume(ctx, topics, handler)
		if errors.Is(err, sarama.ErrClosedConsumerGroup) {
			return
		}
		if ctx.Err() != nil {
			return
		}
		if err == nil {
			backoff = minRetryBackoff
			continue
		}
		log.Error("kafka.Consume", zap.Strings("topics", topics), zap.Duration("retryIn", backoff), zap.Error(err))
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxRetryBackoff)
	}
}

// RunConsumer starts Consume in the background. The returned stop cancels consumption,
// waits for the loop to exit (or ctx to expire) and then closes the group.
func RunConsumer(group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, log *zap.Logger, topics ...string) (stop func(ctx context.Context) error) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		Consume(ctx, group, handler, log, topics...)
	}()

	return func(stopCtx context.Context) error {
		cancel()
		select {
		case <-done:
		case <-stopCtx.Done():
			return errors.Join(stopCtx.Err(), group.Close())
		}
		return group.Close()
	}
}
