package kafka

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGroup struct {
	sarama.ConsumerGroup
	calls atomic.Int32
	err   error
	// block makes Consume wait for ctx like a live session
	block     bool
	consuming atomic.Bool
	closedMid atomic.Bool
	closed    atomic.Bool
}

func (g *fakeGroup) Consume(ctx context.Context, _ []string, _ sarama.ConsumerGroupHandler) error {
	g.calls.Add(1)
	if g.block {
		g.consuming.Store(true)
		defer g.consuming.Store(false)
		<-ctx.Done()
		time.Sleep(20 * time.Millisecond)
		return nil
	}
	return g.err
}

func (g *fakeGroup) Close() error {
	g.closedMid.Store(g.consuming.Load())
	g.closed.Store(true)
	return nil
}

func TestConsume_BacksOffOnError(t *testing.T) {
	t.Parallel()
	group := &fakeGroup{err: errors.New("out of brokers")}

	ctx, cancel := context.WithTimeout(context.Background(), 350*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		Consume(ctx, group, nil, zap.NewNop(), LendingTopic)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Consume did not return after ctx was done")
	}
	// retries at 0, 100ms and 300ms
	calls := group.calls.Load()
	require.GreaterOrEqual(t, calls, int32(2))
	require.LessOrEqual(t, calls, int32(4))
}

func TestConsume_StopsOnClosedGroup(t *testing.T) {
	t.Parallel()
	group := &fakeGroup{err: sarama.ErrClosedConsumerGroup}

	Consume(context.Background(), group, nil, zap.NewNop(), LendingTopic)
	require.Equal(t, int32(1), group.calls.Load())
}

func TestRunConsumer_StopWaitsForLoopBeforeClose(t *testing.T) {
	t.Parallel()
	group := &fakeGroup{block: true}

	stop := RunConsumer(group, nil, zap.NewNop(), LendingTopic)
	require.Eventually(t, group.consuming.Load, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, stop(ctx))

	require.True(t, group.closed.Load())
	require.False(t, group.closedMid.Load())
	require.False(t, group.consuming.Load())
}
