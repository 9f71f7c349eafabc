package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()
	var (
		clock   = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		now     = func() time.Time { return clock }
		errSvc  = errors.New("service error")
		ok      = func() error { return nil }
		failing = func() error { return errSvc }
	)
	cb := newCircuitBreaker(10, time.Second, 0.3, 2, now)

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.Equal(t, Closed, cb.State())

	// 3 of 10 recorded calls failing trips the breaker
	require.ErrorIs(t, cb.Call(failing), errSvc)
	require.ErrorIs(t, cb.Call(failing), errSvc)
	require.Equal(t, Closed, cb.State())
	require.ErrorIs(t, cb.Call(failing), errSvc)
	require.Equal(t, Open, cb.State())

	called := false
	require.ErrorIs(t, cb.Call(func() error { called = true; return nil }), ErrOpenCB)
	require.False(t, called)

	// after the timeout one failing probe re-opens it
	clock = clock.Add(2 * time.Second)
	require.ErrorIs(t, cb.Call(failing), errSvc)
	require.Equal(t, Open, cb.State())

	clock = clock.Add(2 * time.Second)
	require.NoError(t, cb.Call(ok))
	require.Equal(t, HalfOpen, cb.State())
	require.NoError(t, cb.Call(ok))
	require.Equal(t, Closed, cb.State())
}

func Test_circuitBreaker_Reset(t *testing.T) {
	t.Parallel()
	cb := New(2, time.Hour, 0.5, 1)
	require.Error(t, cb.Call(func() error { return errors.New("x") }))
	require.Equal(t, Open, cb.State())
	cb.Reset()
	require.Equal(t, Closed, cb.State())
	require.NoError(t, cb.Call(func() error { return nil }))
}
