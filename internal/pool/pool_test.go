package pool_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/minorembed/internal/pool"
	"github.com/stretchr/testify/require"
)

func TestSequentialPoolRunsInOrder(t *testing.T) {
	p := pool.New(1)
	var order []int
	tasks := make([]func() error, 5)
	for i := 0; i < 5; i++ {
		i := i
		tasks[i] = func() error {
			order = append(order, i)
			return nil
		}
	}
	require.NoError(t, p.Run(context.Background(), tasks))
	require.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestParallelPoolRunsAllTasks(t *testing.T) {
	p := pool.New(4)
	var count int64
	tasks := make([]func() error, 50)
	for i := range tasks {
		tasks[i] = func() error {
			atomic.AddInt64(&count, 1)
			return nil
		}
	}
	require.NoError(t, p.Run(context.Background(), tasks))
	require.Equal(t, int64(50), count)
}

func TestPoolPropagatesFirstError(t *testing.T) {
	p := pool.New(2)
	boom := errors.New("boom")
	tasks := []func() error{
		func() error { return nil },
		func() error { return boom },
		func() error { return nil },
	}
	err := p.Run(context.Background(), tasks)
	require.ErrorIs(t, err, boom)
}

func TestThreadsClampedToOne(t *testing.T) {
	p := pool.New(0)
	require.NoError(t, p.Run(context.Background(), []func() error{func() error { return nil }}))
}

func TestEmptyTaskListIsNoop(t *testing.T) {
	p := pool.New(4)
	require.NoError(t, p.Run(context.Background(), nil))
}
