package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"braik-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func job(action string) AuditJob {
	return AuditJob{Scope: models.AuditScopeTeam, Log: models.AuditLog{Action: action}}
}

func TestNewMemoryQueue(t *testing.T) {
	q := NewMemoryQueue(5)
	assert.Equal(t, 5, q.Capacity())
	assert.Equal(t, 0, q.Len())

	assert.Equal(t, 1, NewMemoryQueue(0).Capacity(), "capacity is clamped to one")
}

func TestMemoryQueue_Enqueue(t *testing.T) {
	t.Run("full queue returns ErrQueueFull without blocking", func(t *testing.T) {
		q := NewMemoryQueue(2)
		require.NoError(t, q.Enqueue(job("a")))
		require.NoError(t, q.Enqueue(job("b")))

		done := make(chan error, 1)
		go func() { done <- q.Enqueue(job("c")) }()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, ErrQueueFull)
		case <-time.After(time.Second):
			t.Fatal("Enqueue blocked on a full queue")
		}
		assert.Equal(t, 2, q.Len())
	})

	t.Run("closed queue returns ErrQueueClosed", func(t *testing.T) {
		q := NewMemoryQueue(2)
		q.Close()

		assert.ErrorIs(t, q.Enqueue(job("a")), ErrQueueClosed)
	})
}

func TestMemoryQueue_Dequeue(t *testing.T) {
	t.Run("returns jobs in order", func(t *testing.T) {
		q := NewMemoryQueue(3)
		ctx := context.Background()
		_ = q.Enqueue(job("first"))
		_ = q.Enqueue(job("second"))

		got1, err := q.Dequeue(ctx)
		require.NoError(t, err)
		got2, err := q.Dequeue(ctx)
		require.NoError(t, err)

		assert.Equal(t, "first", got1.Log.Action)
		assert.Equal(t, "second", got2.Log.Action)
	})

	t.Run("drains buffered jobs after close", func(t *testing.T) {
		q := NewMemoryQueue(3)
		ctx := context.Background()
		_ = q.Enqueue(job("pending"))
		q.Close()

		got, err := q.Dequeue(ctx)
		require.NoError(t, err)
		assert.Equal(t, "pending", got.Log.Action)

		_, err = q.Dequeue(ctx)
		assert.ErrorIs(t, err, ErrQueueClosed)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		q := NewMemoryQueue(1)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := q.Dequeue(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestMemoryQueue_Close(t *testing.T) {
	q := NewMemoryQueue(1)

	assert.NotPanics(t, func() {
		q.Close()
		q.Close()
	})
}

func TestMemoryQueue_Concurrency(t *testing.T) {
	q := NewMemoryQueue(100)
	ctx := context.Background()
	jobCount := 50

	results := make(chan AuditJob, jobCount)
	for i := 0; i < 5; i++ {
		go func() {
			for {
				j, err := q.Dequeue(ctx)
				if err != nil {
					return
				}
				results <- j
			}
		}()
	}

	var wg sync.WaitGroup
	for i := 0; i < jobCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = q.Enqueue(job("member.added"))
		}()
	}
	wg.Wait()

	received := 0
	timeout := time.After(2 * time.Second)
	for received < jobCount {
		select {
		case <-results:
			received++
		case <-timeout:
			t.Fatalf("timed out waiting for jobs, received %d/%d", received, jobCount)
		}
	}

	q.Close()
	assert.Equal(t, jobCount, received)
}
