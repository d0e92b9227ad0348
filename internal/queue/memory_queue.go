// Package queue runs audit log writes on a bounded background worker pool.
package queue

import (
	"context"
	"sync"

	"braik-api/internal/models"
)

// AuditJob is one audit row waiting to be written.
type AuditJob struct {
	Scope      models.AuditScope
	Log        models.AuditLog
	RetryCount int
}

// MemoryQueue is a bounded in-memory queue of audit jobs.
type MemoryQueue struct {
	jobs     chan AuditJob
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewMemoryQueue creates a new in-memory queue with the given capacity.
func NewMemoryQueue(capacity int) *MemoryQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &MemoryQueue{
		jobs:     make(chan AuditJob, capacity),
		capacity: capacity,
	}
}

// Enqueue adds a job. It never blocks: a full queue returns ErrQueueFull.
// The read lock is held so Close cannot close the channel mid-send.
func (q *MemoryQueue) Enqueue(job AuditJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue returns the next job, blocking until one is available.
// After Close it keeps returning buffered jobs, then ErrQueueClosed.
func (q *MemoryQueue) Dequeue(ctx context.Context) (AuditJob, error) {
	select {
	case <-ctx.Done():
		return AuditJob{}, ctx.Err()
	case job, ok := <-q.jobs:
		if !ok {
			return AuditJob{}, ErrQueueClosed
		}
		return job, nil
	}
}

// Close closes the queue. No more jobs can be enqueued after closing.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}

// Len returns the current number of jobs in the queue.
func (q *MemoryQueue) Len() int {
	return len(q.jobs)
}

// Capacity returns the queue capacity.
func (q *MemoryQueue) Capacity() int {
	return q.capacity
}
