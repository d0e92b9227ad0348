package queue

import "context"

// Queue defines the interface for audit job queue operations.
type Queue interface {
	// Enqueue adds a job without blocking.
	Enqueue(job AuditJob) error
	// Dequeue removes and returns the next job from the queue.
	Dequeue(ctx context.Context) (AuditJob, error)
	// Close closes the queue. Buffered jobs can still be dequeued.
	Close()
	// Len returns the current number of jobs in the queue.
	Len() int
	// Capacity returns the queue capacity.
	Capacity() int
}

var _ Queue = (*MemoryQueue)(nil)
