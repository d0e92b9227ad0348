package queue

import "errors"

var (
	// ErrQueueFull is returned when the audit queue is at capacity.
	ErrQueueFull = errors.New("audit queue is full")
	// ErrQueueClosed is returned after the queue has been closed for shutdown.
	ErrQueueClosed = errors.New("audit queue is closed")
)
