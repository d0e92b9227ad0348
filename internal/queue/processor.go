package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"braik-api/internal/metrics"
	"braik-api/internal/models"

	"go.uber.org/zap"
)

const (
	// MaxAttempts is the number of write attempts before an audit row is dropped.
	MaxAttempts = 3
	// RetryDelay is the base delay between attempts (exponential backoff).
	RetryDelay = 200 * time.Millisecond
	// WriteTimeout bounds a single write.
	WriteTimeout = 5 * time.Second
)

// AuditWriter persists audit rows.
type AuditWriter interface {
	Insert(ctx context.Context, scope models.AuditScope, log *models.AuditLog) error
}

// EventRecorder counts audit outcomes.
type EventRecorder interface {
	AuditEvent(result string)
}

// Processor drains the audit queue with a fixed pool of workers.
type Processor struct {
	queue        Queue
	writer       AuditWriter
	events       EventRecorder
	log          *zap.Logger
	workerCount  int
	retryDelay   time.Duration
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a new audit job processor. events may be nil.
func NewProcessor(queue Queue, writer AuditWriter, events EventRecorder, log *zap.Logger, workerCount int) *Processor {
	if workerCount < 1 {
		workerCount = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{
		queue:       queue,
		writer:      writer,
		events:      events,
		log:         log.Named("audit"),
		workerCount: workerCount,
		retryDelay:  RetryDelay,
		shutdownCh:  make(chan struct{}),
	}
}

// Start begins processing jobs with the configured number of workers.
// Pass a context that outlives the HTTP server so Stop can drain.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	p.log.Info("audit processor started", zap.Int("workers", p.workerCount))
}

// Stop closes the queue, lets workers drain what is buffered and waits.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	p.log.Info("audit processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) || errors.Is(err, context.Canceled) {
				p.log.Debug("audit worker shutting down", zap.Int("worker", id))
				return
			}
			continue
		}
		p.processJob(job)
	}
}

func (p *Processor) processJob(job AuditJob) {
	if err := p.write(job); err != nil {
		p.handleFailure(job, err)
		return
	}
	p.record(metrics.AuditWritten)
}

func (p *Processor) write(job AuditJob) error {
	ctx, cancel := context.WithTimeout(context.Background(), WriteTimeout)
	defer cancel()
	log := job.Log
	return p.writer.Insert(ctx, job.Scope, &log)
}

func (p *Processor) handleFailure(job AuditJob, cause error) {
	job.RetryCount++

	if job.RetryCount >= MaxAttempts {
		p.drop(job, cause)
		return
	}

	delay := p.retryDelay * time.Duration(1<<uint(job.RetryCount-1))
	p.record(metrics.AuditRetried)
	p.log.Warn("audit write failed, retrying",
		zap.String("action", job.Log.Action),
		zap.Int("attempt", job.RetryCount),
		zap.Duration("delay", delay),
		zap.Error(cause),
	)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		select {
		case <-p.shutdownCh:
			// no queue to come back to; one last direct attempt
			if err := p.write(job); err != nil {
				p.drop(job, err)
				return
			}
			p.record(metrics.AuditWritten)
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				p.drop(job, err)
			}
		}
	}()
}

func (p *Processor) drop(job AuditJob, cause error) {
	p.record(metrics.AuditDropped)
	p.log.Error("audit row dropped",
		zap.String("scope", string(job.Scope)),
		zap.String("action", job.Log.Action),
		zap.String("actor_id", job.Log.ActorID.Hex()),
		zap.Int("attempts", job.RetryCount),
		zap.Error(cause),
	)
}

func (p *Processor) record(result string) {
	if p.events != nil {
		p.events.AuditEvent(result)
	}
}
