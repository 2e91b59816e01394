package passes

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrQueueClosed is returned by Enqueue once Shutdown has begun. Callers
// creating a pass at that point must surface the failure, not report a
// scheduled pass that no worker will ever pick up.
var ErrQueueClosed = errors.New("queue is shut down")

// Job is one queued pass execution.
type Job struct {
	PassID     uuid.UUID
	DocumentID uuid.UUID
}

// Executor runs one pass to a terminal status.
type Executor interface {
	ExecutePass(ctx context.Context, passID uuid.UUID) error
}

// Queue is a bounded worker pool for pass execution. Each job gets its own
// timeout-bounded context; a hanging adapter times out and surfaces as a
// failed pass rather than wedging a worker forever.
type Queue struct {
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*Queue)

func WithWorkers(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithPassTimeout(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewQueue(logger *slog.Logger, opts ...Option) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &Queue{
		logger:  logger,
		workers: 4,
		timeout: 10 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	return q
}

// Start launches the workers. Jobs enqueued before Start sit in the channel
// until a worker picks them up.
func (q *Queue) Start(exec Executor) {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := exec.ExecutePass(ctx, job.PassID)
					cancel()

					if err != nil {
						q.logger.Error("pass execution failed", "worker_id", workerID, "pass_id", job.PassID, "error", err)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *Queue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "pass_id", job.PassID)
		return ErrQueueClosed
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued pass for execution", "pass_id", job.PassID, "document_id", job.DocumentID)
	default:
		q.logger.Warn("queue full, applying backpressure", "pass_id", job.PassID)
		q.ch <- job
	}
	return nil
}

// Shutdown stops accepting jobs and waits for in-flight passes to finish,
// bounded by ctx.
func (q *Queue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
