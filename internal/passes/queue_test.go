package passes

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type countingExecutor struct {
	mu    sync.Mutex
	seen  []uuid.UUID
	block chan struct{} // when non-nil, executions wait on it
}

func (e *countingExecutor) ExecutePass(ctx context.Context, passID uuid.UUID) error {
	if e.block != nil {
		select {
		case <-e.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	e.mu.Lock()
	e.seen = append(e.seen, passID)
	e.mu.Unlock()
	return nil
}

func (e *countingExecutor) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.seen)
}

func TestQueueExecutesEnqueuedJobs(t *testing.T) {
	exec := &countingExecutor{}
	q := NewQueue(nil, WithWorkers(2), WithQueueSize(8))
	q.Start(exec)

	const n = 6
	for i := 0; i < n; i++ {
		if err := q.Enqueue(context.Background(), Job{PassID: uuid.New()}); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}
	q.Shutdown(context.Background())

	if exec.count() != n {
		t.Fatalf("executed = %d, want %d", exec.count(), n)
	}
}

func TestQueueJobsBeforeStartAreNotLost(t *testing.T) {
	exec := &countingExecutor{}
	q := NewQueue(nil, WithWorkers(1), WithQueueSize(4))

	if err := q.Enqueue(context.Background(), Job{PassID: uuid.New()}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	q.Start(exec)
	q.Shutdown(context.Background())

	if exec.count() != 1 {
		t.Fatalf("executed = %d, want 1", exec.count())
	}
}

func TestQueueEnqueueAfterShutdownFails(t *testing.T) {
	exec := &countingExecutor{}
	q := NewQueue(nil, WithWorkers(1))
	q.Start(exec)
	q.Shutdown(context.Background())

	// must not panic on the closed channel, and must not report success
	if err := q.Enqueue(context.Background(), Job{PassID: uuid.New()}); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("enqueue after shutdown: %v, want ErrQueueClosed", err)
	}
	if exec.count() != 0 {
		t.Fatalf("executed = %d, want 0", exec.count())
	}
}

func TestQueuePassTimeoutCancelsJobContext(t *testing.T) {
	exec := &countingExecutor{block: make(chan struct{})}
	q := NewQueue(nil, WithWorkers(1), WithPassTimeout(20*time.Millisecond))
	q.Start(exec)

	if err := q.Enqueue(context.Background(), Job{PassID: uuid.New()}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	// the executor blocks forever; only the per-job timeout can release it
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)
	if ctx.Err() != nil {
		t.Fatal("worker never released, per-job timeout not applied")
	}
}
