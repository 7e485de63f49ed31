package forecast

import (
	"context"
	"sync"
)

// Task is one invocation of the pipeline. It finishes exactly once.
type Task struct {
	ID   string
	Term string

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
	result Result
	err    error
}

func newTask(id, term string, cancel context.CancelFunc) *Task {
	return &Task{
		ID:     id,
		Term:   term,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

func (t *Task) finish(res Result, err error) {
	t.once.Do(func() {
		t.result = res
		t.err = err
		close(t.done)
	})
}

// Done is closed when the task has finished.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Cancel aborts the in-flight requests. The task then finishes with ErrCanceled.
func (t *Task) Cancel() {
	if t.cancel != nil {
		t.cancel()
	}
}

// Wait blocks until the task finishes or ctx is done. It does not cancel the
// task when ctx ends.
func (t *Task) Wait(ctx context.Context) (Result, error) {
	select {
	case <-t.done:
		return t.result, t.err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
