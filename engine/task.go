package engine

import (
	"context"
	"sync"
)

// Task is a running automated game. Stop takes effect before the next move,
// never during one.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}

	once   sync.Once
	result Result
	err    error
}

// Start runs the engine in its own goroutine.
func (e *Engine) Start(ctx context.Context) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(t.done)
		defer cancel()
		t.result, t.err = e.Run(ctx)
	}()
	return t
}

// Stop requests cancellation and waits for the loop to exit.
func (t *Task) Stop() {
	t.once.Do(t.cancel)
	<-t.done
}

func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the loop exits and returns its outcome.
func (t *Task) Wait() (Result, error) {
	<-t.done
	return t.result, t.err
}
