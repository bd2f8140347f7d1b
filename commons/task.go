package commons

import (
	"context"
	"errors"
	"fmt"

	"git.greysoh.dev/imterah/worldsockd/status"
)

// Task is a function running in its own goroutine.
type Task[T any] struct {
	ctx    context.Context
	result chan taskResult[T]
}

type taskResult[T any] struct {
	value T
	err   error
}

// Go starts fn in a goroutine. A panic inside fn is recovered and reported by Join.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Task[T] {
	task := Task[T]{
		ctx:    ctx,
		result: make(chan taskResult[T], 1),
	}

	go func() {
		var result taskResult[T]

		defer func() {
			if recovered := recover(); recovered != nil {
				result.err = status.TaskJoin(fmt.Errorf("task panicked: %v", recovered))
			}

			task.result <- result
		}()

		result.value, result.err = fn(ctx)
	}()

	return &task
}

// Join waits for the task. If the context ends first, a deadline is returned as-is and a
// cancellation is reported as a task join failure; the goroutine is left to finish on its own.
func (task *Task[T]) Join() (T, error) {
	var zero T

	select {
	case result := <-task.result:
		return result.value, result.err
	default:
	}

	select {
	case result := <-task.result:
		return result.value, result.err
	case <-task.ctx.Done():
		err := task.ctx.Err()

		if errors.Is(err, context.DeadlineExceeded) {
			return zero, err
		}

		return zero, status.TaskJoin(err)
	}
}
