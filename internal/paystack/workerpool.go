package paystack

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

// WorkerPool runs payout tasks on a fixed set of goroutines so a slow
// gateway cannot stack up unbounded concurrent requests.
type WorkerPool struct {
	tasks     chan Task
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewWorkerPool(workers, queueDepth int) *WorkerPool {
	wp := &WorkerPool{tasks: make(chan Task, queueDepth)}
	wp.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wp.wg.Done()
			for task := range wp.tasks {
				if err := task(); err != nil {
					zap.L().Error("payout task failed", zap.Error(err))
				}
			}
		}()
	}
	return wp
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

// Close stops accepting tasks and waits for in-flight ones to finish.
func (wp *WorkerPool) Close() {
	wp.closeOnce.Do(func() { close(wp.tasks) })
	wp.wg.Wait()
}
