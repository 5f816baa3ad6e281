// File: internal/worker/worker.go
package worker

import (
	"context"
	"errors"
	"sync"
)

// ErrStopped 表示 pool 已關閉
var ErrStopped = errors.New("worker pool stopped")

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task) error
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task), done: make(chan struct{})}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	done chan struct{}
	mu   sync.RWMutex
	once sync.Once
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	select {
	case <-p.done:
		return ErrStopped
	default:
	}
	p.jobs <- t
	return nil
}

// Stop 等待進行中的工作結束；重複呼叫無副作用
func (p *pool) Stop() {
	p.once.Do(func() {
		close(p.done)
		p.mu.Lock()
		close(p.jobs)
		p.mu.Unlock()
		p.wg.Wait()
	})
}

// Run 把 fns 交給 pool 並行執行並等待全部完成，回傳第一個錯誤。
// ctx 取消後尚未開始的 fn 不會執行。
func Run(ctx context.Context, p Pool, fns ...func(context.Context) error) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for _, fn := range fns {
		fn := fn
		wg.Add(1)
		err := p.Submit(func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				setErr(err)
				return
			}
			if err := fn(ctx); err != nil {
				setErr(err)
			}
		})
		if err != nil {
			wg.Done()
			setErr(err)
			break
		}
	}
	wg.Wait()
	return firstErr
}
