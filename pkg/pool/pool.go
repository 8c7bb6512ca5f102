// Package pool implements a fixed-size worker pool that runs submitted
// tasks in ascending cost order, cheapest first.
package pool

import (
	"container/heap"
	"errors"
	"sync"
)

// Task is a unit of work executed by a pool worker.
type Task func()

var (
	// ErrNoWorkers is returned by New when numWorkers is not positive.
	ErrNoWorkers = errors.New("number of workers must be positive")

	// ErrPoolClosed is returned by Submit once Close has begun.
	ErrPoolClosed = errors.New("pool is closed")
)

// Pool runs tasks on a fixed set of worker goroutines. Every task carries a
// cost, an estimate of its expected duration, and idle workers always pick
// the cheapest queued task next. Wait blocks until the pool is quiescent,
// which makes a submit-batch-then-wait cycle work as a phase barrier.
type Pool struct {
	mu      sync.Mutex
	wake    *sync.Cond // signaled when a task is queued or Close begins
	idle    *sync.Cond // broadcast when the queue drains and no task is running
	queue   jobQueue
	seq     uint64
	active  int
	closing bool
	workers sync.WaitGroup
}

// New creates a pool and starts numWorkers workers. The workers sleep until
// tasks are submitted.
func New(numWorkers int) (*Pool, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}

	p := &Pool{queue: make(jobQueue, 0, numWorkers)}
	p.wake = sync.NewCond(&p.mu)
	p.idle = sync.NewCond(&p.mu)
	heap.Init(&p.queue)

	for range numWorkers {
		p.workers.Go(p.run)
	}
	return p, nil
}

// Submit queues task with the given cost and wakes a single worker. Among
// tasks of equal cost the most recently submitted runs first. Once Close
// has begun Submit rejects the task with ErrPoolClosed.
func (p *Pool) Submit(task Task, cost int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closing {
		return ErrPoolClosed
	}

	heap.Push(&p.queue, &job{task: task, cost: cost, sequence: p.seq})
	p.seq++
	p.wake.Signal()
	return nil
}

// Wait blocks until no task is queued and no worker is executing one, then
// returns. On an already idle pool it returns immediately. Submitting
// concurrently with Wait makes the barrier meaningless, so callers submit a
// batch first and then wait.
func (p *Pool) Wait() {
	p.mu.Lock()
	for p.queue.Len() > 0 || p.active > 0 {
		p.idle.Wait()
	}
	p.mu.Unlock()
}

// Close stops the pool: Submit starts failing, already queued tasks still
// run to completion, and all workers are joined before Close returns. A
// running task is never interrupted. Close is safe to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	alreadyClosing := p.closing
	p.closing = true
	if !alreadyClosing {
		p.wake.Broadcast()
	}
	p.mu.Unlock()

	p.workers.Wait()
}

// run is the worker loop. Workers sleep while the queue is empty, drain the
// cheapest task when woken, and exit once the pool is closing and nothing
// is left to run.
func (p *Pool) run() {
	for {
		p.mu.Lock()
		for p.queue.Len() == 0 && !p.closing {
			p.wake.Wait()
		}
		if p.closing && p.queue.Len() == 0 {
			p.mu.Unlock()
			return
		}

		next := heap.Pop(&p.queue).(*job)
		p.active++
		p.mu.Unlock()

		// The pool lock is released while the task runs so workers execute
		// in parallel and tasks are free to block or lock on their own.
		next.task()

		p.mu.Lock()
		p.active--
		if p.queue.Len() == 0 && p.active == 0 {
			p.idle.Broadcast()
		}
		p.mu.Unlock()
	}
}
