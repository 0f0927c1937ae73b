package workerpool

import (
	"sync"

	"github.com/kiteco/sentiment/errors"
)

// Job is a unit of work submitted to a Pool.
type Job func() error

// Pool runs jobs on a fixed number of worker goroutines. Jobs are queued
// without bound, so Add never blocks the caller.
type Pool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []Job
	errs    errors.Errors
	stopped bool
	pending sync.WaitGroup
}

// New starts a pool with the given number of workers.
func New(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{}
	p.cond = sync.NewCond(&p.mu)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// Add queues jobs for execution and returns immediately.
func (p *Pool) Add(jobs []Job) {
	p.pending.Add(len(jobs))
	p.mu.Lock()
	p.queue = append(p.queue, jobs...)
	p.mu.Unlock()
	p.cond.Broadcast()
}

// AddBlocking is Add; it exists so call sites can state the intent that the
// caller has nothing else to do until the jobs are queued.
func (p *Pool) AddBlocking(jobs []Job) {
	p.Add(jobs)
}

// Wait blocks until every queued job has finished (or been dropped by Stop)
// and returns the combined job errors, if any.
func (p *Pool) Wait() error {
	p.pending.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.errs == nil {
		return nil
	}
	return p.errs
}

// Stop drops queued jobs and shuts the workers down. Jobs already running
// are allowed to finish.
func (p *Pool) Stop() {
	p.mu.Lock()
	p.stopped = true
	dropped := len(p.queue)
	p.queue = nil
	p.mu.Unlock()
	p.cond.Broadcast()
	for i := 0; i < dropped; i++ {
		p.pending.Done()
	}
}

func (p *Pool) worker() {
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.stopped {
			p.cond.Wait()
		}
		if p.stopped {
			p.mu.Unlock()
			return
		}
		job := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		if err := job(); err != nil {
			p.mu.Lock()
			p.errs = errors.Append(p.errs, err)
			p.mu.Unlock()
		}
		p.pending.Done()
	}
}
