// Package worker runs independent jobs on a fixed number of goroutines.
package worker

import (
	"context"
	"sync"

	"github.com/osse101/AquaponicsSim_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// Process calls f
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewPool creates a new worker pool. At least one worker is always started.
func NewPool(workers int, queueSize int) *Pool {
	return &Pool{
		workers:  max(1, workers),
		jobQueue: make(chan Job, max(0, queueSize)),
	}
}

// Workers returns the number of worker goroutines
func (p *Pool) Workers() int {
	return p.workers
}

// Start starts the workers. Jobs receive ctx and are expected to honour
// its cancellation themselves.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for job := range p.jobQueue {
		if err := job.Process(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
		}
	}
}

// Enqueue adds a job to the queue, blocking while the queue is full.
// Enqueue after Stop panics.
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// Stop closes the queue and waits until every queued job has finished
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.jobQueue)
	})
	p.wg.Wait()
}
