package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/resetbot/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job.
type JobFunc func(ctx context.Context) error

// Process calls f(ctx).
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers. Calling it again has no effect.
func (p *Pool) Start() {
	p.startOnce.Do(func() {
		for i := 0; i < p.workers; i++ {
			p.wg.Add(1)
			go p.worker()
		}
	})
}

// worker is the worker loop
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			return
		}
	}
}

// run processes one job. A failing or panicking job is logged and the
// worker keeps going.
func (p *Pool) run(job Job) {
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgWorkerJobPanicked, "panic", fmt.Sprint(r))
		}
	}()

	if err := job.Process(ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job to the queue without blocking. It returns false when
// the queue is full or the pool has been stopped.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}

	select {
	case p.jobQueue <- job:
		return true
	case <-p.quit:
		return false
	default:
		return false
	}
}

// Stop stops the workers and waits for running jobs to finish. Jobs still
// queued are dropped. Safe to call more than once, or before Start.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
}
