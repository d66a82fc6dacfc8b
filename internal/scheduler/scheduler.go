package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/resetbot/internal/worker"
)

// Scheduler runs jobs at fixed intervals by enqueueing them onto a worker
// pool, so a slow job never holds up the ticker of another.
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup

	mu      sync.Mutex
	started bool
	stopped bool
	pending []entry
}

type entry struct {
	name      string
	interval  time.Duration
	job       worker.Job
	immediate bool
}

// ScheduleOption adjusts a single Schedule call.
type ScheduleOption func(*entry)

// RunImmediately also enqueues the job once as soon as its ticker starts,
// instead of waiting out the first interval.
func RunImmediately() ScheduleOption {
	return func(e *entry) { e.immediate = true }
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run every interval. Unless RunImmediately is
// given, the first run happens one interval after Start (or after this call,
// if already started).
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job, opts ...ScheduleOption) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := entry{name: name, interval: interval, job: job}
	for _, opt := range opts {
		opt(&e)
	}
	switch {
	case s.stopped:
		return
	case s.started:
		s.launch(e)
	default:
		s.pending = append(s.pending, e)
	}
}

// Start launches one ticker per scheduled job. Calling it again has no effect.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.stopped {
		return
	}
	s.started = true
	for _, e := range s.pending {
		s.launch(e)
	}
	s.pending = nil
}

func (s *Scheduler) launch(e entry) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()

		if e.immediate {
			s.enqueue(e)
		}
		for {
			select {
			case <-ticker.C:
				s.enqueue(e)
			case <-s.quit:
				return
			}
		}
	}()
}

// enqueue never blocks; a full queue means earlier runs are still going and
// this tick is skipped.
func (s *Scheduler) enqueue(e entry) {
	if !s.workerPool.Enqueue(e.job) {
		slog.Warn(LogMsgTickDropped, "job", e.name, "interval", e.interval)
	}
}

// Stop stops all tickers and waits for their goroutines to exit. It does not
// stop the worker pool. Safe to call more than once, or before Start.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		close(s.quit)
	}
	s.mu.Unlock()
	s.wg.Wait()
}
