package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/PitchBot_Go/internal/logger"
	"github.com/osse101/PitchBot_Go/internal/metrics"
)

// ErrPoolStopped is returned when enqueueing into a stopped pool
var ErrPoolStopped = errors.New("worker pool is stopped")

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
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

// run processes one job; the pool context is cancelled on Stop so long jobs can bail out
func (p *Pool) run(job Job) {
	log := logger.FromContext(p.ctx)
	defer func() {
		if r := recover(); r != nil {
			metrics.PoolJobFailures.Inc()
			log.Error(LogMsgWorkerJobPanicked, "panic", fmt.Sprint(r))
		}
	}()

	if err := job.Process(p.ctx); err != nil {
		// Log error but don't crash worker
		metrics.PoolJobFailures.Inc()
		log.Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job to the queue, blocking while the queue is full.
// It returns ErrPoolStopped once Stop has been called.
func (p *Pool) Enqueue(job Job) error {
	select {
	case <-p.quit:
		logger.FromContext(p.ctx).Warn(LogMsgJobDropped)
		return ErrPoolStopped
	default:
	}

	select {
	case p.jobQueue <- job:
		return nil
	case <-p.quit:
		logger.FromContext(p.ctx).Warn(LogMsgJobDropped)
		return ErrPoolStopped
	}
}

// Stop cancels running jobs and waits for the workers to finish. Queued jobs
// that have not started are discarded.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.cancel()
		close(p.quit)
	})
	p.wg.Wait()
}
