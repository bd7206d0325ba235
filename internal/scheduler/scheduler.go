package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/osse101/PitchBot_Go/internal/worker"
)

// Log messages
const (
	LogMsgJobScheduled  = "Job scheduled"
	LogMsgEnqueueFailed = "Failed to enqueue scheduled job"
)

// Scheduler enqueues jobs into the worker pool on cron schedules
type Scheduler struct {
	workerPool *worker.Pool
	cron       *cron.Cron
}

// New creates a new scheduler. Schedules use a leading seconds field and
// accept descriptors such as "@every 4h".
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(slogLogger{}),
		),
	}
}

// Schedule registers a job to be enqueued on every activation of spec
func (s *Scheduler) Schedule(name, spec string, job worker.Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		if err := s.workerPool.Enqueue(job); err != nil {
			slog.Warn(LogMsgEnqueueFailed, "job", name, "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for %s: %w", spec, name, err)
	}

	slog.Info(LogMsgJobScheduled, "job", name, "spec", spec)
	return nil
}

// RunNow enqueues job immediately, outside its schedule
func (s *Scheduler) RunNow(job worker.Job) error {
	return s.workerPool.Enqueue(job)
}

// Start starts the cron loop
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops all scheduled jobs. It waits for in-progress enqueues, bounded by ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// slogLogger routes cron's internal logging to slog
type slogLogger struct{}

func (slogLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (slogLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
