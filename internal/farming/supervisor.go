package farming

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/PitchBot_Go/internal/metrics"
)

// Supervisor runs one worker per identity and keeps their latest status
type Supervisor struct {
	workers []*Worker

	mu       sync.RWMutex
	statuses map[string]Status

	group  errgroup.Group
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// NewSupervisor wires the workers' status reports into the supervisor
func NewSupervisor(workers []*Worker) *Supervisor {
	s := &Supervisor{
		workers:  workers,
		statuses: make(map[string]Status, len(workers)),
		done:     make(chan struct{}),
	}
	for _, w := range workers {
		s.statuses[w.identity.Name] = w.status
		w.report = s.update
	}
	return s
}

// Start launches every worker. Workers are independent: one failing does not
// cancel the others.
func (s *Supervisor) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	slog.Info(LogMsgSupervisorStart, "workers", len(s.workers))

	for _, w := range s.workers {
		w := w
		s.group.Go(func() error {
			metrics.WorkersActive.Inc()
			defer metrics.WorkersActive.Dec()
			return w.Run(ctx)
		})
	}

	go func() {
		s.err = s.group.Wait()
		slog.Info(LogMsgSupervisorDone)
		close(s.done)
	}()
}

// Done is closed once every worker has returned
func (s *Supervisor) Done() <-chan struct{} {
	return s.done
}

// Err returns the first worker failure. Only valid after Done is closed.
func (s *Supervisor) Err() error {
	return s.err
}

// Snapshot returns the statuses in worker order
func (s *Supervisor) Snapshot() []Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Status, 0, len(s.workers))
	for _, w := range s.workers {
		out = append(out, s.statuses[w.identity.Name])
	}
	return out
}

// Alive counts workers that have not reached a terminal state
func (s *Supervisor) Alive() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, st := range s.statuses {
		if !st.State.Terminal() {
			n++
		}
	}
	return n
}

// Shutdown cancels all workers and waits for them, bounded by ctx
func (s *Supervisor) Shutdown(ctx context.Context) error {
	slog.Info(LogMsgShutdown)
	if s.cancel != nil {
		s.cancel()
	} else {
		return nil
	}

	select {
	case <-s.done:
		slog.Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		slog.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}

func (s *Supervisor) update(st Status) {
	s.mu.Lock()
	s.statuses[st.Identity] = st
	s.mu.Unlock()
}
