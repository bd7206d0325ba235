package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PitchBot_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	Done chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	// Signal that job ran
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	// Create worker pool
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	// Create scheduler
	sched := New(pool)
	defer sched.Stop(context.Background())

	// Create mock job
	job := &MockJob{
		Done: make(chan struct{}, 10),
	}

	// Cron resolution is one second
	require.NoError(t, sched.Schedule("mock", "@every 1s", job))
	sched.Start()

	// Wait for at least 2 runs
	timeout := time.After(5 * time.Second)
	runCount := 0

	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_RunNow(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 1)}

	require.NoError(t, sched.RunNow(job))

	select {
	case <-job.Done:
	case <-time.After(time.Second):
		t.Fatal("RunNow job did not execute")
	}
}

func TestScheduler_InvalidSpec(t *testing.T) {
	pool := worker.NewPool(1, 1)
	sched := New(pool)

	err := sched.Schedule("bad", "every four hours", &MockJob{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}

func TestScheduler_FourHourSpec(t *testing.T) {
	pool := worker.NewPool(1, 1)
	sched := New(pool)

	require.NoError(t, sched.Schedule("referral", "0 0 */4 * * *", &MockJob{}))
	entries := sched.cron.Entries()
	require.Len(t, entries, 1)

	from := time.Date(2024, 7, 1, 9, 15, 0, 0, time.Local)
	assert.Equal(t, time.Date(2024, 7, 1, 12, 0, 0, 0, time.Local), entries[0].Schedule.Next(from))
}
