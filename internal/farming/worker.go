package farming

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PitchBot_Go/internal/domain"
	"github.com/osse101/PitchBot_Go/internal/logger"
	"github.com/osse101/PitchBot_Go/internal/metrics"
	"github.com/osse101/PitchBot_Go/internal/notify"
	"github.com/osse101/PitchBot_Go/internal/pitchtalk"
	"github.com/osse101/PitchBot_Go/internal/utils"
)

// SleepFunc blocks for d or until ctx is done
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep waits for d, returning ctx.Err() if ctx ends first
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Options tunes the wait computation
type Options struct {
	Grace    time.Duration
	MinDelay time.Duration
}

// Worker runs the farming loop for a single identity
type Worker struct {
	identity domain.Identity
	client   pitchtalk.Client
	notifier notify.Notifier
	opts     Options

	sleep  SleepFunc
	now    func() time.Time
	report func(Status)

	status Status
}

// NewWorker creates a worker. notifier may be nil.
func NewWorker(identity domain.Identity, client pitchtalk.Client, notifier notify.Notifier, opts Options) *Worker {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Worker{
		identity: identity,
		client:   client,
		notifier: notifier,
		opts:     opts,
		sleep:    Sleep,
		now:      time.Now,
		report:   func(Status) {},
		status:   Status{Identity: identity.Name, State: StateStart},
	}
}

// Identity returns the identity this worker farms for
func (w *Worker) Identity() domain.Identity {
	return w.identity
}

// Run loops until a step fails or ctx is cancelled. It returns nil on
// cancellation and the failing step's error otherwise.
func (w *Worker) Run(ctx context.Context) error {
	ctx = logger.WithIdentity(ctx, w.identity.Name)
	log := logger.FromContext(ctx)
	log.Info(LogMsgStartFarming)
	defer log.Info(LogMsgEndFarming)

	w.setState(StateStart, nil)

	for {
		err := w.cycle(logger.WithRunID(ctx, logger.GenerateRunID()))
		if err == nil {
			continue
		}

		if ctx.Err() != nil {
			w.setState(StateStopped, nil)
			log.Info(LogMsgWorkerStopped)
			return nil
		}

		w.setState(StateFailed, err)
		metrics.FarmingFailures.WithLabelValues(w.identity.Name, failureKind(err)).Inc()
		notify.Send(ctx, w.notifier, notify.WorkerStopped(w.identity.Name, err))
		return err
	}
}

// cycle is one authenticate → fetch → wait → claim pass
func (w *Worker) cycle(ctx context.Context) error {
	log := logger.FromContext(ctx)

	auth, err := w.client.Authenticate(ctx, w.identity)
	if err == nil && (auth == nil || auth.AccessToken == "") {
		err = fmt.Errorf("%w: %w", domain.ErrAuthFailed, domain.ErrEmptyAccessToken)
	}
	if err != nil {
		log.Error(LogMsgAuthFailed, "error", err)
		return err
	}
	w.setState(StateAuthenticated, nil)

	state, err := w.client.GetFarming(ctx, auth.AccessToken)
	if err == nil && state == nil {
		err = fmt.Errorf("%w: %w", domain.ErrFetchFailed, domain.ErrNoFarmingState)
	}
	if err != nil {
		log.Error(LogMsgFetchFailed, "error", err)
		return err
	}

	now := w.now()
	wait := WaitDuration(state, now, w.opts.Grace, w.opts.MinDelay)
	w.status.NextClaimAt = now.Add(wait)
	w.status.Balance = state.Coins
	w.setState(StateWaiting, nil)
	metrics.FarmingWait.Observe(wait.Seconds())
	log.Info(LogMsgWaiting, "wait", utils.FormatWait(wait), "claim_at", w.status.NextClaimAt.Format(time.RFC3339))

	if err := w.sleep(ctx, wait); err != nil {
		return err
	}

	claimed, err := w.client.ClaimFarming(ctx, auth.AccessToken)
	if err == nil && claimed == nil {
		err = fmt.Errorf("%w: %w", domain.ErrClaimFailed, domain.ErrNoFarmingState)
	}
	if err != nil {
		log.Error(LogMsgClaimFailed, "error", err)
		return err
	}

	w.status.Claims++
	w.status.Balance = claimed.Coins
	w.status.NextClaimAt = time.Time{}
	w.setState(StateClaimed, nil)

	metrics.FarmingClaims.WithLabelValues(w.identity.Name).Inc()
	metrics.CoinBalance.WithLabelValues(w.identity.Name).Set(float64(claimed.Coins))
	log.Info(LogMsgClaimed, "balance", utils.FormatCoins(claimed.Coins))
	notify.Send(ctx, w.notifier, notify.FarmingClaimed(w.identity.Name, claimed.Coins))

	return nil
}

func (w *Worker) setState(state State, err error) {
	w.status.State = state
	w.status.UpdatedAt = w.now()
	if err != nil {
		w.status.LastError = err.Error()
	}
	w.report(w.status)
}
