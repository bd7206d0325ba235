package referral

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/PitchBot_Go/internal/domain"
	"github.com/osse101/PitchBot_Go/internal/logger"
	"github.com/osse101/PitchBot_Go/internal/metrics"
	"github.com/osse101/PitchBot_Go/internal/notify"
	"github.com/osse101/PitchBot_Go/internal/pitchtalk"
	"github.com/osse101/PitchBot_Go/internal/utils"
)

// Account pairs an identity with the API client it should use
type Account struct {
	Identity domain.Identity
	Client   pitchtalk.Client
}

// Result is the outcome of one identity's referral pass
type Result struct {
	Identity string
	Count    int
	Claimed  bool
	Balance  int64
	Err      error
}

// Job claims pending referral rewards for every account. It implements
// worker.Job so the scheduler can enqueue it.
type Job struct {
	accounts    []Account
	notifier    notify.Notifier
	parallelism int
	running     atomic.Bool
}

// NewJob creates a referral job. parallelism bounds concurrent accounts.
func NewJob(accounts []Account, notifier notify.Notifier, parallelism int) *Job {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	if parallelism < 1 {
		parallelism = 1
	}
	return &Job{
		accounts:    accounts,
		notifier:    notifier,
		parallelism: parallelism,
	}
}

// Process runs one referral pass over all accounts. A pass that starts while
// the previous one is still running is skipped.
func (j *Job) Process(ctx context.Context) error {
	if !j.running.CompareAndSwap(false, true) {
		slog.Warn(LogMsgSkipped)
		return nil
	}
	defer j.running.Store(false)

	_, err := j.Run(ctx)
	return err
}

// Run claims referrals for every account and returns per-account results in
// account order. Failures are logged and joined into the returned error;
// they do not stop the other accounts.
func (j *Job) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, len(j.accounts))
	errs := make([]error, len(j.accounts))

	var g errgroup.Group
	g.SetLimit(j.parallelism)
	for i, acct := range j.accounts {
		i, acct := i, acct
		g.Go(func() error {
			results[i], errs[i] = j.Claim(ctx, acct)
			results[i].Err = errs[i]
			return nil
		})
	}
	_ = g.Wait()

	return results, errors.Join(errs...)
}

// Claim runs authenticate → count → claim-if-nonzero for a single account
func (j *Job) Claim(ctx context.Context, acct Account) (Result, error) {
	ctx = logger.WithIdentity(ctx, acct.Identity.Name)
	ctx = logger.WithRunID(ctx, logger.GenerateRunID())
	log := logger.FromContext(ctx)
	log.Info(LogMsgStart)
	defer log.Info(LogMsgEnd)

	result := Result{Identity: acct.Identity.Name}

	auth, err := acct.Client.Authenticate(ctx, acct.Identity)
	if err == nil && (auth == nil || auth.AccessToken == "") {
		err = fmt.Errorf("%w: %w", domain.ErrAuthFailed, domain.ErrEmptyAccessToken)
	}
	if err != nil {
		log.Error(LogMsgTokenFailed, "error", err)
		metrics.ReferralRuns.WithLabelValues(metrics.OutcomeFailed).Inc()
		return result, fmt.Errorf("%s: %w", acct.Identity.Name, err)
	}

	count, err := acct.Client.ReferralCount(ctx, auth.AccessToken)
	if err != nil {
		// an unreadable count is treated as nothing to claim
		log.Error(LogMsgCountFailed, "error", err)
		metrics.ReferralRuns.WithLabelValues(metrics.OutcomeFailed).Inc()
		return result, fmt.Errorf("%s: %w", acct.Identity.Name, err)
	}
	result.Count = count

	if count <= 0 {
		log.Debug(LogMsgNothingToClaim)
		metrics.ReferralRuns.WithLabelValues(metrics.OutcomeNoop).Inc()
		return result, nil
	}

	state, err := acct.Client.ClaimReferral(ctx, auth.AccessToken)
	if err == nil && state == nil {
		err = fmt.Errorf("%w: %w", domain.ErrClaimFailed, domain.ErrNoFarmingState)
	}
	if err != nil {
		log.Error(LogMsgClaimFailed, "error", err)
		metrics.ReferralRuns.WithLabelValues(metrics.OutcomeFailed).Inc()
		return result, fmt.Errorf("%s: %w", acct.Identity.Name, err)
	}

	result.Claimed = true
	result.Balance = state.Coins

	metrics.ReferralRuns.WithLabelValues(metrics.OutcomeClaimed).Inc()
	metrics.ReferralClaims.WithLabelValues(acct.Identity.Name).Inc()
	metrics.CoinBalance.WithLabelValues(acct.Identity.Name).Set(float64(state.Coins))
	log.Info(LogMsgClaimed, "count", count, "balance", utils.FormatCoins(state.Coins))
	notify.Send(ctx, j.notifier, notify.ReferralClaimed(acct.Identity.Name, count, state.Coins))

	return result, nil
}
