package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/osse101/PitchBot_Go/internal/config"
	"github.com/osse101/PitchBot_Go/internal/domain"
	"github.com/osse101/PitchBot_Go/internal/farming"
	"github.com/osse101/PitchBot_Go/internal/identity"
	"github.com/osse101/PitchBot_Go/internal/notify"
	"github.com/osse101/PitchBot_Go/internal/pitchtalk"
	"github.com/osse101/PitchBot_Go/internal/referral"
	"github.com/osse101/PitchBot_Go/internal/scheduler"
	"github.com/osse101/PitchBot_Go/internal/server"
	"github.com/osse101/PitchBot_Go/internal/worker"
)

// ClientFactory builds the API client used by one identity
type ClientFactory func(domain.Identity) (pitchtalk.Client, error)

// App holds every long-running component of the bot
type App struct {
	cfg        *config.Config
	Identities []domain.Identity
	Notifier   notify.Notifier
	Supervisor *farming.Supervisor
	Referral   *referral.Job
	Pool       *worker.Pool
	Scheduler  *scheduler.Scheduler
	Server     *server.Server
}

// LoadIdentities reads the identities file named by the config
func LoadIdentities(cfg *config.Config) ([]domain.Identity, error) {
	identities, err := identity.LoadFile(cfg.IdentitiesFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadIdentities, err)
	}
	slog.Info(LogMsgIdentitiesLoaded, "count", len(identities), "file", cfg.IdentitiesFile)
	return identities, nil
}

// NewClientFactory returns a factory that honours per-identity proxies
func NewClientFactory(cfg *config.Config) ClientFactory {
	f := pitchtalk.Factory{
		BaseURL:      cfg.APIBaseURL,
		Origin:       cfg.WebAppOrigin,
		Timeout:      cfg.HTTPTimeout,
		DefaultProxy: cfg.ProxyURL,
	}
	return f.ForIdentity
}

// NewNotifier returns a Discord notifier when configured, otherwise a no-op
func NewNotifier(cfg *config.Config) (notify.Notifier, error) {
	if !cfg.NotificationsEnabled() {
		return notify.Noop{}, nil
	}
	d, err := notify.NewDiscord(cfg.DiscordToken, cfg.DiscordChannelID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBuildNotifier, err)
	}
	slog.Info(LogMsgNotificationsOn, "channel_id", cfg.DiscordChannelID)
	return d, nil
}

// NewApp wires farming workers, the referral job, the pool and the scheduler
// for the given identities. Each identity gets its own client, shared by its
// farming worker and its referral account.
func NewApp(cfg *config.Config, identities []domain.Identity, clients ClientFactory, notifier notify.Notifier) (*App, error) {
	if len(identities) == 0 {
		return nil, domain.ErrNoIdentities
	}

	opts := farming.Options{Grace: cfg.ClaimGrace, MinDelay: cfg.MinDelay}
	workers := make([]*farming.Worker, 0, len(identities))
	accounts := make([]referral.Account, 0, len(identities))

	for _, id := range identities {
		client, err := clients(id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgBuildClient, err)
		}
		workers = append(workers, farming.NewWorker(id, client, notifier, opts))
		accounts = append(accounts, referral.Account{Identity: id, Client: client})
	}

	pool := worker.NewPool(1, PoolQueueSize)
	sched := scheduler.New(pool)
	job := referral.NewJob(accounts, notifier, cfg.ReferralWorkers)
	if err := sched.Schedule(ReferralJobName, cfg.ReferralSchedule, job); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSchedule, err)
	}

	app := &App{
		cfg:        cfg,
		Identities: identities,
		Notifier:   notifier,
		Supervisor: farming.NewSupervisor(workers),
		Referral:   job,
		Pool:       pool,
		Scheduler:  sched,
	}
	if cfg.StatusPort > 0 {
		app.Server = server.NewServer(cfg.StatusPort, app.Supervisor)
	}
	return app, nil
}

// Start launches all components and returns immediately
func (a *App) Start(ctx context.Context) {
	a.Pool.Start()
	a.Supervisor.Start(ctx)
	a.Scheduler.Start()

	if a.cfg.ReferralOnStartup {
		slog.Info(LogMsgStartupReferral)
		if err := a.Scheduler.RunNow(a.Referral); err != nil {
			slog.Warn(LogMsgStartupReferralFail, "error", err)
		}
	}

	if a.Server != nil {
		go func() {
			if err := a.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error(LogMsgStatusServerFailed, "error", err)
			}
		}()
	}
}

// Run starts the app and blocks until ctx is cancelled, then shuts down.
// Workers that fail keep the process alive so scheduled referral passes continue.
func (a *App) Run(ctx context.Context) error {
	a.Start(ctx)
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return GracefulShutdown(shutdownCtx, a.components())
}

func (a *App) components() ShutdownComponents {
	return ShutdownComponents{
		Server:     a.Server,
		Scheduler:  a.Scheduler,
		Supervisor: a.Supervisor,
		Pool:       a.Pool,
	}
}
