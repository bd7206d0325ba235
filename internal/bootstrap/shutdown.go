package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"github.com/osse101/PitchBot_Go/internal/farming"
	"github.com/osse101/PitchBot_Go/internal/scheduler"
	"github.com/osse101/PitchBot_Go/internal/server"
	"github.com/osse101/PitchBot_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil components are skipped.
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	Supervisor *farming.Supervisor
	Pool       *worker.Pool
}

// GracefulShutdown stops components in order:
// 1. status server
// 2. scheduler (no new referral passes)
// 3. farming workers (pending waits are cancelled)
// 4. worker pool (in-flight referral pass is cancelled)
//
// Errors are logged and do not stop the sequence; they are returned joined.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) error {
	slog.Info(LogMsgShuttingDown)
	var errs []error

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
			errs = append(errs, err)
		}
	}

	if components.Scheduler != nil {
		if err := components.Scheduler.Stop(ctx); err != nil {
			slog.Error(LogMsgSchedulerStopFailed, "error", err)
			errs = append(errs, err)
		}
	}

	if components.Supervisor != nil {
		if err := components.Supervisor.Shutdown(ctx); err != nil {
			slog.Error(LogMsgSupervisorStopFailed, "error", err)
			errs = append(errs, err)
		}
	}

	if components.Pool != nil {
		components.Pool.Stop()
	}

	slog.Info(LogMsgStopped)
	return errors.Join(errs...)
}
