package appointments

import (
	"context"
	"time"

	"mosefak-service/internal/app/config"
	"mosefak-service/internal/app/contracts"
	"mosefak-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Worker periodically auto-cancels unpaid appointments past their payment due
// time. One instance at a time runs the sweep, guarded by a redis leader lock.
type Worker struct {
	log                *zap.Logger
	cfg                *config.InternalConfig
	locker             contracts.LockerService
	appointmentUsecase contracts.AppointmentUsecase
	cron               *cron.Cron
	runCtx             context.Context
	cancel             context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, appointmentUsecase contracts.AppointmentUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, appointmentUsecase: appointmentUsecase}
}

// Start begins the periodic sweep loop.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.ReaperCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("appointments.worker: failed to schedule with provided cron spec; falling back to @every 5m", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@every 5m", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop gracefully stops the cron and any in-flight sweep.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := time.Duration(w.cfg.App.ReaperLockTTLInSeconds) * time.Second
	acquired, token, err := w.locker.TryLock(ctx, constvars.ReaperLeaderLockKey, ttl)
	if err != nil {
		w.log.Warn("appointments.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("appointments.worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(ctx, constvars.ReaperLeaderLockKey, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(ctx, constvars.ReaperLeaderLockKey, token, ttl); err != nil {
					w.log.Warn("appointments.worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	cancelled, err := w.appointmentUsecase.AutoCancelExpired(ctx)
	if err != nil {
		w.log.Warn("appointments.worker: sweep failed", zap.Error(err))
		return
	}
	if cancelled > 0 {
		w.log.Info("appointments.worker: auto-cancelled unpaid appointments", zap.Int("count", cancelled))
	}
}
