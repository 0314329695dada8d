package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"vinyl-record-house/internal/pkg/clock"
	"vinyl-record-house/internal/pkg/config"
	"vinyl-record-house/internal/usecase/shared"
)

// Relay drains the notification outbox. Delivery is at-least-once: a crash
// between publish and commit republishes the batch.
type Relay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	cfg       config.OutboxConfig
	clock     clock.Clock

	stop chan struct{}
	wg   sync.WaitGroup
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, cfg config.OutboxConfig, clk clock.Clock) *Relay {
	return &Relay{
		uow:       uow,
		publisher: publisher,
		cfg:       cfg,
		clock:     clk,
		stop:      make(chan struct{}),
	}
}

// RunOnce publishes one batch of due jobs and returns how many were delivered.
// Each publish gets its own PublishTimeout; the bookkeeping runs on the batch
// context, so a hung broker still ends with the job marked failed.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), r.cfg.BatchSize)
		if err != nil {
			return err
		}
		for _, job := range jobs {
			if pubErr := r.publish(ctx, job); pubErr != nil {
				retryAt := r.clock.Now().Add(r.backoff(job.Attempts))
				slog.Warn("notification publish failed",
					"job_id", job.ID,
					"kind", job.Kind,
					"attempt", job.Attempts+1,
					"error", pubErr.Error())
				if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, pubErr.Error(), retryAt, r.cfg.MaxAttempts); err != nil {
					return err
				}
				continue
			}
			if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	return sent, err
}

func (r *Relay) publish(ctx context.Context, job shared.OutboxJob) error {
	pubCtx, cancel := context.WithTimeout(ctx, r.publishTimeout())
	defer cancel()
	return r.publisher.Publish(pubCtx, job.Topic, job.Key, job.Payload)
}

func (r *Relay) publishTimeout() time.Duration {
	if r.cfg.PublishTimeout > 0 {
		return r.cfg.PublishTimeout
	}
	return 3 * time.Second
}

// batchTimeout bounds one tick: every job may use its full publish timeout,
// plus room for the claim, the marks and the commit.
func (r *Relay) batchTimeout() time.Duration {
	return time.Duration(max(r.cfg.BatchSize, 1))*r.publishTimeout() + 10*time.Second
}

func (r *Relay) backoff(attempts int32) time.Duration {
	d := r.cfg.RetryBackoff
	for i := int32(0); i < attempts && d < time.Hour; i++ {
		d *= 2
	}
	return d
}

func (r *Relay) Start() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.cfg.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-r.stop:
				return
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), r.batchTimeout())
				if n, err := r.RunOnce(ctx); err != nil {
					slog.Error("outbox relay batch failed", "error", err.Error())
				} else if n > 0 {
					slog.Debug("outbox relay batch sent", "count", n)
				}
				cancel()
			}
		}
	}()
}

func (r *Relay) Stop(ctx context.Context) error {
	close(r.stop)
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return r.publisher.Close()
}
