package commands

import (
	"context"
	"log/slog"
	"time"

	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"
)

const maxRelayBackoff = time.Hour

type RelayResult struct {
	Sent   int
	Failed int
}

type NotificationRelay interface {
	// RunOnce publishes one batch of due jobs.
	RunOnce(ctx context.Context) (RelayResult, error)
	// Run polls until ctx is cancelled.
	Run(ctx context.Context) error
}

type notificationRelayImpl struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	clock     clock.Clock
	cfg       config.NotifyConfig
	logger    *slog.Logger
}

func NewNotificationRelay(uow shared.UnitOfWork, publisher EventPublisher, clk clock.Clock, cfg config.NotifyConfig, logger *slog.Logger) NotificationRelay {
	return &notificationRelayImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		logger:    logger,
	}
}

func (r *notificationRelayImpl) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
			r.logger.Error("notification relay batch failed", "error", err.Error())
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// RunOnce holds the row locks of the claimed jobs while publishing, so two
// relays never send the same job concurrently. Delivery is at least once.
func (r *notificationRelayImpl) RunOnce(ctx context.Context) (RelayResult, error) {
	var result RelayResult

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = RelayResult{}
		now := r.clock.Now()

		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			pubErr := r.publisher.Publish(ctx, job.Topic, job.ID.String(), job.Kind, job.Payload)
			if pubErr == nil {
				if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID, now); err != nil {
					return err
				}
				result.Sent++
				r.logger.Info("notification published", "job_id", job.ID.String(), "topic", job.Topic)
				continue
			}

			status, retryAt := r.nextAttempt(job, now)
			if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, status, pubErr.Error(), retryAt); err != nil {
				return err
			}
			result.Failed++
			r.logger.Warn("notification publish failed",
				"job_id", job.ID.String(),
				"topic", job.Topic,
				"attempts", job.Attempts+1,
				"status", status,
				"error", pubErr.Error(),
			)
		}
		return nil
	})
	if err != nil {
		return RelayResult{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return result, nil
}

// nextAttempt doubles the backoff per failed attempt, capped at an hour. A job
// that used up its attempts is parked as failed.
func (r *notificationRelayImpl) nextAttempt(job shared.NotificationJob, now time.Time) (string, time.Time) {
	attempts := job.Attempts + 1
	if attempts >= r.cfg.MaxAttempts {
		return shared.NotificationFailed, now
	}
	backoff := r.cfg.RetryBackoff
	for i := int32(1); i < attempts && backoff < maxRelayBackoff; i++ {
		backoff *= 2
	}
	return shared.NotificationQueued, now.Add(min(backoff, maxRelayBackoff))
}
