package commands

import (
	"context"
	"log/slog"

	"staybook/internal/domain/calendar"
	"staybook/internal/infra"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBlockedIntervalNotFound = errs.New("blocked interval not found")

type BlockDatesInput struct {
	Start  calendar.Date
	End    calendar.Date
	Reason *string
}

type BlockedDateCommands interface {
	Add(ctx context.Context, slug string, in BlockDatesInput) (*queries.BlockedIntervalView, error)
	// Remove deletes a manual interval. Imported and reservation intervals
	// are owned by their source and cannot be removed here.
	Remove(ctx context.Context, slug string, id uuid.UUID) error
}

type blockedDateCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewBlockedDateCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) BlockedDateCommands {
	return &blockedDateCommandsImpl{
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

func (b *blockedDateCommandsImpl) Add(ctx context.Context, slug string, in BlockDatesInput) (*queries.BlockedIntervalView, error) {
	propertyID, err := b.propertyBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	interval, err := calendar.NewManualInterval(propertyID, in.Start, in.End, in.Reason, b.clock.Now())
	if err != nil {
		if errs.Is(err, calendar.ErrReasonTooLong) {
			return nil, errs.NewValidation("reason", err)
		}
		return nil, errs.NewValidation("end", err)
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Properties().LockForUpdate(ctx, tx.DB(), propertyID); err != nil {
			return err
		}
		return tx.BlockedIntervals().Create(ctx, tx.DB(), interval)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	b.logger.Info("dates blocked", "property_slug", slug, "interval_id", interval.ID().String(), "range", interval.Span().String())
	view := queries.NewBlockedIntervalView(interval, true)
	return &view, nil
}

func (b *blockedDateCommandsImpl) Remove(ctx context.Context, slug string, id uuid.UUID) error {
	propertyID, err := b.propertyBySlug(ctx, slug)
	if err != nil {
		return err
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Properties().LockForUpdate(ctx, tx.DB(), propertyID); err != nil {
			return err
		}
		interval, err := tx.BlockedIntervals().FindByID(ctx, tx.DB(), propertyID, id)
		if err != nil {
			return err
		}
		if err := interval.EnsureRemovable(); err != nil {
			return err
		}
		return tx.BlockedIntervals().DeleteManual(ctx, tx.DB(), propertyID, id)
	})
	if err != nil {
		if errs.Is(err, calendar.ErrNotManuallyRemovable) {
			return err
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBlockedIntervalNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	b.logger.Info("blocked dates removed", "property_slug", slug, "interval_id", id.String())
	return nil
}

func (b *blockedDateCommandsImpl) propertyBySlug(ctx context.Context, slug string) (int64, error) {
	prop, err := b.uow.CommandReads().PropertyBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, ErrPropertyNotFound
		}
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return prop.ID(), nil
}
