package commands

import (
	"context"
	"log/slog"
	"strconv"

	"staybook/internal/domain/property"
	"staybook/internal/infra"
	"staybook/internal/infra/ical"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"golang.org/x/sync/singleflight"
)

type CalendarSyncCommands interface {
	// Sync replaces the imported intervals of the property with the current
	// content of its external feed and returns how many were imported.
	Sync(ctx context.Context, slug string) (int, error)
}

type calendarSyncCommandsImpl struct {
	uow    shared.UnitOfWork
	feed   CalendarFeed
	clock  clock.Clock
	logger *slog.Logger
	group  singleflight.Group
}

func NewCalendarSyncCommands(uow shared.UnitOfWork, feed CalendarFeed, clk clock.Clock, logger *slog.Logger) CalendarSyncCommands {
	return &calendarSyncCommandsImpl{
		uow:    uow,
		feed:   feed,
		clock:  clk,
		logger: logger,
	}
}

func (c *calendarSyncCommandsImpl) Sync(ctx context.Context, slug string) (int, error) {
	prop, err := c.uow.CommandReads().PropertyBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, ErrPropertyNotFound
		}
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// concurrent syncs of one property share a single fetch and write. The
	// shared call outlives any one caller; the fetch timeout bounds it.
	v, err, _ := c.group.Do(strconv.FormatInt(prop.ID(), 10), func() (any, error) {
		return c.sync(context.WithoutCancel(ctx), prop)
	})
	if err != nil {
		if se, ok := ical.AsSyncError(err); ok {
			c.logger.Warn("calendar sync failed", "property_slug", slug, "reason", string(se.Reason), "error", err.Error())
		}
		return 0, err
	}
	return v.(int), nil
}

func (c *calendarSyncCommandsImpl) sync(ctx context.Context, prop *property.Property) (int, error) {
	url, err := prop.CalendarFeed()
	if err != nil {
		return 0, &ical.SyncError{Reason: ical.ReasonNoFeed, Err: err}
	}

	now := c.clock.Now()
	intervals, err := c.feed.Import(ctx, url, prop.ID(), now)
	if err != nil {
		return 0, err
	}

	var imported int
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Properties().LockForUpdate(ctx, tx.DB(), prop.ID()); err != nil {
			return err
		}
		n, err := tx.BlockedIntervals().ReplaceImported(ctx, tx.DB(), prop.ID(), intervals)
		if err != nil {
			return err
		}
		imported = n
		return tx.Properties().MarkSynced(ctx, tx.DB(), prop.ID(), now)
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.logger.Info("calendar synced", "property_slug", prop.Slug(), "imported", imported)
	return imported, nil
}
