package readstore

import (
	"context"

	"staybook/internal/domain/calendar"
	"staybook/internal/infra"
	"staybook/internal/infra/repository/converter"
	sqlc "staybook/internal/infra/sqlc/generated"
)

type BlockedIntervalReadQueries interface {
	ListBlockedIntervalsInWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlockedIntervalsInWindowParams) ([]sqlc.BlockedIntervals, error)
	ListBlockedIntervalsByProperty(ctx context.Context, db sqlc.DBTX, propertyID int64) ([]sqlc.BlockedIntervals, error)
}

type BlockedIntervalReadStore struct {
	queries BlockedIntervalReadQueries
	db      sqlc.DBTX
}

func NewBlockedIntervalReadStore(queries BlockedIntervalReadQueries, db sqlc.DBTX) *BlockedIntervalReadStore {
	return &BlockedIntervalReadStore{
		queries: queries,
		db:      db,
	}
}

// ListInWindow returns intervals overlapping [from, to), ordered by (start, end, id).
func (r *BlockedIntervalReadStore) ListInWindow(ctx context.Context, propertyID int64, from, to calendar.Date) ([]*calendar.BlockedInterval, error) {
	rows, err := r.queries.ListBlockedIntervalsInWindow(ctx, r.db, sqlc.ListBlockedIntervalsInWindowParams{
		PropertyID:  propertyID,
		WindowStart: converter.DateToPgtype(from),
		WindowEnd:   converter.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked intervals", err)
	}
	return convertIntervals(rows)
}

func (r *BlockedIntervalReadStore) ListByProperty(ctx context.Context, propertyID int64) ([]*calendar.BlockedInterval, error) {
	rows, err := r.queries.ListBlockedIntervalsByProperty(ctx, r.db, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked intervals", err)
	}
	return convertIntervals(rows)
}

func convertIntervals(rows []sqlc.BlockedIntervals) ([]*calendar.BlockedInterval, error) {
	intervals, err := converter.IntervalsToDomain(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert blocked intervals", err)
	}
	return intervals, nil
}
