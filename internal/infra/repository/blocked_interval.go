package repository

import (
	"context"

	"staybook/internal/domain/calendar"
	"staybook/internal/infra"
	"staybook/internal/infra/repository/converter"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BlockedIntervalWriteQueries interface {
	ListBlockedIntervalsEndingAfter(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlockedIntervalsEndingAfterParams) ([]sqlc.BlockedIntervals, error)
	GetBlockedIntervalByID(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBlockedIntervalByIDParams) (sqlc.BlockedIntervals, error)
	CreateBlockedInterval(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBlockedIntervalParams) error
	DeleteBlockedIntervalsBySource(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteBlockedIntervalsBySourceParams) (int64, error)
	DeleteManualBlockedInterval(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteManualBlockedIntervalParams) (int64, error)
}

type BlockedIntervalRepository struct {
	queries BlockedIntervalWriteQueries
}

func NewBlockedIntervalRepository(queries BlockedIntervalWriteQueries) *BlockedIntervalRepository {
	return &BlockedIntervalRepository{queries: queries}
}

// ListEndingAfter returns the intervals that still cover a night on or after
// the given date, which is all the availability check at commit needs.
func (r *BlockedIntervalRepository) ListEndingAfter(ctx context.Context, tx sqlc.DBTX, propertyID int64, after calendar.Date) ([]*calendar.BlockedInterval, error) {
	rows, err := r.queries.ListBlockedIntervalsEndingAfter(ctx, tx, sqlc.ListBlockedIntervalsEndingAfterParams{
		PropertyID: propertyID,
		EndDate:    converter.DateToPgtype(after),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked intervals", err)
	}
	intervals, err := converter.IntervalsToDomain(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert blocked intervals", err)
	}
	return intervals, nil
}

func (r *BlockedIntervalRepository) FindByID(ctx context.Context, tx sqlc.DBTX, propertyID int64, id uuid.UUID) (*calendar.BlockedInterval, error) {
	row, err := r.queries.GetBlockedIntervalByID(ctx, tx, sqlc.GetBlockedIntervalByIDParams{ID: id, PropertyID: propertyID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("blocked interval not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get blocked interval", err)
	}
	iv, err := converter.IntervalToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert blocked interval", err)
	}
	return iv, nil
}

func (r *BlockedIntervalRepository) Create(ctx context.Context, tx sqlc.DBTX, interval *calendar.BlockedInterval) error {
	if err := r.queries.CreateBlockedInterval(ctx, tx, converter.IntervalToCreateParams(interval)); err != nil {
		return infra.WrapRepoErr("failed to create blocked interval", err)
	}
	return nil
}

// ReplaceImported swaps every ical-import interval of the property for the
// given set. Call it inside the transaction holding the property lock.
func (r *BlockedIntervalRepository) ReplaceImported(ctx context.Context, tx sqlc.DBTX, propertyID int64, intervals []*calendar.BlockedInterval) (int, error) {
	_, err := r.queries.DeleteBlockedIntervalsBySource(ctx, tx, sqlc.DeleteBlockedIntervalsBySourceParams{
		PropertyID: propertyID,
		Source:     calendar.SourceICalImport.String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete imported intervals", err)
	}
	for _, iv := range intervals {
		if err := r.Create(ctx, tx, iv); err != nil {
			return 0, err
		}
	}
	return len(intervals), nil
}

func (r *BlockedIntervalRepository) DeleteManual(ctx context.Context, tx sqlc.DBTX, propertyID int64, id uuid.UUID) error {
	n, err := r.queries.DeleteManualBlockedInterval(ctx, tx, sqlc.DeleteManualBlockedIntervalParams{ID: id, PropertyID: propertyID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete blocked interval", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("blocked interval not found", nil, infra.KindNotFound)
	}
	return nil
}
