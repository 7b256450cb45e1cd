package repository

import (
	"context"
	"time"

	"staybook/internal/domain/property"
	"staybook/internal/infra"
	"staybook/internal/infra/repository/converter"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"
)

type PropertyWriteQueries interface {
	LockPropertyForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Properties, error)
	MarkPropertySynced(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkPropertySyncedParams) error
}

type PropertyRepository struct {
	queries PropertyWriteQueries
}

func NewPropertyRepository(queries PropertyWriteQueries) *PropertyRepository {
	return &PropertyRepository{queries: queries}
}

func (r *PropertyRepository) LockForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*property.Property, error) {
	row, err := r.queries.LockPropertyForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock property", err)
	}
	p, err := converter.PropertyToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert property", err)
	}
	return p, nil
}

func (r *PropertyRepository) MarkSynced(ctx context.Context, tx sqlc.DBTX, id int64, at time.Time) error {
	err := r.queries.MarkPropertySynced(ctx, tx, sqlc.MarkPropertySyncedParams{
		ID:               id,
		IcalLastSyncedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark property synced", err)
	}
	return nil
}
