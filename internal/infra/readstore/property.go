package readstore

import (
	"context"

	"staybook/internal/domain/property"
	"staybook/internal/infra"
	"staybook/internal/infra/repository/converter"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"
)

type PropertyReadQueries interface {
	GetPropertyByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Properties, error)
	GetPropertyBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.Properties, error)
}

type PropertyReadStore struct {
	queries PropertyReadQueries
	db      sqlc.DBTX
}

func NewPropertyReadStore(queries PropertyReadQueries, db sqlc.DBTX) *PropertyReadStore {
	return &PropertyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PropertyReadStore) FindByID(ctx context.Context, id int64) (*property.Property, error) {
	row, err := r.queries.GetPropertyByID(ctx, r.db, id)
	return toProperty(row, err)
}

func (r *PropertyReadStore) FindBySlug(ctx context.Context, slug string) (*property.Property, error) {
	row, err := r.queries.GetPropertyBySlug(ctx, r.db, slug)
	return toProperty(row, err)
}

func toProperty(row sqlc.Properties, err error) (*property.Property, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get property", err)
	}
	p, err := converter.PropertyToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert property", err)
	}
	return p, nil
}
