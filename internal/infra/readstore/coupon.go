package readstore

import (
	"context"

	"staybook/internal/domain/coupon"
	"staybook/internal/infra"
	"staybook/internal/infra/repository/converter"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CouponReadQueries interface {
	GetCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
	CountGuestRedemptions(ctx context.Context, db sqlc.DBTX, arg sqlc.CountGuestRedemptionsParams) (int64, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries CouponReadQueries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByCode returns coupon.ErrNotFound for unknown codes so callers can
// report NOT_FOUND like any other coupon rejection.
func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, coupon.ErrNotFound
		}
		return nil, infra.WrapRepoErr("failed to get coupon", err)
	}
	c, err := converter.CouponToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon", err)
	}
	return c, nil
}

func (r *CouponReadStore) CountGuestRedemptions(ctx context.Context, couponID uuid.UUID, email string) (int, error) {
	n, err := r.queries.CountGuestRedemptions(ctx, r.db, sqlc.CountGuestRedemptionsParams{
		CouponID:   couponID,
		GuestEmail: email,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count guest redemptions", err)
	}
	return int(n), nil
}
