package repository

import (
	"context"

	"staybook/internal/domain/coupon"
	"staybook/internal/infra"
	"staybook/internal/infra/repository/converter"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CouponWriteQueries interface {
	LockCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
	IncrementCouponRedemptions(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	CreateCouponRedemption(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCouponRedemptionParams) error
}

type CouponRepository struct {
	queries CouponWriteQueries
}

func NewCouponRepository(queries CouponWriteQueries) *CouponRepository {
	return &CouponRepository{queries: queries}
}

func (r *CouponRepository) LockByCode(ctx context.Context, tx sqlc.DBTX, code string) (*coupon.Coupon, error) {
	row, err := r.queries.LockCouponByCode(ctx, tx, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, coupon.ErrNotFound
		}
		return nil, infra.WrapRepoErr("failed to lock coupon", err)
	}
	c, err := converter.CouponToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon", err)
	}
	return c, nil
}

func (r *CouponRepository) Redeem(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon, reservationID uuid.UUID, guestEmail string, discount int64) error {
	n, err := r.queries.IncrementCouponRedemptions(ctx, tx, c.ID())
	if err != nil {
		return infra.WrapRepoErr("failed to increment coupon redemptions", err)
	}
	if n == 0 {
		return coupon.ErrLimitReached
	}

	err = r.queries.CreateCouponRedemption(ctx, tx, sqlc.CreateCouponRedemptionParams{
		CouponID:      c.ID(),
		ReservationID: reservationID,
		GuestEmail:    guestEmail,
		Discount:      discount,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record coupon redemption", err)
	}
	return nil
}
