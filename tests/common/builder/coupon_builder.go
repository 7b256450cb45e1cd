//go:build unit || e2e

package builder

import (
	"time"

	"staybook/internal/domain/coupon"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponBuilder struct {
	ID                 uuid.UUID
	Code               string
	DiscountType       string
	DiscountValue      int64
	Constraints        coupon.Constraints
	CurrentRedemptions int
	IsActive           bool
}

// NewCouponBuilder defaults to a 10% coupon without constraints.
func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:            uuid.MustParse("7d1b9c1e-4a52-4f0e-9a59-2f0b1f6a0c01"),
		Code:          "SUMMER10",
		DiscountType:  "percentage",
		DiscountValue: 1000,
		IsActive:      true,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	code, err := coupon.NewCouponCode(b.Code)
	if err != nil {
		return nil, err
	}
	discount, err := coupon.NewDiscount(b.DiscountType, b.DiscountValue)
	if err != nil {
		return nil, err
	}
	if _, err := coupon.NewCoupon(b.Code, discount, b.Constraints); err != nil {
		return nil, err
	}
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return coupon.ReconstructCoupon(b.ID, code, discount, b.Constraints, b.CurrentRedemptions, b.IsActive, now, now), nil
}

func (b *CouponBuilder) MustBuildDomain() *coupon.Coupon {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}

// BuildInfra returns the row as stored; percentages are numeric percent values.
func (b *CouponBuilder) BuildInfra() sqlc.Coupons {
	now := pgtype.Timestamptz{Time: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Valid: true}
	value := pgconv.NumericFromScaledInt64(b.DiscountValue, 0)
	if b.DiscountType == "percentage" {
		value = pgconv.NumericFromScaledInt64(b.DiscountValue, 2)
	}
	k := b.Constraints
	return sqlc.Coupons{
		ID:                 b.ID,
		Code:               b.Code,
		DiscountType:       b.DiscountType,
		DiscountValue:      value,
		MinSubtotal:        pgconv.Int64PtrToPgtype(k.MinSubtotal),
		MaxDiscount:        pgconv.Int64PtrToPgtype(k.MaxDiscount),
		MinNights:          pgconv.IntPtrToPgtype(k.MinNights),
		MaxNights:          pgconv.IntPtrToPgtype(k.MaxNights),
		ValidFrom:          pgconv.TimePtrToPgtype(k.ValidFrom),
		ValidUntil:         pgconv.TimePtrToPgtype(k.ValidUntil),
		MaxRedemptions:     pgconv.IntPtrToPgtype(k.MaxRedemptions),
		MaxPerGuest:        pgconv.IntPtrToPgtype(k.MaxPerGuest),
		CurrentRedemptions: int32(b.CurrentRedemptions), // #nosec G115 -- test data
		IsActive:           b.IsActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithFixed(amount int64) *CouponBuilder {
	b.DiscountType = "fixed"
	b.DiscountValue = amount
	return b
}

func (b *CouponBuilder) WithPercent(hundredths int64) *CouponBuilder {
	b.DiscountType = "percentage"
	b.DiscountValue = hundredths
	return b
}

func (b *CouponBuilder) WithConstraints(mutate func(*coupon.Constraints)) *CouponBuilder {
	mutate(&b.Constraints)
	return b
}

func (b *CouponBuilder) WithRedemptions(n int) *CouponBuilder {
	b.CurrentRedemptions = n
	return b
}

func (b *CouponBuilder) AsInactive() *CouponBuilder {
	b.IsActive = false
	return b
}
