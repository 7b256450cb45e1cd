package converter

import (
	"fmt"

	"staybook/internal/domain/coupon"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"
)

// discount_value is numeric(12,2): whole currency units for fixed coupons
// (enforced by coupons_fixed_whole_units) and a percent (12.50) for
// percentage coupons, which maps to hundredths.
func discountScale(kind string) int32 {
	if coupon.DiscountType(kind) == coupon.DiscountPercentage {
		return 2
	}
	return 0
}

func CouponToDomain(row sqlc.Coupons) (*coupon.Coupon, error) {
	code, err := coupon.NewCouponCode(row.Code)
	if err != nil {
		return nil, fmt.Errorf("coupon %s: %w", row.ID, err)
	}
	value, err := pgconv.ScaledInt64FromNumeric(row.DiscountValue, discountScale(row.DiscountType))
	if err != nil {
		return nil, fmt.Errorf("coupon %s discount value: %w", row.ID, err)
	}
	discount, err := coupon.NewDiscount(row.DiscountType, value)
	if err != nil {
		return nil, fmt.Errorf("coupon %s: %w", row.ID, err)
	}

	constraints := coupon.Constraints{
		MinSubtotal:    pgconv.Int64PtrFromPgtype(row.MinSubtotal),
		MaxDiscount:    pgconv.Int64PtrFromPgtype(row.MaxDiscount),
		MinNights:      pgconv.IntPtrFromPgtype(row.MinNights),
		MaxNights:      pgconv.IntPtrFromPgtype(row.MaxNights),
		ValidFrom:      pgconv.TimePtrFromPgtype(row.ValidFrom),
		ValidUntil:     pgconv.TimePtrFromPgtype(row.ValidUntil),
		MaxRedemptions: pgconv.IntPtrFromPgtype(row.MaxRedemptions),
		MaxPerGuest:    pgconv.IntPtrFromPgtype(row.MaxPerGuest),
	}

	return coupon.ReconstructCoupon(
		row.ID,
		code,
		discount,
		constraints,
		int(row.CurrentRedemptions),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
