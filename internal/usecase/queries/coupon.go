package queries

import (
	"context"
	"strings"

	"staybook/internal/domain/coupon"
	"staybook/internal/pkg/clock"

	"github.com/google/uuid"
)

type CouponReadStore interface {
	FindByCode(ctx context.Context, code string) (*coupon.Coupon, error)
	CountGuestRedemptions(ctx context.Context, couponID uuid.UUID, email string) (int, error)
}

type CouponCheck struct {
	Code       string
	Subtotal   int64
	Nights     int
	PropertyID *int64
	GuestEmail *string
}

type CouponQueries interface {
	// Validate previews a coupon without redeeming it. A rejected coupon is
	// a successful result with Valid=false.
	Validate(ctx context.Context, check CouponCheck) (*CouponValidationView, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
	clock     clock.Clock
}

func NewCouponQueries(readStore CouponReadStore, clk clock.Clock) CouponQueries {
	return &couponQueriesImpl{
		readStore: readStore,
		clock:     clk,
	}
}

func (q *couponQueriesImpl) Validate(ctx context.Context, check CouponCheck) (*CouponValidationView, error) {
	code, err := coupon.NewCouponCode(check.Code)
	if err != nil {
		return rejected(coupon.ErrNotFound), nil
	}

	c, err := q.readStore.FindByCode(ctx, code.String())
	if err != nil {
		if ce, ok := coupon.AsError(err); ok {
			return rejected(ce), nil
		}
		return nil, err
	}

	var email string
	if check.GuestEmail != nil {
		email = strings.ToLower(strings.TrimSpace(*check.GuestEmail))
	}
	guestRedemptions := 0
	if email != "" && c.LimitsRedemptionsPerGuest() {
		guestRedemptions, err = q.readStore.CountGuestRedemptions(ctx, c.ID(), email)
		if err != nil {
			return nil, err
		}
	}

	discount, err := c.Validate(q.clock.Now(), coupon.BookingContext{
		Subtotal:   check.Subtotal,
		Nights:     check.Nights,
		PropertyID: check.PropertyID,
		GuestEmail: email,
	}, guestRedemptions)
	if err != nil {
		if ce, ok := coupon.AsError(err); ok {
			return rejected(ce), nil
		}
		return nil, err
	}

	view := NewCouponView(c)
	return &CouponValidationView{
		Valid:          true,
		DiscountAmount: discount,
		Coupon:         &view,
	}, nil
}

func rejected(ce *coupon.Error) *CouponValidationView {
	return &CouponValidationView{
		Valid:   false,
		Reason:  ce.Reason,
		Message: ce.Error(),
	}
}
