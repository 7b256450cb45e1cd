package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidNightBounds = errors.New("coupon minimum nights must not exceed maximum nights")
	ErrInvalidWindow      = errors.New("coupon validFrom must not be after validUntil")
	ErrInvalidLimit       = errors.New("coupon limits must be positive")
)

// Constraints are the optional booking conditions of a coupon. A nil field is
// not checked.
type Constraints struct {
	MinSubtotal    *int64
	MaxDiscount    *int64
	MinNights      *int
	MaxNights      *int
	ValidFrom      *time.Time
	ValidUntil     *time.Time
	MaxRedemptions *int
	MaxPerGuest    *int
}

type BookingContext struct {
	Subtotal   int64
	Nights     int
	PropertyID *int64
	GuestEmail string
}

type Coupon struct {
	id                 uuid.UUID
	code               Code
	discount           Discount
	constraints        Constraints
	currentRedemptions int
	isActive           bool
	createdAt          time.Time
	updatedAt          time.Time
}

func NewCoupon(code string, discount Discount, constraints Constraints) (*Coupon, error) {
	couponCode, err := NewCouponCode(code)
	if err != nil {
		return nil, err
	}
	if err := constraints.validate(); err != nil {
		return nil, err
	}
	return &Coupon{
		id:          uuid.New(),
		code:        couponCode,
		discount:    discount,
		constraints: constraints,
		isActive:    true,
	}, nil
}

func ReconstructCoupon(
	id uuid.UUID,
	code Code,
	discount Discount,
	constraints Constraints,
	currentRedemptions int,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:                 id,
		code:               code,
		discount:           discount,
		constraints:        constraints,
		currentRedemptions: currentRedemptions,
		isActive:           isActive,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (c Constraints) validate() error {
	if c.MinNights != nil && c.MaxNights != nil && *c.MinNights > *c.MaxNights {
		return ErrInvalidNightBounds
	}
	if c.ValidFrom != nil && c.ValidUntil != nil && c.ValidFrom.After(*c.ValidUntil) {
		return ErrInvalidWindow
	}
	for _, limit := range []*int{c.MaxRedemptions, c.MaxPerGuest} {
		if limit != nil && *limit < 1 {
			return ErrInvalidLimit
		}
	}
	return nil
}

// Validate runs the checks in order and returns the discount for the booking.
// The first failing check decides the reason. guestRedemptions is how many
// times the booking's guest has already redeemed this coupon.
func (c *Coupon) Validate(now time.Time, booking BookingContext, guestRedemptions int) (int64, error) {
	k := c.constraints

	if !c.isActive {
		return 0, ErrInactive
	}
	if k.ValidFrom != nil && now.Before(*k.ValidFrom) {
		return 0, ErrNotYetValid
	}
	if k.ValidUntil != nil && now.After(*k.ValidUntil) {
		return 0, ErrExpired
	}
	if (k.MinNights != nil && booking.Nights < *k.MinNights) ||
		(k.MaxNights != nil && booking.Nights > *k.MaxNights) {
		return 0, ErrNightsOutOfRange
	}
	if k.MinSubtotal != nil && booking.Subtotal < *k.MinSubtotal {
		return 0, ErrBelowMinimum
	}
	if k.MaxRedemptions != nil && c.currentRedemptions >= *k.MaxRedemptions {
		return 0, ErrLimitReached
	}
	if k.MaxPerGuest != nil && guestRedemptions >= *k.MaxPerGuest {
		return 0, ErrGuestLimitReached
	}

	return c.DiscountFor(booking.Subtotal), nil
}

// DiscountFor applies the cap and never returns more than subtotal.
func (c *Coupon) DiscountFor(subtotal int64) int64 {
	if subtotal <= 0 {
		return 0
	}
	amount := c.discount.Amount(subtotal)
	if c.constraints.MaxDiscount != nil {
		amount = min(amount, *c.constraints.MaxDiscount)
	}
	return max(min(amount, subtotal), 0)
}

func (c *Coupon) LimitsRedemptionsPerGuest() bool {
	return c.constraints.MaxPerGuest != nil
}

func (c *Coupon) ID() uuid.UUID            { return c.id }
func (c *Coupon) Code() Code               { return c.code }
func (c *Coupon) Discount() Discount       { return c.discount }
func (c *Coupon) Constraints() Constraints { return c.constraints }
func (c *Coupon) CurrentRedemptions() int  { return c.currentRedemptions }
func (c *Coupon) IsActive() bool           { return c.isActive }
func (c *Coupon) CreatedAt() time.Time     { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time     { return c.updatedAt }
