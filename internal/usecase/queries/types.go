package queries

import (
	"time"

	"staybook/internal/domain/calendar"
	"staybook/internal/domain/coupon"
	"staybook/internal/domain/pricing"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

type PriceView struct {
	PricePerNight int64   `json:"pricePerNight"`
	Nights        int     `json:"nights"`
	Subtotal      int64   `json:"subtotal"`
	CleaningFee   int64   `json:"cleaningFee"`
	ServiceFee    int64   `json:"serviceFee"`
	Taxes         int64   `json:"taxes"`
	Total         int64   `json:"total"`
	Currency      string  `json:"currency"`
	CouponCode    *string `json:"couponCode,omitempty"`
	Discount      int64   `json:"discount"`
	GrandTotal    int64   `json:"grandTotal"`
}

func NewPriceView(q pricing.Quote) PriceView {
	return PriceView{
		PricePerNight: q.PricePerNight,
		Nights:        q.Nights,
		Subtotal:      q.Subtotal,
		CleaningFee:   q.CleaningFee,
		ServiceFee:    q.ServiceFee,
		Taxes:         q.Taxes,
		Total:         q.Total,
		Currency:      q.Currency,
		CouponCode:    q.CouponCode,
		Discount:      q.Discount,
		GrandTotal:    q.GrandTotal,
	}
}

type GuestView struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
	Count int     `json:"count"`
}

// BookingView is either a reservation or an inquiry; Kind tells which.
type BookingView struct {
	Kind             string         `json:"kind"`
	ID               uuid.UUID      `json:"id"`
	PropertyID       int64          `json:"propertyId"`
	PropertySlug     string         `json:"propertySlug"`
	CheckIn          *calendar.Date `json:"checkIn,omitempty"`
	CheckOut         *calendar.Date `json:"checkOut,omitempty"`
	Guest            GuestView      `json:"guest"`
	Pricing          *PriceView     `json:"pricing,omitempty"`
	CouponCode       *string        `json:"couponCode,omitempty"`
	ConfirmationCode string         `json:"confirmationCode"`
	Status           string         `json:"status"`
	Note             *string        `json:"note,omitempty"`
	Message          *string        `json:"message,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
}

// BlockedIntervalView is the public shape of a blocked span. Reason is only
// filled for admin callers.
type BlockedIntervalView struct {
	ID     uuid.UUID       `json:"id"`
	Start  calendar.Date   `json:"start"`
	End    calendar.Date   `json:"end"`
	Source calendar.Source `json:"source"`
	Reason *string         `json:"reason,omitempty"`
}

func NewBlockedIntervalView(b *calendar.BlockedInterval, withReason bool) BlockedIntervalView {
	v := BlockedIntervalView{
		ID:     b.ID(),
		Start:  b.Start(),
		End:    b.End(),
		Source: b.Source(),
	}
	if withReason {
		v.Reason = b.Reason()
	}
	return v
}

type AvailabilityView struct {
	PropertyID    int64                 `json:"propertyId"`
	From          calendar.Date         `json:"from"`
	To            calendar.Date         `json:"to"`
	BlockedDates  []BlockedIntervalView `json:"blockedDates"`
	DisabledDates []calendar.Date       `json:"disabledDates"`
	MinNights     int                   `json:"minNights"`
	MaxNights     *int                  `json:"maxNights"`
}

type CouponView struct {
	Code          string              `json:"code"`
	DiscountType  coupon.DiscountType `json:"discountType"`
	DiscountValue int64               `json:"discountValue"`
	MaxDiscount   *int64              `json:"maxDiscount,omitempty"`
	MinSubtotal   *int64              `json:"minSubtotal,omitempty"`
	ValidUntil    *time.Time          `json:"validUntil,omitempty"`
}

func NewCouponView(c *coupon.Coupon) CouponView {
	k := c.Constraints()
	return CouponView{
		Code:          c.Code().String(),
		DiscountType:  c.Discount().Type(),
		DiscountValue: c.Discount().Value(),
		MaxDiscount:   k.MaxDiscount,
		MinSubtotal:   k.MinSubtotal,
		ValidUntil:    k.ValidUntil,
	}
}

// CouponValidationView carries a rejection as data, not as an error.
type CouponValidationView struct {
	Valid          bool          `json:"valid"`
	DiscountAmount int64         `json:"discountAmount"`
	Coupon         *CouponView   `json:"coupon,omitempty"`
	Reason         coupon.Reason `json:"-"`
	Message        string        `json:"-"`
}
