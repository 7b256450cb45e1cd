package pricing

import (
	"errors"

	"staybook/internal/domain/calendar"
)

var (
	ErrNegativeAmount = errors.New("price amounts cannot be negative")
	ErrDiscountTooBig = errors.New("discount cannot exceed the subtotal")
)

// Breakdown is the itemized price of one stay in whole currency units.
type Breakdown struct {
	PricePerNight int64
	Nights        int
	Subtotal      int64
	CleaningFee   int64
	ServiceFee    int64
	Taxes         int64
	Total         int64
	Currency      string
}

// Price computes the breakdown. Each step is rounded before the next one uses
// it, and taxes apply to subtotal + cleaning fee + service fee.
func Price(nightlyRate int64, checkIn, checkOut calendar.Date, cleaningFee int64, serviceFeeRate, taxRate Rate) (Breakdown, error) {
	stay, err := calendar.NewDateRange(checkIn, checkOut)
	if err != nil {
		return Breakdown{}, err
	}
	if nightlyRate < 0 || cleaningFee < 0 {
		return Breakdown{}, ErrNegativeAmount
	}

	nights := stay.Nights()
	subtotal := int64(nights) * nightlyRate
	serviceFee := serviceFeeRate.Apply(subtotal)
	taxes := taxRate.Apply(subtotal + cleaningFee + serviceFee)

	return Breakdown{
		PricePerNight: nightlyRate,
		Nights:        nights,
		Subtotal:      subtotal,
		CleaningFee:   cleaningFee,
		ServiceFee:    serviceFee,
		Taxes:         taxes,
		Total:         subtotal + cleaningFee + serviceFee + taxes,
	}, nil
}

// Quote is a breakdown with an optional coupon applied.
type Quote struct {
	Breakdown
	CouponCode *string
	Discount   int64
	GrandTotal int64
}

func NewQuote(b Breakdown) Quote {
	return Quote{Breakdown: b, GrandTotal: b.Total}
}

func (q Quote) WithDiscount(code string, discount int64) (Quote, error) {
	if discount < 0 {
		return Quote{}, ErrNegativeAmount
	}
	if discount > q.Subtotal {
		return Quote{}, ErrDiscountTooBig
	}
	q.CouponCode = &code
	q.Discount = discount
	q.GrandTotal = q.Total - discount
	return q, nil
}
