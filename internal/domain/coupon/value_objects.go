package coupon

import (
	"errors"
	"regexp"
	"strings"

	"staybook/internal/domain/pricing"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountType    = errors.New("discount type must be percentage or fixed")
	ErrInvalidDiscountAmount  = errors.New("discount amount must be positive")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

// Code is compared case-insensitively, so it is kept upper-cased.
type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func (t DiscountType) String() string {
	return string(t)
}

type Discount struct {
	kind    DiscountType
	amount  int64
	percent pricing.Rate
}

func NewFixedDiscount(amount int64) (Discount, error) {
	if amount <= 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{kind: DiscountFixed, amount: amount}, nil
}

// NewPercentageDiscount takes hundredths of a percent: 1000 is 10%.
func NewPercentageDiscount(hundredths int64) (Discount, error) {
	if hundredths <= 0 || hundredths > 10000 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{kind: DiscountPercentage, percent: pricing.RateFromPercent(hundredths)}, nil
}

// NewDiscount builds a discount from its stored form. value is whole currency
// units for fixed discounts and hundredths of a percent for percentages.
func NewDiscount(kind string, value int64) (Discount, error) {
	switch DiscountType(kind) {
	case DiscountFixed:
		return NewFixedDiscount(value)
	case DiscountPercentage:
		return NewPercentageDiscount(value)
	default:
		return Discount{}, ErrInvalidDiscountType
	}
}

func (d Discount) Type() DiscountType { return d.kind }
func (d Discount) IsPercentage() bool { return d.kind == DiscountPercentage }

// Value is the stored value, see NewDiscount.
func (d Discount) Value() int64 {
	if d.IsPercentage() {
		return d.percent.BasisPoints()
	}
	return d.amount
}

// Amount computes the raw discount for subtotal before any cap.
func (d Discount) Amount(subtotal int64) int64 {
	if d.IsPercentage() {
		return d.percent.Apply(subtotal)
	}
	return d.amount
}
