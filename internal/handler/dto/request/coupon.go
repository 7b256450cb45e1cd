package request

import "staybook/internal/usecase/queries"

type ValidateCouponRequest struct {
	Code       string  `json:"code" binding:"required,max=64"`
	Subtotal   int64   `json:"subtotal" binding:"min=0"`
	Nights     int     `json:"nights" binding:"min=0"`
	PropertyID *int64  `json:"propertyId,omitempty"`
	GuestEmail *string `json:"guestEmail,omitempty" binding:"omitempty,email"`
}

func (r ValidateCouponRequest) ToCheck() queries.CouponCheck {
	return queries.CouponCheck{
		Code:       r.Code,
		Subtotal:   r.Subtotal,
		Nights:     r.Nights,
		PropertyID: r.PropertyID,
		GuestEmail: r.GuestEmail,
	}
}
