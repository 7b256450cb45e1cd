package response

import "staybook/internal/usecase/queries"

type CouponError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CouponValidationResponse struct {
	Valid          bool                `json:"valid"`
	DiscountAmount *int64              `json:"discountAmount,omitempty"`
	Coupon         *queries.CouponView `json:"coupon,omitempty"`
	Error          *CouponError        `json:"error,omitempty"`
}

func FromCouponValidation(v *queries.CouponValidationView) CouponValidationResponse {
	if !v.Valid {
		return CouponValidationResponse{
			Valid: false,
			Error: &CouponError{Code: string(v.Reason), Message: v.Message},
		}
	}
	amount := v.DiscountAmount
	return CouponValidationResponse{
		Valid:          true,
		DiscountAmount: &amount,
		Coupon:         v.Coupon,
	}
}
