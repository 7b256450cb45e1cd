package request

import (
	"strings"

	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
)

type GuestRequest struct {
	Name  string  `json:"name" binding:"required,max=200"`
	Email string  `json:"email" binding:"required,email"`
	Phone *string `json:"phone,omitempty" binding:"omitempty,max=50"`
	Count int     `json:"count" binding:"required,min=1"`
}

type CreateBookingRequest struct {
	PropertyID    int64        `json:"propertyId" binding:"required,min=1"`
	CheckIn       *string      `json:"checkIn,omitempty" binding:"omitempty,calendardate"`
	CheckOut      *string      `json:"checkOut,omitempty" binding:"omitempty,calendardate"`
	Guest         GuestRequest `json:"guest" binding:"required"`
	AppliedCoupon *string      `json:"appliedCoupon,omitempty" binding:"omitempty,max=64"`
	Message       *string      `json:"message,omitempty"`
}

func (r CreateBookingRequest) GetCouponCode() *string {
	if r.AppliedCoupon == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.AppliedCoupon)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateBookingRequest) ToInput() (commands.BookingInput, error) {
	checkIn, err := parseOptionalDate(r.CheckIn)
	if err != nil {
		return commands.BookingInput{}, errs.NewValidation("checkIn", err)
	}
	checkOut, err := parseOptionalDate(r.CheckOut)
	if err != nil {
		return commands.BookingInput{}, errs.NewValidation("checkOut", err)
	}
	return commands.BookingInput{
		PropertyID: r.PropertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guest: commands.GuestInput{
			Name:  r.Guest.Name,
			Email: r.Guest.Email,
			Phone: r.Guest.Phone,
			Count: r.Guest.Count,
		},
		CouponCode: r.GetCouponCode(),
		Message:    r.Message,
	}, nil
}
