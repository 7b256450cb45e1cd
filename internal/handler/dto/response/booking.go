package response

import (
	"staybook/internal/domain/booking"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"
)

type BookingResponse struct {
	Kind        string               `json:"kind"`
	Reservation *queries.BookingView `json:"reservation,omitempty"`
	Inquiry     *queries.BookingView `json:"inquiry,omitempty"`
}

func FromBookingResult(r *commands.BookingResult) BookingResponse {
	return FromBookingView(r.Booking)
}

func FromBookingView(v *queries.BookingView) BookingResponse {
	resp := BookingResponse{Kind: v.Kind}
	if v.Kind == booking.KindInquiry.String() {
		resp.Inquiry = v
	} else {
		resp.Reservation = v
	}
	return resp
}
