//go:build unit || e2e

package builder

import (
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/calendar"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	PropertyID int64
	CheckIn    *string
	CheckOut   *string
	GuestName  string
	GuestEmail string
	GuestPhone *string
	GuestCount int
	Coupon     *string
	Message    *string
}

// NewBookingBuilder defaults to a three night stay for two guests.
func NewBookingBuilder() *BookingBuilder {
	checkIn, checkOut := "2025-07-10", "2025-07-13"
	return &BookingBuilder{
		PropertyID: 1,
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		GuestName:  "Hanako Sato",
		GuestEmail: "hanako@example.com",
		GuestCount: 2,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithDates(checkIn, checkOut string) *BookingBuilder {
	b.CheckIn = &checkIn
	b.CheckOut = &checkOut
	return b
}

func (b *BookingBuilder) WithoutDates() *BookingBuilder {
	b.CheckIn = nil
	b.CheckOut = nil
	return b
}

func (b *BookingBuilder) WithCoupon(code string) *BookingBuilder {
	b.Coupon = &code
	return b
}

func (b *BookingBuilder) WithMessage(msg string) *BookingBuilder {
	b.Message = &msg
	return b
}

func (b *BookingBuilder) WithGuests(n int) *BookingBuilder {
	b.GuestCount = n
	return b
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		PropertyID: b.PropertyID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Guest: reqdto.GuestRequest{
			Name:  b.GuestName,
			Email: b.GuestEmail,
			Phone: b.GuestPhone,
			Count: b.GuestCount,
		},
		AppliedCoupon: b.Coupon,
		Message:       b.Message,
	}
}

func (b *BookingBuilder) BuildInput() commands.BookingInput {
	return commands.BookingInput{
		PropertyID: b.PropertyID,
		CheckIn:    optionalDate(b.CheckIn),
		CheckOut:   optionalDate(b.CheckOut),
		Guest: commands.GuestInput{
			Name:  b.GuestName,
			Email: b.GuestEmail,
			Phone: b.GuestPhone,
			Count: b.GuestCount,
		},
		CouponCode: b.Coupon,
		Message:    b.Message,
	}
}

// BuildView returns the committed booking as the read side reports it.
func (b *BookingBuilder) BuildView(kind booking.Kind) *queries.BookingView {
	view := &queries.BookingView{
		Kind:         kind.String(),
		ID:           uuid.MustParse("0b7c3f5e-1d2a-4e8b-9c6d-5a4f3e2d1c0b"),
		PropertyID:   b.PropertyID,
		PropertySlug: "seaside-cottage",
		CheckIn:      optionalDate(b.CheckIn),
		CheckOut:     optionalDate(b.CheckOut),
		Guest: queries.GuestView{
			Name:  b.GuestName,
			Email: b.GuestEmail,
			Phone: b.GuestPhone,
			Count: b.GuestCount,
		},
		CouponCode: b.Coupon,
		CreatedAt:  time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	switch kind {
	case booking.KindInquiry:
		view.ConfirmationCode = "INQ-ABCD2345"
		view.Status = string(booking.InquiryNew)
		view.Message = b.Message
	default:
		view.ConfirmationCode = "RSV-ABCD2345"
		view.Status = string(booking.ReservationConfirmed)
		view.Note = b.Message
		view.Pricing = &queries.PriceView{
			PricePerNight: 250,
			Nights:        3,
			Subtotal:      750,
			CleaningFee:   85,
			ServiceFee:    90,
			Taxes:         139,
			Total:         1064,
			Currency:      "USD",
			GrandTotal:    1064,
		}
	}
	return view
}

func optionalDate(s *string) *calendar.Date {
	if s == nil {
		return nil
	}
	d := calendar.MustParseDate(*s)
	return &d
}
