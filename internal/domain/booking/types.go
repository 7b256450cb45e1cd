package booking

type Kind string

const (
	KindReservation Kind = "reservation"
	KindInquiry     Kind = "inquiry"
)

func (k Kind) String() string {
	return string(k)
}

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

type InquiryStatus string

const (
	InquiryNew      InquiryStatus = "new"
	InquiryAnswered InquiryStatus = "answered"
	InquiryClosed   InquiryStatus = "closed"
)

// Notification kinds written to the outbox.
const (
	EventReservationConfirmed = "booking.reservation_confirmed"
	EventInquiryReceived      = "booking.inquiry_received"
)
