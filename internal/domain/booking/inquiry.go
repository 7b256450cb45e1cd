package booking

import (
	"errors"
	"time"

	"staybook/internal/domain/calendar"
	"staybook/internal/domain/pricing"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMessageRequired = errors.New("a message is required when no dates are given")
	ErrMessageTooLong  = errors.New("message is too long")
)

const maxMessageLength = 5000

// Inquiry is a booking request the host answers by hand. Either date may be
// missing; only a request with both carries a stay and a quote.
type Inquiry struct {
	id               uuid.UUID
	propertyID       int64
	checkIn          *calendar.Date
	checkOut         *calendar.Date
	stay             *calendar.DateRange
	guest            Guest
	message          string
	quote            *pricing.Quote
	confirmationCode string
	status           InquiryStatus
	createdAt        time.Time
}

func NewInquiry(
	services *Services,
	propertyID int64,
	checkIn, checkOut *calendar.Date,
	guest Guest,
	message *string,
	quote *pricing.Quote,
) (*Inquiry, error) {
	msg, err := normalizeText(message, maxMessageLength)
	if err != nil {
		return nil, errs.NewValidation("message", ErrMessageTooLong)
	}
	if msg == nil && checkIn == nil && checkOut == nil {
		return nil, errs.NewValidation("message", ErrMessageRequired)
	}
	var stay *calendar.DateRange
	if checkIn != nil && checkOut != nil {
		r, err := calendar.NewDateRange(*checkIn, *checkOut)
		if err != nil {
			return nil, errs.NewValidation("checkOut", err)
		}
		stay = &r
	}
	if quote != nil && (stay == nil || quote.Nights != stay.Nights()) {
		return nil, ErrQuoteNightsDiff
	}
	code, err := services.Codes.Generate(KindInquiry)
	if err != nil {
		return nil, errs.Wrap(err, "generate confirmation code")
	}
	var text string
	if msg != nil {
		text = *msg
	}
	return &Inquiry{
		id:               uuid.New(),
		propertyID:       propertyID,
		checkIn:          checkIn,
		checkOut:         checkOut,
		stay:             stay,
		guest:            guest,
		message:          text,
		quote:            quote,
		confirmationCode: code,
		status:           InquiryNew,
		createdAt:        services.Clock.Now(),
	}, nil
}

func (i *Inquiry) CouponCode() *string {
	if i.quote == nil {
		return nil
	}
	return i.quote.CouponCode
}

func (i *Inquiry) ID() uuid.UUID             { return i.id }
func (i *Inquiry) PropertyID() int64         { return i.propertyID }
func (i *Inquiry) CheckIn() *calendar.Date   { return i.checkIn }
func (i *Inquiry) CheckOut() *calendar.Date  { return i.checkOut }
func (i *Inquiry) Stay() *calendar.DateRange { return i.stay }
func (i *Inquiry) Guest() Guest              { return i.guest }
func (i *Inquiry) Message() string           { return i.message }
func (i *Inquiry) Quote() *pricing.Quote     { return i.quote }
func (i *Inquiry) ConfirmationCode() string  { return i.confirmationCode }
func (i *Inquiry) Status() InquiryStatus     { return i.status }
func (i *Inquiry) CreatedAt() time.Time      { return i.createdAt }
