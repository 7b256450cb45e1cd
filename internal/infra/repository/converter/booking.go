package converter

import (
	"encoding/json"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/pricing"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"
)

// PricingSnapshot is the jsonb form of a quote kept with a booking.
type PricingSnapshot struct {
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

func QuoteToJSON(q pricing.Quote) ([]byte, error) {
	return json.Marshal(PricingSnapshot{
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
	})
}

// QuoteFromJSON returns nil for an empty column.
func QuoteFromJSON(raw []byte) (*pricing.Quote, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var s PricingSnapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &pricing.Quote{
		Breakdown: pricing.Breakdown{
			PricePerNight: s.PricePerNight,
			Nights:        s.Nights,
			Subtotal:      s.Subtotal,
			CleaningFee:   s.CleaningFee,
			ServiceFee:    s.ServiceFee,
			Taxes:         s.Taxes,
			Total:         s.Total,
			Currency:      s.Currency,
		},
		CouponCode: s.CouponCode,
		Discount:   s.Discount,
		GrandTotal: s.GrandTotal,
	}, nil
}

func ReservationToCreateParams(r *booking.Reservation) (sqlc.CreateReservationParams, error) {
	snapshot, err := QuoteToJSON(r.Quote())
	if err != nil {
		return sqlc.CreateReservationParams{}, err
	}
	guest := r.Guest()
	return sqlc.CreateReservationParams{
		ID:               r.ID(),
		PropertyID:       r.PropertyID(),
		CheckIn:          DateToPgtype(r.Stay().CheckIn()),
		CheckOut:         DateToPgtype(r.Stay().CheckOut()),
		GuestName:        guest.Name(),
		GuestEmail:       guest.Email().Value(),
		GuestPhone:       pgconv.StringPtrToPgtype(guest.Phone()),
		GuestCount:       int32(guest.Count()), // #nosec G115 -- bounded by property max guests
		Pricing:          snapshot,
		GrandTotal:       r.Quote().GrandTotal,
		Currency:         r.Quote().Currency,
		CouponCode:       pgconv.StringPtrToPgtype(r.CouponCode()),
		ConfirmationCode: r.ConfirmationCode(),
		Status:           string(r.Status()),
		Note:             pgconv.StringPtrToPgtype(r.Note()),
		CreatedAt:        pgconv.TimeToPgtype(r.CreatedAt()),
	}, nil
}

func InquiryToCreateParams(i *booking.Inquiry) (sqlc.CreateInquiryParams, error) {
	var snapshot []byte
	if q := i.Quote(); q != nil {
		raw, err := QuoteToJSON(*q)
		if err != nil {
			return sqlc.CreateInquiryParams{}, err
		}
		snapshot = raw
	}
	params := sqlc.CreateInquiryParams{
		ID:               i.ID(),
		PropertyID:       i.PropertyID(),
		GuestName:        i.Guest().Name(),
		GuestEmail:       i.Guest().Email().Value(),
		GuestPhone:       pgconv.StringPtrToPgtype(i.Guest().Phone()),
		GuestCount:       int32(i.Guest().Count()), // #nosec G115 -- bounded by property max guests
		Message:          i.Message(),
		Pricing:          snapshot,
		CouponCode:       pgconv.StringPtrToPgtype(i.CouponCode()),
		ConfirmationCode: i.ConfirmationCode(),
		Status:           string(i.Status()),
		CreatedAt:        pgconv.TimeToPgtype(i.CreatedAt()),
	}
	if in := i.CheckIn(); in != nil {
		params.CheckIn = DateToPgtype(*in)
	}
	if out := i.CheckOut(); out != nil {
		params.CheckOut = DateToPgtype(*out)
	}
	return params, nil
}
