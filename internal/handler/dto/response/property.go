package response

import (
	"staybook/internal/domain/calendar"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BlockedDateResponse struct {
	ID     uuid.UUID       `json:"id"`
	Start  calendar.Date   `json:"start"`
	End    calendar.Date   `json:"end"`
	Source calendar.Source `json:"source"`
	Reason *string         `json:"reason,omitempty"`
}

type AvailabilityResponse struct {
	PropertyID    int64                 `json:"propertyId"`
	From          calendar.Date         `json:"from"`
	To            calendar.Date         `json:"to"`
	BlockedDates  []BlockedDateResponse `json:"blockedDates"`
	DisabledDates []calendar.Date       `json:"disabledDates"`
	MinNights     int                   `json:"minNights"`
	MaxNights     *int                  `json:"maxNights"`
}

type PricingResponse struct {
	PricePerNight int64  `json:"pricePerNight"`
	Nights        int    `json:"nights"`
	Subtotal      int64  `json:"subtotal"`
	CleaningFee   int64  `json:"cleaningFee"`
	ServiceFee    int64  `json:"serviceFee"`
	Taxes         int64  `json:"taxes"`
	Total         int64  `json:"total"`
	Currency      string `json:"currency"`
}

type SyncResponse struct {
	Imported int `json:"imported"`
}

func FromAvailabilityView(v *queries.AvailabilityView) (AvailabilityResponse, error) {
	var resp AvailabilityResponse
	if err := copier.Copy(&resp, v); err != nil {
		return AvailabilityResponse{}, err
	}
	// copier leaves empty slices nil; the client expects arrays
	if resp.BlockedDates == nil {
		resp.BlockedDates = []BlockedDateResponse{}
	}
	if resp.DisabledDates == nil {
		resp.DisabledDates = []calendar.Date{}
	}
	return resp, nil
}

func FromPriceView(v *queries.PriceView) (PricingResponse, error) {
	var resp PricingResponse
	if err := copier.Copy(&resp, v); err != nil {
		return PricingResponse{}, err
	}
	return resp, nil
}

func FromBlockedIntervalViews(views []queries.BlockedIntervalView) ([]BlockedDateResponse, error) {
	resp := make([]BlockedDateResponse, 0, len(views))
	if len(views) == 0 {
		return resp, nil
	}
	if err := copier.Copy(&resp, &views); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromBlockedIntervalView(v *queries.BlockedIntervalView) (BlockedDateResponse, error) {
	var resp BlockedDateResponse
	if err := copier.Copy(&resp, v); err != nil {
		return BlockedDateResponse{}, err
	}
	return resp, nil
}
