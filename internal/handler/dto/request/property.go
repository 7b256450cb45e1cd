package request

import (
	"staybook/internal/domain/calendar"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"
)

type AvailabilityQuery struct {
	From string `form:"from" binding:"omitempty,calendardate"`
	To   string `form:"to" binding:"omitempty,calendardate"`
}

func (q AvailabilityQuery) ToWindow() (queries.AvailabilityWindow, error) {
	from, err := parseOptionalDate(&q.From)
	if err != nil {
		return queries.AvailabilityWindow{}, errs.NewValidation("from", err)
	}
	to, err := parseOptionalDate(&q.To)
	if err != nil {
		return queries.AvailabilityWindow{}, errs.NewValidation("to", err)
	}
	return queries.AvailabilityWindow{From: from, To: to}, nil
}

type PricingQuery struct {
	CheckIn  string `form:"checkIn" binding:"required,calendardate"`
	CheckOut string `form:"checkOut" binding:"required,calendardate"`
	Guests   *int   `form:"guests" binding:"omitempty,min=1"`
}

func (q PricingQuery) ToPriceRequest() (queries.PriceRequest, error) {
	checkIn, err := calendar.ParseDate(q.CheckIn)
	if err != nil {
		return queries.PriceRequest{}, errs.NewValidation("checkIn", err)
	}
	checkOut, err := calendar.ParseDate(q.CheckOut)
	if err != nil {
		return queries.PriceRequest{}, errs.NewValidation("checkOut", err)
	}
	return queries.PriceRequest{CheckIn: checkIn, CheckOut: checkOut, Guests: q.Guests}, nil
}

type CreateBlockedDatesRequest struct {
	Start  string  `json:"start" binding:"required,calendardate"`
	End    string  `json:"end" binding:"required,calendardate"`
	Reason *string `json:"reason,omitempty" binding:"omitempty,max=255"`
}

func (r CreateBlockedDatesRequest) ToInput() (commands.BlockDatesInput, error) {
	start, err := calendar.ParseDate(r.Start)
	if err != nil {
		return commands.BlockDatesInput{}, errs.NewValidation("start", err)
	}
	end, err := calendar.ParseDate(r.End)
	if err != nil {
		return commands.BlockDatesInput{}, errs.NewValidation("end", err)
	}
	return commands.BlockDatesInput{Start: start, End: end, Reason: r.Reason}, nil
}
