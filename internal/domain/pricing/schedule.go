package pricing

import (
	"staybook/internal/domain/calendar"
)

// Schedule carries the platform-wide fee rates.
type Schedule struct {
	ServiceFeeRate  Rate
	TaxRate         Rate
	DefaultCurrency string
}

func NewSchedule(serviceFeeRate, taxRate, defaultCurrency string) (Schedule, error) {
	s, err := ParseRate(serviceFeeRate)
	if err != nil {
		return Schedule{}, err
	}
	t, err := ParseRate(taxRate)
	if err != nil {
		return Schedule{}, err
	}
	return Schedule{ServiceFeeRate: s, TaxRate: t, DefaultCurrency: defaultCurrency}, nil
}

// Quote prices a stay for a listing; an empty currency falls back to the default.
func (s Schedule) Quote(nightlyRate, cleaningFee int64, currency string, stay calendar.DateRange) (Breakdown, error) {
	b, err := Price(nightlyRate, stay.CheckIn(), stay.CheckOut(), cleaningFee, s.ServiceFeeRate, s.TaxRate)
	if err != nil {
		return Breakdown{}, err
	}
	b.Currency = currency
	if b.Currency == "" {
		b.Currency = s.DefaultCurrency
	}
	return b, nil
}
