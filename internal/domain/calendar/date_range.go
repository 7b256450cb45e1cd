package calendar

import "errors"

var ErrInvalidRange = errors.New("check-out must be after check-in")

// DateRange is the half-open span [CheckIn, CheckOut). A stay occupies the
// nights of CheckIn up to the day before CheckOut.
type DateRange struct {
	checkIn  Date
	checkOut Date
}

func NewDateRange(checkIn, checkOut Date) (DateRange, error) {
	if !checkIn.Before(checkOut) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{checkIn: checkIn, checkOut: checkOut}, nil
}

func (r DateRange) CheckIn() Date  { return r.checkIn }
func (r DateRange) CheckOut() Date { return r.checkOut }

func (r DateRange) Nights() int {
	return r.checkIn.DaysUntil(r.checkOut)
}

func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.checkIn) && d.Before(r.checkOut)
}

func (r DateRange) Overlaps(o DateRange) bool {
	return r.checkIn.Before(o.checkOut) && o.checkIn.Before(r.checkOut)
}

func (r DateRange) String() string {
	return "[" + r.checkIn.String() + ", " + r.checkOut.String() + ")"
}
