package converter

import (
	"staybook/internal/domain/calendar"
	"staybook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func DateFromPgtype(pd pgtype.Date) calendar.Date {
	return calendar.DateOf(pgconv.DateFromPgtype(pd))
}

func DateToPgtype(d calendar.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Time())
}

func DatePtrToPgtype(d *calendar.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{Valid: false}
	}
	return DateToPgtype(*d)
}

// RangeFromPgtype returns nil unless both ends are stored.
func RangeFromPgtype(checkIn, checkOut pgtype.Date) (*calendar.DateRange, error) {
	if !checkIn.Valid || !checkOut.Valid {
		return nil, nil
	}
	r, err := calendar.NewDateRange(DateFromPgtype(checkIn), DateFromPgtype(checkOut))
	if err != nil {
		return nil, err
	}
	return &r, nil
}
