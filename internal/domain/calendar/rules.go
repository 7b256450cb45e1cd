package calendar

import (
	"errors"
	"fmt"

	"staybook/internal/pkg/errs"
)

var (
	ErrDatesUnavailable = errors.New("dates unavailable")
	ErrPastDate         = errors.New("date is in the past")
	ErrStayTooShort     = errors.New("stay is shorter than the minimum number of nights")
	ErrStayTooLong      = errors.New("stay is longer than the maximum number of nights")
	ErrInvalidStayRules = errors.New("minimum nights must be at least 1 and not exceed maximum nights")
)

type StayRules struct {
	MinNights int
	MaxNights *int
}

func NewStayRules(minNights int, maxNights *int) (StayRules, error) {
	if minNights < 1 || (maxNights != nil && *maxNights < minNights) {
		return StayRules{}, ErrInvalidStayRules
	}
	return StayRules{MinNights: minNights, MaxNights: maxNights}, nil
}

func (r StayRules) Check(nights int) error {
	minNights := max(r.MinNights, 1)
	if nights < minNights {
		return fmt.Errorf("%w (%d)", ErrStayTooShort, minNights)
	}
	if r.MaxNights != nil && nights > *r.MaxNights {
		return fmt.Errorf("%w (%d)", ErrStayTooLong, *r.MaxNights)
	}
	return nil
}

// ValidateRange re-runs the selection guards for a stay about to be committed.
// Shape problems come back as *errs.ValidationError and blocked nights as
// ErrDatesUnavailable.
func ValidateRange(stay DateRange, blocker *Blocker, rules StayRules) error {
	if stay.checkIn.Before(blocker.today) {
		return errs.NewValidation("checkIn", ErrPastDate)
	}
	if err := rules.Check(stay.Nights()); err != nil {
		return errs.NewValidation("checkOut", err)
	}
	if d, conflict := blocker.FirstConflict(stay); conflict {
		return fmt.Errorf("%w: %s is not available", ErrDatesUnavailable, d)
	}
	return nil
}
