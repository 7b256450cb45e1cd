package calendar

import (
	"errors"
)

var ErrDateDisabled = errors.New("date is not selectable")

type SelectionState int

const (
	Idle SelectionState = iota
	PartialRange
	CompleteRange
)

func (s SelectionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case PartialRange:
		return "partial"
	case CompleteRange:
		return "complete"
	default:
		return "unknown"
	}
}

// Selector walks a guest through picking check-in then check-out.
// onChange receives the committed range on completion and nil whenever a
// previously committed range is withdrawn.
type Selector struct {
	blocker  *Blocker
	rules    StayRules
	onChange func(*DateRange)

	state    SelectionState
	checkIn  Date
	selected DateRange
}

func NewSelector(blocker *Blocker, rules StayRules, onChange func(*DateRange)) *Selector {
	if onChange == nil {
		onChange = func(*DateRange) {}
	}
	return &Selector{blocker: blocker, rules: rules, onChange: onChange}
}

// Select feeds one clicked date. A rejected date leaves the state untouched.
//
// The check-out day is a departure, not a night, so it may fall on the first
// day of a blocked span as long as every night before it is free.
func (s *Selector) Select(d Date) error {
	switch s.state {
	case PartialRange:
		if !d.After(s.checkIn) {
			if s.blocker.IsBlocked(d) {
				return ErrDateDisabled
			}
			s.checkIn = d
			return nil
		}
		stay := DateRange{checkIn: s.checkIn, checkOut: d}
		if !s.blocker.IsFree(stay) {
			return ErrDatesUnavailable
		}
		if err := s.rules.Check(stay.Nights()); err != nil {
			return err
		}
		s.selected = stay
		s.state = CompleteRange
		committed := stay
		s.onChange(&committed)
		return nil

	case CompleteRange:
		if s.blocker.IsBlocked(d) {
			return ErrDateDisabled
		}
		s.state = PartialRange
		s.checkIn = d
		s.selected = DateRange{}
		s.onChange(nil)
		return nil

	default:
		if s.blocker.IsBlocked(d) {
			return ErrDateDisabled
		}
		s.state = PartialRange
		s.checkIn = d
		return nil
	}
}

func (s *Selector) Clear() {
	s.state = Idle
	s.checkIn = Date{}
	s.selected = DateRange{}
	s.onChange(nil)
}

func (s *Selector) State() SelectionState { return s.state }

func (s *Selector) CheckIn() (Date, bool) {
	if s.state == Idle {
		return Date{}, false
	}
	return s.checkIn, true
}

func (s *Selector) Range() (DateRange, bool) {
	if s.state != CompleteRange {
		return DateRange{}, false
	}
	return s.selected, true
}
