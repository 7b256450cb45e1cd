package coupon

import "errors"

type Reason string

const (
	ReasonNotFound          Reason = "NOT_FOUND"
	ReasonInactive          Reason = "INACTIVE"
	ReasonExpired           Reason = "EXPIRED"
	ReasonNotYetValid       Reason = "NOT_YET_VALID"
	ReasonNightsOutOfRange  Reason = "NIGHTS_OUT_OF_RANGE"
	ReasonBelowMinimum      Reason = "BELOW_MINIMUM"
	ReasonLimitReached      Reason = "LIMIT_REACHED"
	ReasonGuestLimitReached Reason = "GUEST_LIMIT_REACHED"
)

var messages = map[Reason]string{
	ReasonNotFound:          "Coupon not found",
	ReasonInactive:          "Coupon is not active",
	ReasonExpired:           "Coupon has expired",
	ReasonNotYetValid:       "Coupon is not yet valid",
	ReasonNightsOutOfRange:  "Coupon does not apply to a stay of this length",
	ReasonBelowMinimum:      "Booking subtotal is below the coupon minimum",
	ReasonLimitReached:      "Coupon redemption limit reached",
	ReasonGuestLimitReached: "Coupon already used the maximum number of times by this guest",
}

// Error is a coupon rejection with a stable reason code.
type Error struct {
	Reason Reason
}

func (e *Error) Error() string {
	if msg, ok := messages[e.Reason]; ok {
		return msg
	}
	return string(e.Reason)
}

// Is matches any *Error with the same reason.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Reason == e.Reason
}

var (
	ErrNotFound          = &Error{Reason: ReasonNotFound}
	ErrInactive          = &Error{Reason: ReasonInactive}
	ErrExpired           = &Error{Reason: ReasonExpired}
	ErrNotYetValid       = &Error{Reason: ReasonNotYetValid}
	ErrNightsOutOfRange  = &Error{Reason: ReasonNightsOutOfRange}
	ErrBelowMinimum      = &Error{Reason: ReasonBelowMinimum}
	ErrLimitReached      = &Error{Reason: ReasonLimitReached}
	ErrGuestLimitReached = &Error{Reason: ReasonGuestLimitReached}
)

func AsError(err error) (*Error, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
