package errs

import "errors"

// ValidationError reports bad input together with the offending field.
type ValidationError struct {
	Field string
	cause error
}

func NewValidation(field string, cause error) error {
	return &ValidationError{Field: field, cause: cause}
}

func (e *ValidationError) Error() string {
	if e.cause == nil {
		return e.Field + ": invalid value"
	}
	return e.Field + ": " + e.cause.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

// Reason is the user-facing message of the underlying cause.
func (e *ValidationError) Reason() string {
	if e.cause == nil {
		return "invalid value"
	}
	return e.cause.Error()
}

func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
