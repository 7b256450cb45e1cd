package ical

import (
	"errors"
	"fmt"
)

type SyncReason string

const (
	ReasonNoFeed      SyncReason = "NO_FEED"
	ReasonUnreachable SyncReason = "UNREACHABLE"
	ReasonTimeout     SyncReason = "TIMEOUT"
	ReasonBadStatus   SyncReason = "BAD_STATUS"
	ReasonTooLarge    SyncReason = "TOO_LARGE"
	ReasonMalformed   SyncReason = "MALFORMED"
)

// SyncError reports why an external calendar could not be imported. The
// previously imported intervals are left untouched when it is returned.
type SyncError struct {
	Reason SyncReason
	Err    error
}

func (e *SyncError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("calendar sync failed: %s", e.Reason)
	}
	return fmt.Sprintf("calendar sync failed: %s: %v", e.Reason, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func AsSyncError(err error) (*SyncError, bool) {
	var se *SyncError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

func malformed(format string, args ...any) *SyncError {
	return &SyncError{Reason: ReasonMalformed, Err: fmt.Errorf(format, args...)}
}
