package model

import (
	"errors"
	"fmt"
)

var ErrNoRecord = errors.New("no record")
var ErrAlreadyExists = errors.New("entity already exists")

// InvalidCalendarAliasError means an unknown calendar alias reached calendar
// resolution. Valid clients never send one.
type InvalidCalendarAliasError struct {
	Alias      string
	CalendarID int64
}

func (e *InvalidCalendarAliasError) Error() string {
	return fmt.Sprintf("unexpected calendar alias: %q, calendar id: %d", e.Alias, e.CalendarID)
}

// ForbiddenError means the requested calendar kind is administratively disabled.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// RelatedAttendeeNotFoundError means a status change was requested on an event
// that has no attendee record for the owner of its calendar.
type RelatedAttendeeNotFoundError struct{}

func (e *RelatedAttendeeNotFoundError) Error() string {
	return "event has no related attendee"
}

type StatusNotFoundError struct {
	Code string
}

func (e *StatusNotFoundError) Error() string {
	return fmt.Sprintf("status %q does not exist", e.Code)
}
