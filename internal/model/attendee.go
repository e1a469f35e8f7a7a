package model

type AttendeeStatus int

const (
	AttendeeStatusNone AttendeeStatus = iota
	AttendeeStatusAccepted
	AttendeeStatusDeclined
	AttendeeStatusTentative
)

type AttendeeType int

const (
	AttendeeTypeRequired AttendeeType = iota
	AttendeeTypeOptional
	AttendeeTypeOrganizer
)

// Attendee is one user's participation record on a specific event instance.
// UserID is nil for external invitees without an account; such attendees
// never receive a mirrored event.
type Attendee struct {
	ID          int64
	EventID     int64
	DisplayName string
	Email       string
	Type        AttendeeType
	Status      AttendeeStatus
	UserID      *int64
}

type AttendeeCreate struct {
	DisplayName string
	Email       string
	Type        AttendeeType
	UserID      *int64
}

// Status is a row of the response-status code table.
type Status struct {
	Code  string
	Value AttendeeStatus
	Name  string
}
