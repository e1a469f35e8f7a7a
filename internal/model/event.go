package model

import "time"

type EventCreate struct {
	CalendarUID string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	AllDay      bool
	RepeatType  RepeatType
	Attendees   []*AttendeeCreate
}

type EventUpdate struct {
	CalendarUID string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Attendees   []*AttendeeCreate
}

// CalendarEvent is a scheduled item. A parent event lives on the organizer's
// calendar and owns mirrored child copies, one per invited user with a linked
// account. Exception instances of a recurring series reference the series root
// through RecurringEvent and never own a Recurrence themselves.
type CalendarEvent struct {
	ID            int64
	Title         string
	Description   string
	Start         time.Time
	End           time.Time
	AllDay        bool
	Cancelled     bool
	OriginalStart *time.Time

	CalendarID        *int64
	SystemCalendarID  *int64
	ParentID          *int64
	RecurringEventID  *int64
	RelatedAttendeeID *int64

	Calendar        *Calendar
	SystemCalendar  *SystemCalendar
	Recurrence      *Recurrence
	RecurringEvent  *CalendarEvent
	ChildEvents     []*CalendarEvent
	Exceptions      []*CalendarEvent
	Attendees       []*Attendee
	RelatedAttendee *Attendee
}

// FindRelatedAttendee derives the attendee record matching the owner of the
// calendar this event instance lives on. Events on system calendars have no
// related attendee.
func (e *CalendarEvent) FindRelatedAttendee() *Attendee {
	if e.Calendar == nil {
		return nil
	}

	for _, a := range e.Attendees {
		if a.UserID != nil && *a.UserID == e.Calendar.OwnerID {
			return a
		}
	}

	return nil
}

// IsRecurrenceRoot reports whether this event is the root of a recurring series.
func (e *CalendarEvent) IsRecurrenceRoot() bool {
	return e.Recurrence != nil
}

type RepeatType int

const (
	RepeatTypeNone RepeatType = iota
	RepeatTypeEveryDay
	RepeatTypeEveryThreeDays
	RepeatTypeEveryWeek
	RepeatTypeEveryMonth
	RepeatTypeEveryYear
)

// Recurrence is the repeat rule of a series. Only the series root holds one.
type Recurrence struct {
	ID         int64
	EventID    int64
	RepeatType RepeatType
	Rule       string
	Until      *time.Time
}

type EventsFilter struct {
	From              time.Time
	To                time.Time
	CalendarIDs       []int64
	SystemCalendarIDs []int64
}
