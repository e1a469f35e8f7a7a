package database

import (
	sq "github.com/Masterminds/squirrel"
)

// PSQL строит запросы с postgres-плейсхолдерами.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	UsersTable            = "users"
	CalendarsTable        = "calendars"
	SystemCalendarsTable  = "system_calendars"
	EventsTable           = "calendar_events"
	AttendeesTable        = "attendees"
	RecurrencesTable      = "recurrences"
	AttendeeStatusesTable = "attendee_statuses"
)
