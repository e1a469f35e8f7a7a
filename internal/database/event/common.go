package event

import (
	"github.com/avoronov/calendar-events-backend/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"id",
		"title",
		"description",
		"start_date",
		"end_date",
		"all_day",
		"cancelled",
		"original_start",
		"calendar_id",
		"system_calendar_id",
		"parent_id",
		"recurring_event_id",
		"related_attendee_id",
	).
	From(database.EventsTable)

var attendeesQuery = database.PSQL.
	Select(
		"id",
		"event_id",
		"display_name",
		"email",
		"type",
		"status",
		"user_id",
	).
	From(database.AttendeesTable)
