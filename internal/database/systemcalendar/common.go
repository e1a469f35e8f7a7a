package systemcalendar

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
		"organization_id",
		"name",
		"public",
	).
	From(database.SystemCalendarsTable)
