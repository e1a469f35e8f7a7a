package calendar

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
		"owner_id",
		"name",
	).
	From(database.CalendarsTable)
