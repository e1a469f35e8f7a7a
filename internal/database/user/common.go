package user

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
		"full_name",
		"email",
		"phone_number",
		"photo",
		"push_token",
	).
	From(database.UsersTable)
