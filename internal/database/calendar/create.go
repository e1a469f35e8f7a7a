package calendar

import (
	"context"
	"fmt"

	"github.com/avoronov/calendar-events-backend/internal/database"
	"github.com/avoronov/calendar-events-backend/internal/model"
)

func (*Repository) CreateCalendar(ctx context.Context, q database.Queryable, calendar *model.Calendar, isDefault bool) (int64, error) {
	qb := database.PSQL.
		Insert(database.CalendarsTable).
		Columns("organization_id", "owner_id", "name", "is_default").
		Values(
			calendar.OrganizationID,
			calendar.OwnerID,
			calendar.Name,
			isDefault,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
