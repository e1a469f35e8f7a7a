package calendar

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/avoronov/calendar-events-backend/internal/database"
	"github.com/avoronov/calendar-events-backend/internal/model"
)

func (*Repository) GetCalendarByID(ctx context.Context, q database.Queryable, id int64) (*model.Calendar, error) {
	calendars, err := getCalendars(ctx, q, sq.Eq{"id": id})
	if err != nil {
		return nil, err
	}

	if len(calendars) == 0 {
		return nil, model.ErrNoRecord
	}

	return calendars[0], nil
}

func (*Repository) GetCalendarsByIDs(ctx context.Context, q database.Queryable, ids []int64) ([]*model.Calendar, error) {
	return getCalendars(ctx, q, sq.Eq{"id": ids})
}

// FindDefaultCalendars возвращает дефолтный календарь каждого пользователя в
// рамках организации. Пользователи без дефолтного календаря молча пропускаются.
func (*Repository) FindDefaultCalendars(ctx context.Context, q database.Queryable, userIDs []int64, organizationID int64) ([]*model.Calendar, error) {
	return getCalendars(ctx, q, sq.Eq{
		"owner_id":        userIDs,
		"organization_id": organizationID,
		"is_default":      true,
	})
}

func (*Repository) GetUserCalendars(ctx context.Context, q database.Queryable, organizationID, userID int64) ([]*model.Calendar, error) {
	qb := baseQuery.
		Where(sq.Eq{
			"organization_id": organizationID,
			"owner_id":        userID,
		}).
		OrderBy("id")

	var dtos []*calendarDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Calendar, len(dtos))
	for i, d := range dtos {
		res[i] = mapToCalendar(d)
	}

	return res, nil
}

func getCalendars(ctx context.Context, q database.Queryable, predicate interface{}) ([]*model.Calendar, error) {
	qb := baseQuery.
		Where(predicate)

	var dtos []*calendarDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Calendar, len(dtos))
	for i, d := range dtos {
		res[i] = mapToCalendar(d)
	}

	return res, nil
}
