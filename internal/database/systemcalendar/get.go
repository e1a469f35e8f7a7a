package systemcalendar

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/avoronov/calendar-events-backend/internal/database"
	"github.com/avoronov/calendar-events-backend/internal/model"
)

type systemCalendarDTO struct {
	ID             int64
	OrganizationID int64
	Name           string
	Public         bool
}

func mapToSystemCalendar(dto *systemCalendarDTO) *model.SystemCalendar {
	return &model.SystemCalendar{
		ID:             dto.ID,
		OrganizationID: dto.OrganizationID,
		Name:           dto.Name,
		Public:         dto.Public,
	}
}

func (*Repository) GetSystemCalendarByID(ctx context.Context, q database.Queryable, id int64) (*model.SystemCalendar, error) {
	calendars, err := getSystemCalendars(ctx, q, sq.Eq{"id": id})
	if err != nil {
		return nil, err
	}

	if len(calendars) == 0 {
		return nil, model.ErrNoRecord
	}

	return calendars[0], nil
}

// GetSystemCalendars возвращает системные календари организации вместе с
// публичными календарями, видимыми всем организациям.
func (*Repository) GetSystemCalendars(ctx context.Context, q database.Queryable, organizationID int64) ([]*model.SystemCalendar, error) {
	return getSystemCalendars(ctx, q, sq.Or{
		sq.Eq{"organization_id": organizationID},
		sq.Eq{"public": true},
	})
}

func getSystemCalendars(ctx context.Context, q database.Queryable, predicate interface{}) ([]*model.SystemCalendar, error) {
	qb := baseQuery.
		Where(predicate).
		OrderBy("id")

	var dtos []*systemCalendarDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.SystemCalendar, len(dtos))
	for i, d := range dtos {
		res[i] = mapToSystemCalendar(d)
	}

	return res, nil
}
