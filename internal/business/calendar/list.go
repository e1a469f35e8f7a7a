package calendar

import (
	"context"
	"fmt"

	"github.com/avoronov/calendar-events-backend/internal/model"
)

// SystemCalendars возвращает системные календари, в которые можно добавлять
// события. Фильтрация по правам доступа - забота вызывающего.
func (s *Service) SystemCalendars(ctx context.Context, organizationID int64) ([]*model.SystemCalendarInfo, error) {
	calendars, err := s.systemCalendars.GetSystemCalendars(ctx, s.db, organizationID)
	if err != nil {
		return nil, fmt.Errorf("systemCalendars.GetSystemCalendars: %w", err)
	}

	res := make([]*model.SystemCalendarInfo, len(calendars))
	for i, c := range calendars {
		res[i] = &model.SystemCalendarInfo{
			ID:     c.ID,
			Name:   c.Name,
			Public: c.Public,
		}
	}

	return res, nil
}

// UserCalendars возвращает личные календари пользователя. Безымянным
// календарям подставляется имя владельца.
func (s *Service) UserCalendars(ctx context.Context, organizationID, userID int64) ([]*model.CalendarInfo, error) {
	calendars, err := s.calendars.GetUserCalendars(ctx, s.db, organizationID, userID)
	if err != nil {
		return nil, fmt.Errorf("calendars.GetUserCalendars: %w", err)
	}

	ownerName := ""
	res := make([]*model.CalendarInfo, len(calendars))
	for i, c := range calendars {
		name := c.Name
		if name == "" {
			if ownerName == "" {
				owner, err := s.users.GetUserByID(ctx, s.db, userID)
				if err != nil {
					return nil, fmt.Errorf("users.GetUserByID: %w", err)
				}
				ownerName = owner.FullName
			}
			name = ownerName
		}

		res[i] = &model.CalendarInfo{
			ID:   c.ID,
			Name: name,
		}
	}

	return res, nil
}
