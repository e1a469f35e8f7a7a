package calendar

import (
	"context"
	"fmt"

	"github.com/avoronov/calendar-events-backend/internal/model"
)

// SetCalendar привязывает событие к календарю по alias и id. Меняет только
// связи в памяти, ничего не сохраняет.
func (s *Service) SetCalendar(ctx context.Context, event *model.CalendarEvent, alias string, calendarID int64) error {
	switch alias {
	case model.CalendarAliasUser:
		if event.Calendar != nil && event.Calendar.ID == calendarID {
			return nil
		}

		calendar, err := s.calendars.GetCalendarByID(ctx, s.db, calendarID)
		if err != nil {
			return fmt.Errorf("calendars.GetCalendarByID: %w", err)
		}

		event.Calendar = calendar
		event.CalendarID = &calendar.ID
		event.SystemCalendar = nil
		event.SystemCalendarID = nil

	case model.CalendarAliasSystem, model.CalendarAliasPublic:
		systemCalendar, err := s.systemCalendars.GetSystemCalendarByID(ctx, s.db, calendarID)
		if err != nil {
			return fmt.Errorf("systemCalendars.GetSystemCalendarByID: %w", err)
		}

		if systemCalendar.Public && !s.calendarConfig.IsPublicCalendarEnabled() {
			return &model.ForbiddenError{Message: "public calendars are disabled"}
		}
		if !systemCalendar.Public && !s.calendarConfig.IsSystemCalendarEnabled() {
			return &model.ForbiddenError{Message: "system calendars are disabled"}
		}

		event.SystemCalendar = systemCalendar
		event.SystemCalendarID = &systemCalendar.ID
		event.Calendar = nil
		event.CalendarID = nil

	default:
		return &model.InvalidCalendarAliasError{Alias: alias, CalendarID: calendarID}
	}

	return nil
}
