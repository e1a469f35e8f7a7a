package calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronov/calendar-events-backend/internal/model"
)

// ChangeStatus меняет ответ "своего" участника события на статус с кодом
// statusCode. Статусы других копий события не трогает.
func (s *Service) ChangeStatus(ctx context.Context, event *model.CalendarEvent, statusCode string) error {
	related := event.RelatedAttendee
	if related == nil {
		return &model.RelatedAttendeeNotFoundError{}
	}

	status, err := s.statuses.FindStatusByCode(ctx, s.db, statusCode)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return &model.StatusNotFoundError{Code: statusCode}
		}
		return fmt.Errorf("statuses.FindStatusByCode: %w", err)
	}

	related.Status = status.Value

	return nil
}
