package event

import (
	"context"
	"fmt"
)

// ChangeStatus меняет ответ владельца календаря на его копии события.
// Статусы на других копиях не меняются.
func (s *Service) ChangeStatus(ctx context.Context, eventID int64, statusCode string) error {
	event, err := s.loadEventGraph(ctx, s.db, eventID)
	if err != nil {
		return err
	}

	if err := s.calendarManager.ChangeStatus(ctx, event, statusCode); err != nil {
		return err
	}

	if err := s.eventsRepository.UpdateAttendeeStatus(ctx, s.db, event.RelatedAttendee.ID, event.RelatedAttendee.Status); err != nil {
		return fmt.Errorf("eventsRepository.UpdateAttendeeStatus: %w", err)
	}

	return nil
}
