package event

import (
	"context"
	"fmt"

	calendar_manager "github.com/avoronov/calendar-events-backend/internal/business/calendar"
	"github.com/avoronov/calendar-events-backend/internal/model"
)

// UpdateEvent применяет правки и заново согласовывает дочерние копии.
// Блокировка строки события исключает параллельные согласования.
func (s *Service) UpdateEvent(ctx context.Context, id int64, info *model.EventUpdate) (*model.CalendarEvent, *calendar_manager.Reconciliation, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.eventsRepository.LockEvent(ctx, tx, id); err != nil {
		return nil, nil, fmt.Errorf("lock event: %w", err)
	}

	event, err := s.loadEventGraph(ctx, tx, id)
	if err != nil {
		return nil, nil, err
	}

	event.Title = info.Title
	event.Description = info.Description
	event.Start = info.Start
	event.End = info.End
	event.AllDay = info.AllDay

	if info.CalendarUID != "" {
		alias, calendarID, err := calendar_manager.ParseCalendarUID(info.CalendarUID)
		if err != nil {
			return nil, nil, err
		}

		if err := s.calendarManager.SetCalendar(ctx, event, alias, calendarID); err != nil {
			return nil, nil, err
		}
	}

	if info.Attendees != nil {
		if err := s.eventsRepository.DeleteAttendees(ctx, tx, id); err != nil {
			return nil, nil, fmt.Errorf("eventsRepository.DeleteAttendees: %w", err)
		}

		event.Attendees = mapToAttendees(id, info.Attendees)
		event.RelatedAttendee = nil
		for _, a := range event.Attendees {
			attendeeID, err := s.eventsRepository.CreateAttendee(ctx, tx, a)
			if err != nil {
				return nil, nil, fmt.Errorf("eventsRepository.CreateAttendee: %w", err)
			}
			a.ID = attendeeID
		}
	}

	if err := s.eventsRepository.UpdateEvent(ctx, tx, event); err != nil {
		return nil, nil, fmt.Errorf("eventsRepository.UpdateEvent: %w", err)
	}

	rec, err := s.calendarManager.Reconcile(ctx, event)
	if err != nil {
		return nil, nil, fmt.Errorf("reconcile: %w", err)
	}

	if err := s.persistReconciliation(ctx, tx, event, rec); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit tx: %w", err)
	}

	s.notifyCreated(ctx, event, rec)

	return event, rec, nil
}
