package event

import (
	"context"
	"fmt"

	calendar_manager "github.com/avoronov/calendar-events-backend/internal/business/calendar"
	"github.com/avoronov/calendar-events-backend/internal/model"
)

func (s *Service) CreateEvent(ctx context.Context, info *model.EventCreate) (*model.CalendarEvent, error) {
	alias, calendarID, err := calendar_manager.ParseCalendarUID(info.CalendarUID)
	if err != nil {
		return nil, err
	}

	event := &model.CalendarEvent{
		Title:       info.Title,
		Description: info.Description,
		Start:       info.Start,
		End:         info.End,
		AllDay:      info.AllDay,
	}

	if err := s.calendarManager.SetCalendar(ctx, event, alias, calendarID); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	id, err := s.eventsRepository.CreateEvent(ctx, tx, event)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.CreateEvent: %w", err)
	}
	event.ID = id

	event.Attendees = mapToAttendees(id, info.Attendees)
	for _, a := range event.Attendees {
		attendeeID, err := s.eventsRepository.CreateAttendee(ctx, tx, a)
		if err != nil {
			return nil, fmt.Errorf("eventsRepository.CreateAttendee: %w", err)
		}
		a.ID = attendeeID
	}

	if info.RepeatType != model.RepeatTypeNone {
		rule, err := getRule(info.RepeatType, info.Start, nil)
		if err != nil {
			return nil, err
		}

		recurrence := &model.Recurrence{
			EventID:    id,
			RepeatType: info.RepeatType,
			Rule:       rule,
		}

		recurrenceID, err := s.eventsRepository.CreateRecurrence(ctx, tx, recurrence)
		if err != nil {
			return nil, fmt.Errorf("eventsRepository.CreateRecurrence: %w", err)
		}
		recurrence.ID = recurrenceID
		event.Recurrence = recurrence
	}

	rec, err := s.calendarManager.Reconcile(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}

	if err := s.persistReconciliation(ctx, tx, event, rec); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	s.notifyCreated(ctx, event, rec)

	return event, nil
}
