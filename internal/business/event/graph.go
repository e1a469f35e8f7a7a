package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronov/calendar-events-backend/internal/database"
	"github.com/avoronov/calendar-events-backend/internal/model"
)

// loadEventGraph собирает объектный граф события: дочерние копии, исключения
// серии, участников, календари и корень серии. Граф - вход согласования.
func (s *Service) loadEventGraph(ctx context.Context, q database.Queryable, id int64) (*model.CalendarEvent, error) {
	event, err := s.eventsRepository.GetEventByID(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	children, err := s.eventsRepository.GetChildEvents(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetChildEvents: %w", err)
	}
	event.ChildEvents = children

	exceptions, err := s.eventsRepository.GetRecurringEventExceptions(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetRecurringEventExceptions: %w", err)
	}
	event.Exceptions = exceptions

	recurrence, err := s.eventsRepository.GetRecurrence(ctx, q, id)
	if err != nil && !errors.Is(err, model.ErrNoRecord) {
		return nil, fmt.Errorf("eventsRepository.GetRecurrence: %w", err)
	}
	event.Recurrence = recurrence

	if event.RecurringEventID != nil {
		root, err := s.eventsRepository.GetEventByID(ctx, q, *event.RecurringEventID)
		if err != nil {
			return nil, fmt.Errorf("eventsRepository.GetEventByID root: %w", err)
		}
		event.RecurringEvent = root
	}

	if err := s.attachAttendees(ctx, q, event); err != nil {
		return nil, err
	}

	if err := s.attachCalendars(ctx, q, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *Service) attachAttendees(ctx context.Context, q database.Queryable, event *model.CalendarEvent) error {
	events := map[int64]*model.CalendarEvent{event.ID: event}
	for _, child := range event.ChildEvents {
		events[child.ID] = child
	}
	if event.RecurringEvent != nil {
		events[event.RecurringEvent.ID] = event.RecurringEvent
	}

	ids := make([]int64, 0, len(events))
	for id := range events {
		ids = append(ids, id)
	}

	attendees, err := s.eventsRepository.GetAttendees(ctx, q, ids)
	if err != nil {
		return fmt.Errorf("eventsRepository.GetAttendees: %w", err)
	}

	for _, a := range attendees {
		owner := events[a.EventID]
		owner.Attendees = append(owner.Attendees, a)
	}

	for _, e := range events {
		if e.RelatedAttendeeID == nil {
			continue
		}
		for _, a := range e.Attendees {
			if a.ID == *e.RelatedAttendeeID {
				e.RelatedAttendee = a
				break
			}
		}
	}

	return nil
}

func (s *Service) attachCalendars(ctx context.Context, q database.Queryable, event *model.CalendarEvent) error {
	idSet := map[int64]struct{}{}
	addID := func(id *int64) {
		if id != nil {
			idSet[*id] = struct{}{}
		}
	}

	addID(event.CalendarID)
	for _, child := range event.ChildEvents {
		addID(child.CalendarID)
	}
	for _, exception := range event.Exceptions {
		addID(exception.CalendarID)
	}
	if event.RecurringEvent != nil {
		addID(event.RecurringEvent.CalendarID)
	}

	if len(idSet) != 0 {
		ids := make([]int64, 0, len(idSet))
		for id := range idSet {
			ids = append(ids, id)
		}

		calendars, err := s.calendars.GetCalendarsByIDs(ctx, q, ids)
		if err != nil {
			return fmt.Errorf("calendars.GetCalendarsByIDs: %w", err)
		}

		byID := make(map[int64]*model.Calendar, len(calendars))
		for _, c := range calendars {
			byID[c.ID] = c
		}

		attach := func(e *model.CalendarEvent) {
			if e.CalendarID != nil {
				e.Calendar = byID[*e.CalendarID]
			}
		}

		attach(event)
		for _, child := range event.ChildEvents {
			attach(child)
		}
		for _, exception := range event.Exceptions {
			attach(exception)
		}
		if event.RecurringEvent != nil {
			attach(event.RecurringEvent)
		}
	}

	if event.SystemCalendarID != nil {
		systemCalendar, err := s.systemCalendars.GetSystemCalendarByID(ctx, q, *event.SystemCalendarID)
		if err != nil {
			return fmt.Errorf("systemCalendars.GetSystemCalendarByID: %w", err)
		}
		event.SystemCalendar = systemCalendar
	}

	return nil
}
