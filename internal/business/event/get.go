package event

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/avoronov/calendar-events-backend/internal/model"
	"github.com/teambition/rrule-go"
)

func (s *Service) GetEvent(ctx context.Context, id int64) (*model.CalendarEvent, error) {
	return s.loadEventGraph(ctx, s.db, id)
}

// GetEvents возвращает события календарей в интервале, разворачивая
// повторяющиеся серии в отдельные вхождения. Вхождения, перекрытые
// исключениями, не возвращаются - вместо них в выборку попадают сами
// события-исключения.
func (s *Service) GetEvents(ctx context.Context, filter model.EventsFilter) ([]*model.CalendarEvent, error) {
	baseEvents, err := s.eventsRepository.GetEvents(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	// правило серии хранится только на корне, дочерние копии разворачиваются
	// по правилу своего родителя
	ids := make([]int64, 0, 2*len(baseEvents))
	for _, e := range baseEvents {
		ids = append(ids, e.ID)
		if e.ParentID != nil {
			ids = append(ids, *e.ParentID)
		}
	}

	recurrences, err := s.eventsRepository.GetRecurrences(ctx, s.db, ids)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetRecurrences: %w", err)
	}

	recurrenceByEvent := make(map[int64]*model.Recurrence, len(recurrences))
	for _, r := range recurrences {
		recurrenceByEvent[r.EventID] = r
	}

	var res []*model.CalendarEvent

	for _, e := range baseEvents {
		recurrence := recurrenceByEvent[e.ID]
		if recurrence == nil && e.ParentID != nil {
			recurrence = recurrenceByEvent[*e.ParentID]
		}
		if recurrence == nil {
			if e.Cancelled {
				continue
			}
			res = append(res, e)
			continue
		}
		e.Recurrence = recurrence

		occurrences, err := s.expandRecurrence(ctx, e, filter.From, filter.To)
		if err != nil {
			return nil, err
		}
		res = append(res, occurrences...)
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Start.Before(res[j].Start)
	})

	return res, nil
}

func (s *Service) expandRecurrence(ctx context.Context, event *model.CalendarEvent, from, to time.Time) ([]*model.CalendarEvent, error) {
	rOption, err := rrule.StrToROption(event.Recurrence.Rule)
	if err != nil {
		return nil, fmt.Errorf("parse repeat rule %q: %w", event.Recurrence.Rule, err)
	}
	rule, err := rrule.NewRRule(*rOption)
	if err != nil {
		return nil, fmt.Errorf("make rule: %w", err)
	}

	exceptions, err := s.eventsRepository.GetRecurringEventExceptions(ctx, s.db, event.ID)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetRecurringEventExceptions: %w", err)
	}

	overridden := make(map[int64]struct{}, len(exceptions))
	for _, exception := range exceptions {
		if exception.OriginalStart != nil {
			overridden[exception.OriginalStart.Unix()] = struct{}{}
		}
	}

	duration := event.End.Sub(event.Start)

	var res []*model.CalendarEvent
	for _, r := range rule.Between(event.Start, to.Add(-1), true) {
		start := r
		end := r.Add(duration)

		if to.Before(start) || end.Before(from) {
			continue
		}

		if _, ok := overridden[start.Unix()]; ok {
			continue
		}

		res = append(res, &model.CalendarEvent{
			ID:               event.ID,
			Title:            event.Title,
			Description:      event.Description,
			Start:            start,
			End:              end,
			AllDay:           event.AllDay,
			CalendarID:       event.CalendarID,
			SystemCalendarID: event.SystemCalendarID,
			ParentID:         event.ParentID,
			Recurrence:       event.Recurrence,
		})
	}

	return res, nil
}
