package calendar

import (
	"context"
	"fmt"

	"github.com/avoronov/calendar-events-backend/internal/model"
)

const childExceptionTitleSuffix = " (child exception)"

// Reconciliation описывает, что изменилось в графе события после согласования.
// Новые сущности созданы только в памяти, их сохранение - забота вызывающего.
type Reconciliation struct {
	CreatedChildren   []*model.CalendarEvent
	CreatedExceptions []*model.CalendarEvent
	OrphanedUserIDs   []int64
	SkippedUserIDs    []int64
}

// Reconcile приводит набор дочерних копий события в соответствие текущему
// списку участников: на календаре каждого приглашенного пользователя должна
// существовать ровно одна копия. Вызывающий обязан держать блокировку строки
// родительского события, параллельные согласования одного события создают
// дубликаты.
func (s *Service) Reconcile(ctx context.Context, event *model.CalendarEvent) (*Reconciliation, error) {
	event.RelatedAttendee = event.FindRelatedAttendee()

	attendeeUserIDs, attendeeUserIDSet := currentAttendeeUserIDs(event)

	covered := make(map[int64]struct{}, len(attendeeUserIDs))
	if event.Calendar != nil {
		covered[event.Calendar.OwnerID] = struct{}{}
	}

	res := &Reconciliation{}

	for _, child := range event.ChildEvents {
		if child.Calendar == nil {
			continue
		}

		ownerID := child.Calendar.OwnerID
		if _, ok := attendeeUserIDSet[ownerID]; ok {
			covered[ownerID] = struct{}{}
		} else {
			res.OrphanedUserIDs = append(res.OrphanedUserIDs, ownerID)
		}
	}

	var missingUserIDs []int64
	for _, id := range attendeeUserIDs {
		if _, ok := covered[id]; !ok {
			missingUserIDs = append(missingUserIDs, id)
		}
	}

	if len(missingUserIDs) != 0 {
		if err := s.createChildEvents(ctx, event, missingUserIDs, res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// currentAttendeeUserIDs возвращает id пользователей, чьи календари должны
// зеркалить событие. Отмененное исключение серии следует за участниками корня,
// а не ведет собственный граф. Участники без аккаунта не зеркалятся.
func currentAttendeeUserIDs(event *model.CalendarEvent) ([]int64, map[int64]struct{}) {
	attendees := event.Attendees
	if event.RecurringEvent != nil && event.Cancelled {
		attendees = event.RecurringEvent.Attendees
	}

	var ids []int64
	set := make(map[int64]struct{}, len(attendees))
	for _, a := range attendees {
		if a.UserID == nil {
			continue
		}
		if _, ok := set[*a.UserID]; ok {
			continue
		}
		ids = append(ids, *a.UserID)
		set[*a.UserID] = struct{}{}
	}

	return ids, set
}

func (s *Service) createChildEvents(ctx context.Context, parent *model.CalendarEvent, userIDs []int64, res *Reconciliation) error {
	organizationID, ok := eventOrganizationID(parent)
	if !ok {
		s.logger.Warnw("event has no calendar, skipping child events", "event_id", parent.ID)
		res.SkippedUserIDs = append(res.SkippedUserIDs, userIDs...)
		return nil
	}

	calendars, err := s.calendars.FindDefaultCalendars(ctx, s.db, userIDs, organizationID)
	if err != nil {
		return fmt.Errorf("calendars.FindDefaultCalendars: %w", err)
	}

	found := make(map[int64]struct{}, len(calendars))
	for _, calendar := range calendars {
		found[calendar.OwnerID] = struct{}{}

		// копия отмененного исключения остается отмененным исключением:
		// флаги и связь с корнем серии зеркалятся вместе с расписанием
		child := &model.CalendarEvent{
			Title:            parent.Title,
			Description:      parent.Description,
			Start:            parent.Start,
			End:              parent.End,
			AllDay:           parent.AllDay,
			Cancelled:        parent.Cancelled,
			OriginalStart:    parent.OriginalStart,
			Calendar:         calendar,
			CalendarID:       &calendar.ID,
			RecurringEvent:   parent.RecurringEvent,
			RecurringEventID: parent.RecurringEventID,
			Attendees:        copyAttendees(parent),
		}
		if child.RecurringEventID == nil && child.RecurringEvent != nil {
			child.RecurringEventID = &child.RecurringEvent.ID
		}
		child.RelatedAttendee = child.FindRelatedAttendee()

		parent.ChildEvents = append(parent.ChildEvents, child)
		res.CreatedChildren = append(res.CreatedChildren, child)

		res.CreatedExceptions = append(res.CreatedExceptions, copyRecurringEventExceptions(parent, child)...)
	}

	// пользователь без дефолтного календаря - деградация данных, но не повод
	// бросать остальных: пропускаем и согласовываем кого можем
	for _, id := range userIDs {
		if _, ok := found[id]; !ok {
			s.logger.Warnw("user has no default calendar, skipping child event",
				"user_id", id,
				"event_id", parent.ID,
			)
			res.SkippedUserIDs = append(res.SkippedUserIDs, id)
		}
	}

	return nil
}

// copyRecurringEventExceptions создает для нового дочернего события копии всех
// существующих исключений серии. Каждая копия живет на календаре дочернего
// события, ссылается на него как на корень серии и входит в граф исходного
// исключения как его дочернее событие.
func copyRecurringEventExceptions(parent, child *model.CalendarEvent) []*model.CalendarEvent {
	if parent.Recurrence == nil {
		// не повторяющееся событие - копировать нечего
		return nil
	}

	created := make([]*model.CalendarEvent, 0, len(parent.Exceptions))
	for _, parentException := range parent.Exceptions {
		childException := &model.CalendarEvent{
			Title:          parentException.Title + childExceptionTitleSuffix,
			Description:    parentException.Description,
			Start:          parentException.Start,
			End:            parentException.End,
			AllDay:         parentException.AllDay,
			Cancelled:      parentException.Cancelled,
			OriginalStart:  parentException.OriginalStart,
			Calendar:       child.Calendar,
			CalendarID:     child.CalendarID,
			RecurringEvent: child,
		}

		parentException.ChildEvents = append(parentException.ChildEvents, childException)
		created = append(created, childException)
	}

	return created
}

func copyAttendees(parent *model.CalendarEvent) []*model.Attendee {
	attendees := parent.Attendees
	if parent.RecurringEvent != nil && parent.Cancelled {
		attendees = parent.RecurringEvent.Attendees
	}

	res := make([]*model.Attendee, len(attendees))
	for i, a := range attendees {
		res[i] = &model.Attendee{
			DisplayName: a.DisplayName,
			Email:       a.Email,
			Type:        a.Type,
			Status:      a.Status,
			UserID:      a.UserID,
		}
	}

	return res
}

func eventOrganizationID(event *model.CalendarEvent) (int64, bool) {
	if event.Calendar != nil {
		return event.Calendar.OrganizationID, true
	}
	if event.SystemCalendar != nil {
		return event.SystemCalendar.OrganizationID, true
	}
	return 0, false
}
