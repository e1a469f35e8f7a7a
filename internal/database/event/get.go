package event

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/avoronov/calendar-events-backend/internal/database"
	"github.com/avoronov/calendar-events-backend/internal/model"
)

func (*Repository) GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.CalendarEvent, error) {
	events, err := getEvents(ctx, q, sq.Eq{"id": id})
	if err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return nil, model.ErrNoRecord
	}

	return events[0], nil
}

// GetChildEvents возвращает дочерние копии события, по одной на приглашенного
// пользователя.
func (*Repository) GetChildEvents(ctx context.Context, q database.Queryable, parentID int64) ([]*model.CalendarEvent, error) {
	return getEvents(ctx, q, sq.Eq{"parent_id": parentID})
}

// GetRecurringEventExceptions возвращает события-исключения серии.
func (*Repository) GetRecurringEventExceptions(ctx context.Context, q database.Queryable, recurringEventID int64) ([]*model.CalendarEvent, error) {
	return getEvents(ctx, q, sq.Eq{"recurring_event_id": recurringEventID})
}

func (*Repository) GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.CalendarEvent, error) {
	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, eventsRangeQuery(filter)); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.CalendarEvent, len(dtos))
	for i, d := range dtos {
		res[i] = mapToEvent(d)
	}

	return res, nil
}

func (*Repository) GetAttendees(ctx context.Context, q database.Queryable, eventIDs []int64) ([]*model.Attendee, error) {
	qb := attendeesQuery.
		Where(sq.Eq{"event_id": eventIDs}).
		OrderBy("id")

	var dtos []*attendeeDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Attendee, len(dtos))
	for i, d := range dtos {
		res[i] = mapToAttendee(d)
	}

	return res, nil
}

func (*Repository) GetRecurrence(ctx context.Context, q database.Queryable, eventID int64) (*model.Recurrence, error) {
	qb := database.PSQL.
		Select("id", "event_id", "repeat_type", "rule", "until_date").
		From(database.RecurrencesTable).
		Where(sq.Eq{"event_id": eventID})

	var dtos []*recurrenceDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	if len(dtos) == 0 {
		return nil, model.ErrNoRecord
	}

	return mapToRecurrence(dtos[0]), nil
}

func (*Repository) GetRecurrences(ctx context.Context, q database.Queryable, eventIDs []int64) ([]*model.Recurrence, error) {
	qb := database.PSQL.
		Select("id", "event_id", "repeat_type", "rule", "until_date").
		From(database.RecurrencesTable).
		Where(sq.Eq{"event_id": eventIDs})

	var dtos []*recurrenceDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Recurrence, len(dtos))
	for i, d := range dtos {
		res[i] = mapToRecurrence(d)
	}

	return res, nil
}

// LockEvent берет строчную блокировку родительского события. Пока она
// удерживается, никто другой не может согласовывать граф этого события.
func (*Repository) LockEvent(ctx context.Context, q database.Queryable, id int64) error {
	qb := database.PSQL.
		Select("id").
		From(database.EventsTable).
		Where(sq.Eq{"id": id}).
		Suffix("for update")

	var locked int64
	if err := q.Get(ctx, &locked, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

// eventsRangeQuery отбирает события личных и системных календарей в интервале.
// Корни серий и исключения попадают в выборку независимо от end_date, их
// разворачивает бизнес-слой.
func eventsRangeQuery(filter model.EventsFilter) sq.SelectBuilder {
	return baseQuery.
		Where(sq.Or{
			sq.Eq{"calendar_id": filter.CalendarIDs},
			sq.Eq{"system_calendar_id": filter.SystemCalendarIDs},
		}).
		Where(sq.Lt{"start_date": filter.To}).
		Where(sq.Or{
			sq.Expr("recurring_event_id is not null"),
			sq.Expr("id in (select event_id from " + database.RecurrencesTable + ")"),
			sq.Gt{"end_date": filter.From},
		}).
		OrderBy("start_date")
}

func getEvents(ctx context.Context, q database.Queryable, predicate interface{}) ([]*model.CalendarEvent, error) {
	qb := baseQuery.
		Where(predicate).
		OrderBy("id")

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.CalendarEvent, len(dtos))
	for i, d := range dtos {
		res[i] = mapToEvent(d)
	}

	return res, nil
}
