package event

import (
	"context"
	"fmt"

	"github.com/avoronov/calendar-events-backend/internal/database"
	"github.com/avoronov/calendar-events-backend/internal/model"
)

func (*Repository) CreateEvent(ctx context.Context, q database.Queryable, event *model.CalendarEvent) (int64, error) {
	qb := database.PSQL.
		Insert(database.EventsTable).
		Columns(
			"title",
			"description",
			"start_date",
			"end_date",
			"all_day",
			"cancelled",
			"original_start",
			"calendar_id",
			"system_calendar_id",
			"parent_id",
			"recurring_event_id",
		).
		Values(
			event.Title,
			event.Description,
			event.Start,
			event.End,
			event.AllDay,
			event.Cancelled,
			event.OriginalStart,
			event.CalendarID,
			event.SystemCalendarID,
			event.ParentID,
			event.RecurringEventID,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}

func (*Repository) CreateAttendee(ctx context.Context, q database.Queryable, attendee *model.Attendee) (int64, error) {
	qb := database.PSQL.
		Insert(database.AttendeesTable).
		Columns(
			"event_id",
			"display_name",
			"email",
			"type",
			"status",
			"user_id",
		).
		Values(
			attendee.EventID,
			attendee.DisplayName,
			attendee.Email,
			int(attendee.Type),
			int(attendee.Status),
			attendee.UserID,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}

func (*Repository) CreateRecurrence(ctx context.Context, q database.Queryable, recurrence *model.Recurrence) (int64, error) {
	qb := database.PSQL.
		Insert(database.RecurrencesTable).
		Columns("event_id", "repeat_type", "rule", "until_date").
		Values(
			recurrence.EventID,
			int(recurrence.RepeatType),
			recurrence.Rule,
			recurrence.Until,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
