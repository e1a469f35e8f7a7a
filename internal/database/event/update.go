package event

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/avoronov/calendar-events-backend/internal/database"
	"github.com/avoronov/calendar-events-backend/internal/model"
)

func (*Repository) UpdateEvent(ctx context.Context, q database.Queryable, event *model.CalendarEvent) error {
	qb := database.PSQL.
		Update(database.EventsTable).
		Set("title", event.Title).
		Set("description", event.Description).
		Set("start_date", event.Start).
		Set("end_date", event.End).
		Set("all_day", event.AllDay).
		Set("cancelled", event.Cancelled).
		Set("original_start", event.OriginalStart).
		Set("calendar_id", event.CalendarID).
		Set("system_calendar_id", event.SystemCalendarID).
		Where(sq.Eq{"id": event.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

// SetRelatedAttendee обновляет денормализованную ссылку на "своего" участника.
func (*Repository) SetRelatedAttendee(ctx context.Context, q database.Queryable, eventID int64, attendeeID *int64) error {
	qb := database.PSQL.
		Update(database.EventsTable).
		Set("related_attendee_id", attendeeID).
		Where(sq.Eq{"id": eventID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) UpdateAttendeeStatus(ctx context.Context, q database.Queryable, attendeeID int64, status model.AttendeeStatus) error {
	qb := database.PSQL.
		Update(database.AttendeesTable).
		Set("status", int(status)).
		Where(sq.Eq{"id": attendeeID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
