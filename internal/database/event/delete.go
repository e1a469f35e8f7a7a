package event

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/avoronov/calendar-events-backend/internal/database"
)

// DeleteEvent удаляет событие. Дочерние копии и их участники удаляются
// каскадом на уровне схемы.
func (*Repository) DeleteEvent(ctx context.Context, q database.Queryable, id int64) error {
	qb := database.PSQL.
		Delete(database.EventsTable).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) DeleteAttendees(ctx context.Context, q database.Queryable, eventID int64) error {
	qb := database.PSQL.
		Delete(database.AttendeesTable).
		Where(sq.Eq{"event_id": eventID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) DeleteRecurrence(ctx context.Context, q database.Queryable, eventID int64) error {
	qb := database.PSQL.
		Delete(database.RecurrencesTable).
		Where(sq.Eq{"event_id": eventID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
