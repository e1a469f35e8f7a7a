package event

import (
	"context"
	"fmt"

	calendar_manager "github.com/avoronov/calendar-events-backend/internal/business/calendar"
	"github.com/avoronov/calendar-events-backend/internal/database"
	"github.com/avoronov/calendar-events-backend/internal/model"
)

// persistReconciliation сохраняет созданные согласованием сущности: дочерние
// копии с участниками, копии исключений и денормализованные ссылки.
func (s *Service) persistReconciliation(ctx context.Context, q database.Queryable, parent *model.CalendarEvent, rec *calendar_manager.Reconciliation) error {
	if err := s.persistRelatedAttendee(ctx, q, parent); err != nil {
		return err
	}

	for _, child := range rec.CreatedChildren {
		child.ParentID = &parent.ID

		id, err := s.eventsRepository.CreateEvent(ctx, q, child)
		if err != nil {
			return fmt.Errorf("eventsRepository.CreateEvent child: %w", err)
		}
		child.ID = id

		for _, a := range child.Attendees {
			a.EventID = id

			attendeeID, err := s.eventsRepository.CreateAttendee(ctx, q, a)
			if err != nil {
				return fmt.Errorf("eventsRepository.CreateAttendee: %w", err)
			}
			a.ID = attendeeID
		}

		if err := s.persistRelatedAttendee(ctx, q, child); err != nil {
			return err
		}
	}

	// копии исключений ссылаются на уже сохраненные дочерние события
	for _, parentException := range parent.Exceptions {
		for _, childException := range parentException.ChildEvents {
			if childException.ID != 0 {
				continue
			}

			childException.ParentID = &parentException.ID
			if childException.RecurringEvent != nil {
				childException.RecurringEventID = &childException.RecurringEvent.ID
			}

			id, err := s.eventsRepository.CreateEvent(ctx, q, childException)
			if err != nil {
				return fmt.Errorf("eventsRepository.CreateEvent exception: %w", err)
			}
			childException.ID = id
		}
	}

	return nil
}

func (s *Service) persistRelatedAttendee(ctx context.Context, q database.Queryable, event *model.CalendarEvent) error {
	var attendeeID *int64
	if event.RelatedAttendee != nil {
		attendeeID = &event.RelatedAttendee.ID
	}

	if err := s.eventsRepository.SetRelatedAttendee(ctx, q, event.ID, attendeeID); err != nil {
		return fmt.Errorf("eventsRepository.SetRelatedAttendee: %w", err)
	}
	event.RelatedAttendeeID = attendeeID

	return nil
}

func (s *Service) notifyCreated(ctx context.Context, event *model.CalendarEvent, rec *calendar_manager.Reconciliation) {
	if s.inviteNotifier == nil || len(rec.CreatedChildren) == 0 {
		return
	}

	userIDs := make([]int64, 0, len(rec.CreatedChildren))
	for _, child := range rec.CreatedChildren {
		if child.Calendar != nil {
			userIDs = append(userIDs, child.Calendar.OwnerID)
		}
	}

	s.inviteNotifier.NotifyInvited(ctx, event, userIDs)
}
