package event

import (
	"time"

	"github.com/avoronov/calendar-events-backend/internal/model"
)

type eventDTO struct {
	ID                int64
	Title             string
	Description       string
	StartDate         time.Time
	EndDate           time.Time
	AllDay            bool
	Cancelled         bool
	OriginalStart     *time.Time
	CalendarID        *int64
	SystemCalendarID  *int64
	ParentID          *int64
	RecurringEventID  *int64
	RelatedAttendeeID *int64
}

func mapToEvent(dto *eventDTO) *model.CalendarEvent {
	return &model.CalendarEvent{
		ID:                dto.ID,
		Title:             dto.Title,
		Description:       dto.Description,
		Start:             dto.StartDate,
		End:               dto.EndDate,
		AllDay:            dto.AllDay,
		Cancelled:         dto.Cancelled,
		OriginalStart:     dto.OriginalStart,
		CalendarID:        dto.CalendarID,
		SystemCalendarID:  dto.SystemCalendarID,
		ParentID:          dto.ParentID,
		RecurringEventID:  dto.RecurringEventID,
		RelatedAttendeeID: dto.RelatedAttendeeID,
	}
}

type attendeeDTO struct {
	ID          int64
	EventID     int64
	DisplayName string
	Email       string
	Type        int
	Status      int
	UserID      *int64
}

func mapToAttendee(dto *attendeeDTO) *model.Attendee {
	return &model.Attendee{
		ID:          dto.ID,
		EventID:     dto.EventID,
		DisplayName: dto.DisplayName,
		Email:       dto.Email,
		Type:        model.AttendeeType(dto.Type),
		Status:      model.AttendeeStatus(dto.Status),
		UserID:      dto.UserID,
	}
}

type recurrenceDTO struct {
	ID         int64
	EventID    int64
	RepeatType int
	Rule       string
	UntilDate  *time.Time
}

func mapToRecurrence(dto *recurrenceDTO) *model.Recurrence {
	return &model.Recurrence{
		ID:         dto.ID,
		EventID:    dto.EventID,
		RepeatType: model.RepeatType(dto.RepeatType),
		Rule:       dto.Rule,
		Until:      dto.UntilDate,
	}
}
