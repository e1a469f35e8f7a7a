package event

import (
	"context"

	calendar_manager "github.com/avoronov/calendar-events-backend/internal/business/calendar"
	"github.com/avoronov/calendar-events-backend/internal/database"
	"github.com/avoronov/calendar-events-backend/internal/model"
	"go.uber.org/zap"
)

// Service реализует сценарии сохранения событий: создание и изменение события
// с согласованием дочерних копий, ответ на приглашение, управление серией.
type Service struct {
	db     database.PGX
	logger *zap.SugaredLogger

	eventsRepository eventsRepository
	calendars        calendarsRepository
	systemCalendars  systemCalendarsRepository
	calendarManager  calendarManager
	inviteNotifier   inviteNotifier
}

type eventsRepository interface {
	CreateEvent(ctx context.Context, q database.Queryable, event *model.CalendarEvent) (int64, error)
	GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.CalendarEvent, error)
	GetChildEvents(ctx context.Context, q database.Queryable, parentID int64) ([]*model.CalendarEvent, error)
	GetRecurringEventExceptions(ctx context.Context, q database.Queryable, recurringEventID int64) ([]*model.CalendarEvent, error)
	GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.CalendarEvent, error)
	GetAttendees(ctx context.Context, q database.Queryable, eventIDs []int64) ([]*model.Attendee, error)
	GetRecurrence(ctx context.Context, q database.Queryable, eventID int64) (*model.Recurrence, error)
	GetRecurrences(ctx context.Context, q database.Queryable, eventIDs []int64) ([]*model.Recurrence, error)
	CreateAttendee(ctx context.Context, q database.Queryable, attendee *model.Attendee) (int64, error)
	CreateRecurrence(ctx context.Context, q database.Queryable, recurrence *model.Recurrence) (int64, error)
	UpdateEvent(ctx context.Context, q database.Queryable, event *model.CalendarEvent) error
	SetRelatedAttendee(ctx context.Context, q database.Queryable, eventID int64, attendeeID *int64) error
	UpdateAttendeeStatus(ctx context.Context, q database.Queryable, attendeeID int64, status model.AttendeeStatus) error
	DeleteAttendees(ctx context.Context, q database.Queryable, eventID int64) error
	DeleteRecurrence(ctx context.Context, q database.Queryable, eventID int64) error
	DeleteEvent(ctx context.Context, q database.Queryable, id int64) error
	LockEvent(ctx context.Context, q database.Queryable, id int64) error
}

type calendarsRepository interface {
	GetCalendarsByIDs(ctx context.Context, q database.Queryable, ids []int64) ([]*model.Calendar, error)
}

type systemCalendarsRepository interface {
	GetSystemCalendarByID(ctx context.Context, q database.Queryable, id int64) (*model.SystemCalendar, error)
}

type calendarManager interface {
	SetCalendar(ctx context.Context, event *model.CalendarEvent, alias string, calendarID int64) error
	Reconcile(ctx context.Context, event *model.CalendarEvent) (*calendar_manager.Reconciliation, error)
	ChangeStatus(ctx context.Context, event *model.CalendarEvent, statusCode string) error
}

type inviteNotifier interface {
	NotifyInvited(ctx context.Context, event *model.CalendarEvent, userIDs []int64)
}

func NewService(
	db database.PGX,
	logger *zap.SugaredLogger,
	eventsRepository eventsRepository,
	calendars calendarsRepository,
	systemCalendars systemCalendarsRepository,
	calendarManager calendarManager,
	inviteNotifier inviteNotifier,
) *Service {
	return &Service{
		db:               db,
		logger:           logger,
		eventsRepository: eventsRepository,
		calendars:        calendars,
		systemCalendars:  systemCalendars,
		calendarManager:  calendarManager,
		inviteNotifier:   inviteNotifier,
	}
}
