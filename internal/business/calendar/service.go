package calendar

import (
	"context"

	"github.com/avoronov/calendar-events-backend/internal/database"
	"github.com/avoronov/calendar-events-backend/internal/model"
	"go.uber.org/zap"
)

// Service владеет графом событий: привязка события к календарю, ответ на
// приглашение и согласование дочерних копий с текущим списком участников.
type Service struct {
	db     database.PGX
	logger *zap.SugaredLogger

	calendars       calendarsRepository
	systemCalendars systemCalendarsRepository
	statuses        statusesRepository
	users           usersRepository
	calendarConfig  calendarConfig
}

type calendarsRepository interface {
	GetCalendarByID(ctx context.Context, q database.Queryable, id int64) (*model.Calendar, error)
	FindDefaultCalendars(ctx context.Context, q database.Queryable, userIDs []int64, organizationID int64) ([]*model.Calendar, error)
	GetUserCalendars(ctx context.Context, q database.Queryable, organizationID, userID int64) ([]*model.Calendar, error)
}

type systemCalendarsRepository interface {
	GetSystemCalendarByID(ctx context.Context, q database.Queryable, id int64) (*model.SystemCalendar, error)
	GetSystemCalendars(ctx context.Context, q database.Queryable, organizationID int64) ([]*model.SystemCalendar, error)
}

type statusesRepository interface {
	FindStatusByCode(ctx context.Context, q database.Queryable, code string) (*model.Status, error)
}

type usersRepository interface {
	GetUserByID(ctx context.Context, q database.Queryable, id int64) (*model.User, error)
}

type calendarConfig interface {
	IsPublicCalendarEnabled() bool
	IsSystemCalendarEnabled() bool
}

func NewService(
	db database.PGX,
	logger *zap.SugaredLogger,
	calendars calendarsRepository,
	systemCalendars systemCalendarsRepository,
	statuses statusesRepository,
	users usersRepository,
	calendarConfig calendarConfig,
) *Service {
	return &Service{
		db:              db,
		logger:          logger,
		calendars:       calendars,
		systemCalendars: systemCalendars,
		statuses:        statuses,
		users:           users,
		calendarConfig:  calendarConfig,
	}
}
