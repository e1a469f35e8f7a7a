package api

import (
	"context"
	"io"
	"net/http"

	calendar_manager "github.com/avoronov/calendar-events-backend/internal/business/calendar"
	"github.com/avoronov/calendar-events-backend/internal/database"
	"github.com/avoronov/calendar-events-backend/internal/model"
	"github.com/avoronov/calendar-events-backend/internal/pkg/oauth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Api struct {
	handler    http.Handler
	logger     *zap.SugaredLogger
	randSource io.Reader

	jwts          jwtManager
	tokenParser   tokenParser
	refreshTokens refreshTokenRepository

	db               database.PGX
	users            userRepository
	calendars        calendarRepository
	calendarsService calendarsService
	eventsService    eventsService
}

type jwtManager interface {
	CreateToken(id int64) (string, error)
	GetIdFromToken(token string) (int64, error)
}

type tokenParser interface {
	GetInfoGoogle(ctx context.Context, authCode string) (*oauth.GoogleInfo, error)
}

type refreshTokenRepository interface {
	Add(ctx context.Context, session string, id int64) error
	Get(ctx context.Context, session string) (int64, error)
	Refresh(ctx context.Context, old, new string) error
	Delete(ctx context.Context, session string) error
}

type userRepository interface {
	CreateUser(ctx context.Context, q database.Queryable, user *model.UserCreate) (int64, error)
	GetUserByEmail(ctx context.Context, q database.Queryable, email string) (*model.User, error)
	GetUserByID(ctx context.Context, q database.Queryable, id int64) (*model.User, error)
	SearchUsers(ctx context.Context, q database.Queryable, filter model.UserSearchFilter) ([]*model.User, error)
	UpdateUserPushToken(ctx context.Context, q database.Queryable, id int64, token string) error
}

type calendarRepository interface {
	CreateCalendar(ctx context.Context, q database.Queryable, calendar *model.Calendar, isDefault bool) (int64, error)
}

type calendarsService interface {
	UserCalendars(ctx context.Context, organizationID, userID int64) ([]*model.CalendarInfo, error)
	SystemCalendars(ctx context.Context, organizationID int64) ([]*model.SystemCalendarInfo, error)
}

type eventsService interface {
	CreateEvent(ctx context.Context, info *model.EventCreate) (*model.CalendarEvent, error)
	GetEvent(ctx context.Context, id int64) (*model.CalendarEvent, error)
	GetEvents(ctx context.Context, filter model.EventsFilter) ([]*model.CalendarEvent, error)
	UpdateEvent(ctx context.Context, id int64, info *model.EventUpdate) (*model.CalendarEvent, *calendar_manager.Reconciliation, error)
	ChangeStatus(ctx context.Context, eventID int64, statusCode string) error
	RemoveRecurrence(ctx context.Context, eventID int64) error
	DeleteEvent(ctx context.Context, id int64) error
}

func NewApi(
	logger *zap.SugaredLogger,
	randSource io.Reader,
	jwts jwtManager,
	tokenParser tokenParser,
	refreshTokens refreshTokenRepository,
	db database.PGX,
	users userRepository,
	calendars calendarRepository,
	calendarsService calendarsService,
	eventsService eventsService,
) (*Api, error) {
	a := &Api{
		logger:           logger,
		randSource:       randSource,
		jwts:             jwts,
		tokenParser:      tokenParser,
		refreshTokens:    refreshTokens,
		db:               db,
		users:            users,
		calendars:        calendars,
		calendarsService: calendarsService,
		eventsService:    eventsService,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signin/google", a.signInGoogleHandler)
		r.Post("/refresh", a.refreshTokenHandler)
		r.Post("/logout", a.logoutUserHandler)
	})

	r.With(a.auth).Route("/", func(r chi.Router) {
		r.With(a.userCtx).Route("/user", func(r chi.Router) {
			r.Get("/", a.getUserHandler)
			r.Put("/push-token", a.updatePushTokenHandler)
		})

		r.With(a.userCtx).Get("/users", a.searchUsersHandler)

		r.With(a.userCtx).Route("/calendars", func(r chi.Router) {
			r.Get("/", a.getUserCalendarsHandler)
			r.Get("/system", a.getSystemCalendarsHandler)
		})

		r.With(a.userCtx).Route("/events", func(r chi.Router) {
			r.Post("/", a.createEventHandler)
			r.Get("/", a.getEventsHandler)
			r.Get("/{eventID}", a.getEventHandler)
			r.Put("/{eventID}", a.updateEventHandler)
			r.Put("/{eventID}/status", a.changeStatusHandler)
			r.Delete("/{eventID}", a.deleteEventHandler)
			r.Delete("/{eventID}/recurrence", a.removeRecurrenceHandler)
		})
	})

	fileServer := http.FileServer(http.Dir("./files"))
	r.Get("/files/*", http.StripPrefix("/files", fileServer).ServeHTTP)

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
