package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	calendar_manager "github.com/avoronov/calendar-events-backend/internal/business/calendar"
	"github.com/avoronov/calendar-events-backend/internal/model"
	"github.com/avoronov/calendar-events-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type attendeeCreateReq struct {
	DisplayName string             `json:"display_name"`
	Email       string             `json:"email"`
	Type        model.AttendeeType `json:"type"`
	UserID      *int64             `json:"user_id"`
}

func mapToAttendeeCreate(req *attendeeCreateReq) (*model.AttendeeCreate, error) {
	return &model.AttendeeCreate{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Type:        req.Type,
		UserID:      req.UserID,
	}, nil
}

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		CalendarUID string               `json:"calendar_uid"`
		Title       string               `json:"title"`
		Description string               `json:"description"`
		AllDay      bool                 `json:"all_day"`
		From        dateTime             `json:"from"`
		To          dateTime             `json:"to"`
		RepeatType  model.RepeatType     `json:"repeat_type"`
		Attendees   []*attendeeCreateReq `json:"attendees"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(len(req.CalendarUID) != 0, "calendar_uid", "calendar uid must be provided")
	v.Check(len(req.Title) != 0, "title", "title must be provided")
	v.Check(!time.Time(req.From).IsZero(), "from", "from must be provided")
	v.Check(!time.Time(req.To).IsZero(), "to", "to must be provided")
	v.Check(!time.Time(req.To).Before(time.Time(req.From)), "to", "to must not be before from")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	attendees, _ := mapSlice(req.Attendees, mapToAttendeeCreate)

	event, err := a.eventsService.CreateEvent(r.Context(), &model.EventCreate{
		CalendarUID: req.CalendarUID,
		Title:       req.Title,
		Description: req.Description,
		Start:       time.Time(req.From),
		End:         time.Time(req.To),
		AllDay:      req.AllDay,
		RepeatType:  req.RepeatType,
		Attendees:   attendees,
	})
	if err != nil {
		a.eventErrorResponse(w, r, fmt.Errorf("create event: %w", err))
		return
	}

	resp, _ := mapToEventsResp(event)

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	event, err := a.eventsService.GetEvent(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("get event: %w", err))
		}
		return
	}

	resp, _ := mapToEventsResp(event)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	filter, err := parseEventsQuery(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if len(filter.CalendarIDs) == 0 && len(filter.SystemCalendarIDs) == 0 {
		calendars, err := a.calendarsService.UserCalendars(r.Context(), user.OrganizationID, user.ID)
		if err != nil {
			a.serverErrorResponse(w, r, fmt.Errorf("get user calendars: %w", err))
			return
		}

		filter.CalendarIDs = make([]int64, len(calendars))
		for i, c := range calendars {
			filter.CalendarIDs[i] = c.ID
		}
	}

	events, err := a.eventsService.GetEvents(r.Context(), *filter)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get events: %w", err))
		return
	}

	resp, _ := mapSlice(events, mapToEventsResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func parseEventsQuery(r *http.Request) (*model.EventsFilter, error) {
	var err error

	res := &model.EventsFilter{}

	v := r.URL.Query().Get("from")
	if v == "" {
		return nil, fmt.Errorf("from must be provided")
	}
	res.From, err = time.Parse(dateTimeFormat, v)
	if err != nil {
		return nil, fmt.Errorf("invalid time format: %w", err)
	}

	v = r.URL.Query().Get("to")
	if v == "" {
		return nil, fmt.Errorf("to must be provided")
	}
	res.To, err = time.Parse(dateTimeFormat, v)
	if err != nil {
		return nil, fmt.Errorf("invalid time format: %w", err)
	}

	vals := r.URL.Query()["calendar_ids"]
	res.CalendarIDs = make([]int64, len(vals))
	for i, v := range vals {
		res.CalendarIDs[i], err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid calendar id %v", v)
		}
	}

	vals = r.URL.Query()["system_calendar_ids"]
	res.SystemCalendarIDs = make([]int64, len(vals))
	for i, v := range vals {
		res.SystemCalendarIDs[i], err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid system calendar id %v", v)
		}
	}

	return res, nil
}

func (a *Api) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	req := &struct {
		CalendarUID string               `json:"calendar_uid"`
		Title       string               `json:"title"`
		Description string               `json:"description"`
		AllDay      bool                 `json:"all_day"`
		From        dateTime             `json:"from"`
		To          dateTime             `json:"to"`
		Attendees   []*attendeeCreateReq `json:"attendees"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(len(req.Title) != 0, "title", "title must be provided")
	v.Check(!time.Time(req.From).IsZero(), "from", "from must be provided")
	v.Check(!time.Time(req.To).IsZero(), "to", "to must be provided")
	v.Check(!time.Time(req.To).Before(time.Time(req.From)), "to", "to must not be before from")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	var attendees []*model.AttendeeCreate
	if req.Attendees != nil {
		attendees, _ = mapSlice(req.Attendees, mapToAttendeeCreate)
	}

	event, reconciliation, err := a.eventsService.UpdateEvent(r.Context(), id, &model.EventUpdate{
		CalendarUID: req.CalendarUID,
		Title:       req.Title,
		Description: req.Description,
		Start:       time.Time(req.From),
		End:         time.Time(req.To),
		AllDay:      req.AllDay,
		Attendees:   attendees,
	})
	if err != nil {
		a.eventErrorResponse(w, r, fmt.Errorf("update event: %w", err))
		return
	}

	eventResp, _ := mapToEventsResp(event)

	resp := &struct {
		Event           interface{} `json:"event"`
		OrphanedUserIDs []int64     `json:"orphaned_user_ids,omitempty"`
	}{
		Event:           eventResp,
		OrphanedUserIDs: reconciliation.OrphanedUserIDs,
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) changeStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	req := &struct {
		Status string `json:"status"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.eventsService.ChangeStatus(r.Context(), id, req.Status); err != nil {
		a.eventErrorResponse(w, r, fmt.Errorf("change status: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) removeRecurrenceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	if err := a.eventsService.RemoveRecurrence(r.Context(), id); err != nil {
		a.eventErrorResponse(w, r, fmt.Errorf("remove recurrence: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	if err := a.eventsService.DeleteEvent(r.Context(), id); err != nil {
		a.eventErrorResponse(w, r, fmt.Errorf("delete event: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

// eventErrorResponse разворачивает типизированные ошибки календарного слоя
// в соответствующие HTTP статусы.
func (a *Api) eventErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var (
		invalidAlias      *model.InvalidCalendarAliasError
		forbidden         *model.ForbiddenError
		noRelatedAttendee *model.RelatedAttendeeNotFoundError
		statusNotFound    *model.StatusNotFoundError
	)

	switch {
	case errors.Is(err, model.ErrNoRecord):
		a.notFoundResponse(w, r)
	case errors.As(err, &forbidden):
		a.forbiddenResponse(w, r, forbidden.Message)
	case errors.As(err, &invalidAlias):
		a.badRequestResponse(w, r, invalidAlias)
	case errors.As(err, &statusNotFound):
		a.badRequestResponse(w, r, statusNotFound)
	case errors.As(err, &noRelatedAttendee):
		a.clientErrorResponse(w, r, http.StatusUnprocessableEntity, noRelatedAttendee.Error())
	case errors.Is(err, calendar_manager.ErrMalformedUID):
		a.badRequestResponse(w, r, err)
	default:
		a.serverErrorResponse(w, r, err)
	}
}
