package api

import (
	"fmt"
	"net/http"

	"github.com/avoronov/calendar-events-backend/internal/model"
)

func (a *Api) getUserCalendarsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	calendars, err := a.calendarsService.UserCalendars(r.Context(), user.OrganizationID, user.ID)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get user calendars: %w", err))
		return
	}

	resp, _ := mapSlice(calendars, mapToCalendarResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getSystemCalendarsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	calendars, err := a.calendarsService.SystemCalendars(r.Context(), user.OrganizationID)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get system calendars: %w", err))
		return
	}

	resp, _ := mapSlice(calendars, mapToSystemCalendarResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
