package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/avoronov/calendar-events-backend/internal/model"
	"github.com/avoronov/calendar-events-backend/internal/pkg/validator"
)

var errCantRetrieveUser = errors.New("can't retrieve user from context")

func (a *Api) getUserHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	resp := &struct {
		ID          int64  `json:"id,omitempty"`
		FullName    string `json:"full_name,omitempty"`
		Email       string `json:"email,omitempty"`
		PhoneNumber string `json:"phone_number,omitempty"`
		Photo       string `json:"photo,omitempty"`
	}{
		ID:          user.ID,
		FullName:    user.FullName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Photo:       user.Photo,
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updatePushTokenHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	req := &struct {
		PushToken string `json:"push_token"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.users.UpdateUserPushToken(r.Context(), a.db, user.ID, req.PushToken); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) searchUsersHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			a.badRequestResponse(w, r, errors.New("limit must be an integer"))
			return
		}
		limit = parsed
	}

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			a.badRequestResponse(w, r, errors.New("page must be an integer"))
			return
		}
		page = parsed
	}

	v := validator.New()
	v.Check(limit > 0, "limit", "must be positive")
	v.Check(limit <= 100, "limit", "must not be greater than 100")
	v.Check(page > 0, "page", "must be positive")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	users, err := a.users.SearchUsers(r.Context(), a.db, model.UserSearchFilter{
		Query: query,
		Limit: limit,
		Page:  page,
	})
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	resp, _ := mapSlice(users, mapToUserResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
