package calendar_test

import (
	"context"
	"testing"

	"github.com/avoronov/calendar-events-backend/internal/model"
)

func TestUserCalendarsBackfillsEmptyNames(t *testing.T) {
	env := newTestEnv()
	env.addDefaultCalendar(1, 10, 1)
	env.calendars.byOwner[1] = append(env.calendars.byOwner[1], &model.Calendar{
		ID:             11,
		OrganizationID: 1,
		OwnerID:        1,
		Name:           "Work",
	})
	env.users.byID[1] = &model.User{
		ID:         1,
		UserCreate: model.UserCreate{FullName: "Ivan Petrov", OrganizationID: 1},
	}

	calendars, err := env.service.UserCalendars(context.Background(), 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(calendars) != 2 {
		t.Fatalf("expected 2 calendars, got %d", len(calendars))
	}
	if calendars[0].Name != "Ivan Petrov" {
		t.Errorf("unnamed calendar got %q, want owner name", calendars[0].Name)
	}
	if calendars[1].Name != "Work" {
		t.Errorf("named calendar renamed to %q", calendars[1].Name)
	}
}

func TestSystemCalendars(t *testing.T) {
	env := newTestEnv()
	env.systemCalendars.byID[5] = &model.SystemCalendar{ID: 5, OrganizationID: 1, Name: "org", Public: false}
	env.systemCalendars.byID[6] = &model.SystemCalendar{ID: 6, OrganizationID: 2, Name: "holidays", Public: true}
	env.systemCalendars.byID[7] = &model.SystemCalendar{ID: 7, OrganizationID: 2, Name: "other org", Public: false}

	calendars, err := env.service.SystemCalendars(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(calendars) != 2 {
		t.Fatalf("expected 2 calendars, got %d", len(calendars))
	}

	byID := map[int64]*model.SystemCalendarInfo{}
	for _, c := range calendars {
		byID[c.ID] = c
	}
	if byID[5] == nil || byID[6] == nil {
		t.Errorf("wrong calendars listed: %v", byID)
	}
	if !byID[6].Public {
		t.Error("public flag lost")
	}
}
