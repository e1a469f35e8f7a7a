package calendar_test

import (
	"context"
	"errors"
	"testing"

	"github.com/avoronov/calendar-events-backend/internal/model"
)

func TestSetCalendarAssignsPersonalCalendar(t *testing.T) {
	env := newTestEnv()
	c := env.addDefaultCalendar(1, 10, 1)

	event := &model.CalendarEvent{}
	if err := env.service.SetCalendar(context.Background(), event, model.CalendarAliasUser, 10); err != nil {
		t.Fatal(err)
	}

	if event.Calendar != c {
		t.Error("calendar not assigned")
	}
	if event.SystemCalendar != nil || event.SystemCalendarID != nil {
		t.Error("system calendar should be cleared")
	}
}

func TestSetCalendarIsNoOpForSameCalendar(t *testing.T) {
	env := newTestEnv()
	c := env.addDefaultCalendar(1, 10, 1)

	event := &model.CalendarEvent{Calendar: c, CalendarID: &c.ID}
	delete(env.calendars.byID, 10) // lookup would fail if attempted

	if err := env.service.SetCalendar(context.Background(), event, model.CalendarAliasUser, 10); err != nil {
		t.Fatal(err)
	}
	if event.Calendar != c {
		t.Error("calendar should be untouched")
	}
}

func TestSetCalendarSystemAndPublicGating(t *testing.T) {
	env := newTestEnv()
	env.systemCalendars.byID[5] = &model.SystemCalendar{ID: 5, OrganizationID: 1, Name: "org", Public: false}
	env.systemCalendars.byID[6] = &model.SystemCalendar{ID: 6, OrganizationID: 1, Name: "holidays", Public: true}

	// enabled: both kinds assign
	event := &model.CalendarEvent{}
	if err := env.service.SetCalendar(context.Background(), event, model.CalendarAliasSystem, 5); err != nil {
		t.Fatal(err)
	}
	if event.SystemCalendar == nil || event.SystemCalendar.ID != 5 {
		t.Error("system calendar not assigned")
	}

	if err := env.service.SetCalendar(context.Background(), event, model.CalendarAliasPublic, 6); err != nil {
		t.Fatal(err)
	}
	if event.SystemCalendar == nil || event.SystemCalendar.ID != 6 {
		t.Error("public calendar not assigned")
	}

	// disabled system calendars
	env.config.system = false
	forbidden := &model.ForbiddenError{}
	if err := env.service.SetCalendar(context.Background(), &model.CalendarEvent{}, model.CalendarAliasSystem, 5); !errors.As(err, &forbidden) {
		t.Errorf("expected ForbiddenError, got %v", err)
	}

	// disabled public calendars
	env.config.system = true
	env.config.public = false
	if err := env.service.SetCalendar(context.Background(), &model.CalendarEvent{}, model.CalendarAliasPublic, 6); !errors.As(err, &forbidden) {
		t.Errorf("expected ForbiddenError, got %v", err)
	}
}

func TestSetCalendarRejectsUnknownAlias(t *testing.T) {
	env := newTestEnv()

	err := env.service.SetCalendar(context.Background(), &model.CalendarEvent{}, "google", 7)

	aliasErr := &model.InvalidCalendarAliasError{}
	if !errors.As(err, &aliasErr) {
		t.Fatalf("expected InvalidCalendarAliasError, got %v", err)
	}
	if aliasErr.Alias != "google" || aliasErr.CalendarID != 7 {
		t.Errorf("error carries (%q, %d), want (%q, %d)", aliasErr.Alias, aliasErr.CalendarID, "google", 7)
	}
}
