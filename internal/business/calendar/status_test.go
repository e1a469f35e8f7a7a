package calendar_test

import (
	"context"
	"errors"
	"testing"

	"github.com/avoronov/calendar-events-backend/internal/model"
)

func TestChangeStatus(t *testing.T) {
	env := newTestEnv()

	self := attendeeFor(1)
	event := &model.CalendarEvent{
		Attendees:       []*model.Attendee{self},
		RelatedAttendee: self,
	}

	if err := env.service.ChangeStatus(context.Background(), event, "accepted"); err != nil {
		t.Fatal(err)
	}
	if self.Status != model.AttendeeStatusAccepted {
		t.Errorf("status = %v, want accepted", self.Status)
	}
}

func TestChangeStatusUnknownCode(t *testing.T) {
	env := newTestEnv()

	self := attendeeFor(1)
	self.Status = model.AttendeeStatusNone
	event := &model.CalendarEvent{
		Attendees:       []*model.Attendee{self},
		RelatedAttendee: self,
	}

	err := env.service.ChangeStatus(context.Background(), event, "bogus")

	statusErr := &model.StatusNotFoundError{}
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusNotFoundError, got %v", err)
	}
	if statusErr.Code != "bogus" {
		t.Errorf("error carries code %q, want %q", statusErr.Code, "bogus")
	}
	if self.Status != model.AttendeeStatusNone {
		t.Error("status changed on failed lookup")
	}
}

func TestChangeStatusWithoutRelatedAttendee(t *testing.T) {
	env := newTestEnv()

	err := env.service.ChangeStatus(context.Background(), &model.CalendarEvent{}, "accepted")

	notFound := &model.RelatedAttendeeNotFoundError{}
	if !errors.As(err, &notFound) {
		t.Fatalf("expected RelatedAttendeeNotFoundError, got %v", err)
	}
}
