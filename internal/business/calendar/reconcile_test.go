package calendar_test

import (
	"context"
	"testing"
	"time"

	"github.com/avoronov/calendar-events-backend/internal/model"
)

func TestReconcileCreatesChildrenForMissingUsers(t *testing.T) {
	env := newTestEnv()
	organizerCalendar := env.addDefaultCalendar(1, 10, 1)
	env.addDefaultCalendar(2, 20, 1)
	env.addDefaultCalendar(3, 30, 1)

	event := &model.CalendarEvent{
		ID:         100,
		Title:      "planning",
		Start:      time.Date(2022, 6, 1, 10, 0, 0, 0, time.UTC),
		End:        time.Date(2022, 6, 1, 11, 0, 0, 0, time.UTC),
		Calendar:   organizerCalendar,
		CalendarID: &organizerCalendar.ID,
		Attendees:  []*model.Attendee{attendeeFor(1), attendeeFor(2), attendeeFor(3)},
	}

	res, err := env.service.Reconcile(context.Background(), event)
	if err != nil {
		t.Fatal(err)
	}

	if len(res.CreatedChildren) != 2 {
		t.Fatalf("expected 2 children, got %d", len(res.CreatedChildren))
	}

	owners := map[int64]bool{}
	for _, child := range res.CreatedChildren {
		if child.Calendar == nil {
			t.Fatal("child has no calendar")
		}
		owners[child.Calendar.OwnerID] = true

		if child.Title != event.Title {
			t.Errorf("child title %q, want %q", child.Title, event.Title)
		}
		if len(child.Attendees) != 3 {
			t.Errorf("child has %d attendees, want 3", len(child.Attendees))
		}
		if child.RelatedAttendee == nil {
			t.Error("child has no related attendee")
		} else if *child.RelatedAttendee.UserID != child.Calendar.OwnerID {
			t.Error("child related attendee does not match calendar owner")
		}
	}

	// the organizer covers themselves, no child for user 1
	if owners[1] || !owners[2] || !owners[3] {
		t.Errorf("children created for wrong users: %v", owners)
	}

	if len(event.ChildEvents) != 2 {
		t.Errorf("children not linked to parent: %d", len(event.ChildEvents))
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	env := newTestEnv()
	organizerCalendar := env.addDefaultCalendar(1, 10, 1)
	env.addDefaultCalendar(2, 20, 1)

	event := &model.CalendarEvent{
		Calendar:   organizerCalendar,
		CalendarID: &organizerCalendar.ID,
		Attendees:  []*model.Attendee{attendeeFor(1), attendeeFor(2)},
	}

	first, err := env.service.Reconcile(context.Background(), event)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.CreatedChildren) != 1 {
		t.Fatalf("expected 1 child on first run, got %d", len(first.CreatedChildren))
	}

	second, err := env.service.Reconcile(context.Background(), event)
	if err != nil {
		t.Fatal(err)
	}
	if len(second.CreatedChildren) != 0 {
		t.Errorf("expected no children on second run, got %d", len(second.CreatedChildren))
	}
	if len(event.ChildEvents) != 1 {
		t.Errorf("expected 1 child total, got %d", len(event.ChildEvents))
	}
}

func TestReconcileReportsOrphanedChildren(t *testing.T) {
	env := newTestEnv()
	organizerCalendar := env.addDefaultCalendar(1, 10, 1)
	removedUserCalendar := env.addDefaultCalendar(2, 20, 1)

	event := &model.CalendarEvent{
		Calendar:   organizerCalendar,
		CalendarID: &organizerCalendar.ID,
		Attendees:  []*model.Attendee{attendeeFor(1)},
		ChildEvents: []*model.CalendarEvent{{
			Calendar:   removedUserCalendar,
			CalendarID: &removedUserCalendar.ID,
		}},
	}

	res, err := env.service.Reconcile(context.Background(), event)
	if err != nil {
		t.Fatal(err)
	}

	if len(res.OrphanedUserIDs) != 1 || res.OrphanedUserIDs[0] != 2 {
		t.Errorf("orphaned user ids = %v, want [2]", res.OrphanedUserIDs)
	}
	if len(res.CreatedChildren) != 0 {
		t.Errorf("expected no new children, got %d", len(res.CreatedChildren))
	}
}

func TestReconcileExcludesExternalAttendees(t *testing.T) {
	env := newTestEnv()
	organizerCalendar := env.addDefaultCalendar(1, 10, 1)

	event := &model.CalendarEvent{
		Calendar:   organizerCalendar,
		CalendarID: &organizerCalendar.ID,
		Attendees: []*model.Attendee{
			attendeeFor(1),
			{DisplayName: "external", Email: "guest@example.org"},
		},
	}

	res, err := env.service.Reconcile(context.Background(), event)
	if err != nil {
		t.Fatal(err)
	}

	if len(res.CreatedChildren) != 0 {
		t.Errorf("external attendee got a child event")
	}
}

func TestReconcileSkipsUsersWithoutDefaultCalendar(t *testing.T) {
	env := newTestEnv()
	organizerCalendar := env.addDefaultCalendar(1, 10, 1)
	env.addDefaultCalendar(2, 20, 1)
	// user 3 has no calendar

	event := &model.CalendarEvent{
		Calendar:   organizerCalendar,
		CalendarID: &organizerCalendar.ID,
		Attendees:  []*model.Attendee{attendeeFor(1), attendeeFor(2), attendeeFor(3)},
	}

	res, err := env.service.Reconcile(context.Background(), event)
	if err != nil {
		t.Fatal(err)
	}

	if len(res.CreatedChildren) != 1 {
		t.Fatalf("expected 1 child, got %d", len(res.CreatedChildren))
	}
	if res.CreatedChildren[0].Calendar.OwnerID != 2 {
		t.Errorf("child created for wrong user %d", res.CreatedChildren[0].Calendar.OwnerID)
	}
	if len(res.SkippedUserIDs) != 1 || res.SkippedUserIDs[0] != 3 {
		t.Errorf("skipped user ids = %v, want [3]", res.SkippedUserIDs)
	}
}

func TestReconcileCopiesRecurrenceExceptions(t *testing.T) {
	env := newTestEnv()
	organizerCalendar := env.addDefaultCalendar(1, 10, 1)
	env.addDefaultCalendar(2, 20, 1)
	env.addDefaultCalendar(3, 30, 1)

	originalStart := time.Date(2022, 6, 8, 10, 0, 0, 0, time.UTC)
	event := &model.CalendarEvent{
		ID:         100,
		Title:      "standup",
		Calendar:   organizerCalendar,
		CalendarID: &organizerCalendar.ID,
		Attendees:  []*model.Attendee{attendeeFor(1), attendeeFor(2), attendeeFor(3)},
		Recurrence: &model.Recurrence{EventID: 100, RepeatType: model.RepeatTypeEveryWeek},
	}
	event.Exceptions = []*model.CalendarEvent{
		{
			Title:          "standup",
			Start:          originalStart.Add(2 * time.Hour),
			End:            originalStart.Add(3 * time.Hour),
			OriginalStart:  &originalStart,
			Calendar:       organizerCalendar,
			CalendarID:     &organizerCalendar.ID,
			RecurringEvent: event,
		},
		{
			Title:          "standup",
			Cancelled:      true,
			OriginalStart:  &originalStart,
			Calendar:       organizerCalendar,
			CalendarID:     &organizerCalendar.ID,
			RecurringEvent: event,
		},
	}

	res, err := env.service.Reconcile(context.Background(), event)
	if err != nil {
		t.Fatal(err)
	}

	// 2 missing users x 2 exceptions
	if len(res.CreatedChildren) != 2 {
		t.Fatalf("expected 2 children, got %d", len(res.CreatedChildren))
	}
	if len(res.CreatedExceptions) != 4 {
		t.Fatalf("expected 4 exception copies, got %d", len(res.CreatedExceptions))
	}

	for _, parentException := range event.Exceptions {
		if len(parentException.ChildEvents) != 2 {
			t.Errorf("parent exception has %d children, want 2", len(parentException.ChildEvents))
		}
	}

	for _, exception := range res.CreatedExceptions {
		if exception.RecurringEvent == nil {
			t.Fatal("exception copy has no recurring event link")
		}
		if exception.RecurringEvent.Calendar != exception.Calendar {
			t.Error("exception copy is not on its child's calendar")
		}
		if exception.OriginalStart == nil || !exception.OriginalStart.Equal(originalStart) {
			t.Error("exception copy lost original start")
		}
	}
}

func TestReconcileWithoutRecurrenceCopiesNothing(t *testing.T) {
	env := newTestEnv()
	organizerCalendar := env.addDefaultCalendar(1, 10, 1)
	env.addDefaultCalendar(2, 20, 1)

	event := &model.CalendarEvent{
		Calendar:   organizerCalendar,
		CalendarID: &organizerCalendar.ID,
		Attendees:  []*model.Attendee{attendeeFor(1), attendeeFor(2)},
	}

	res, err := env.service.Reconcile(context.Background(), event)
	if err != nil {
		t.Fatal(err)
	}

	if len(res.CreatedExceptions) != 0 {
		t.Errorf("expected no exception copies, got %d", len(res.CreatedExceptions))
	}
}

func TestReconcileCancelledExceptionTracksRootAttendees(t *testing.T) {
	env := newTestEnv()
	organizerCalendar := env.addDefaultCalendar(1, 10, 1)
	env.addDefaultCalendar(2, 20, 1)

	root := &model.CalendarEvent{
		ID:         100,
		Calendar:   organizerCalendar,
		CalendarID: &organizerCalendar.ID,
		Attendees:  []*model.Attendee{attendeeFor(1), attendeeFor(2)},
		Recurrence: &model.Recurrence{EventID: 100, RepeatType: model.RepeatTypeEveryDay},
	}

	cancelled := &model.CalendarEvent{
		Cancelled:      true,
		Calendar:       organizerCalendar,
		CalendarID:     &organizerCalendar.ID,
		RecurringEvent: root,
		// the occurrence keeps no attendees of its own
	}

	res, err := env.service.Reconcile(context.Background(), cancelled)
	if err != nil {
		t.Fatal(err)
	}

	if len(res.CreatedChildren) != 1 {
		t.Fatalf("expected 1 child from root attendees, got %d", len(res.CreatedChildren))
	}
	if res.CreatedChildren[0].Calendar.OwnerID != 2 {
		t.Errorf("child created for wrong user %d", res.CreatedChildren[0].Calendar.OwnerID)
	}
}

func TestReconcileCancelledExceptionChildKeepsCancellation(t *testing.T) {
	env := newTestEnv()
	organizerCalendar := env.addDefaultCalendar(1, 10, 1)
	env.addDefaultCalendar(2, 20, 1)

	root := &model.CalendarEvent{
		ID:         100,
		Calendar:   organizerCalendar,
		CalendarID: &organizerCalendar.ID,
		Attendees:  []*model.Attendee{attendeeFor(1), attendeeFor(2)},
		Recurrence: &model.Recurrence{EventID: 100, RepeatType: model.RepeatTypeEveryDay},
	}

	originalStart := time.Date(2022, 6, 3, 10, 0, 0, 0, time.UTC)
	cancelled := &model.CalendarEvent{
		ID:             101,
		Cancelled:      true,
		OriginalStart:  &originalStart,
		Calendar:       organizerCalendar,
		CalendarID:     &organizerCalendar.ID,
		RecurringEvent: root,
	}

	res, err := env.service.Reconcile(context.Background(), cancelled)
	if err != nil {
		t.Fatal(err)
	}

	if len(res.CreatedChildren) != 1 {
		t.Fatalf("expected 1 child, got %d", len(res.CreatedChildren))
	}

	child := res.CreatedChildren[0]
	if !child.Cancelled {
		t.Error("child of cancelled exception is not cancelled")
	}
	if child.OriginalStart == nil || !child.OriginalStart.Equal(originalStart) {
		t.Error("child lost original start")
	}
	if child.RecurringEvent != root {
		t.Error("child is not linked to the series root")
	}
	if child.RecurringEventID == nil || *child.RecurringEventID != root.ID {
		t.Error("child recurring event id not set")
	}
}

func TestReconcileRecomputesRelatedAttendee(t *testing.T) {
	env := newTestEnv()
	organizerCalendar := env.addDefaultCalendar(1, 10, 1)

	self := attendeeFor(1)
	event := &model.CalendarEvent{
		Calendar:   organizerCalendar,
		CalendarID: &organizerCalendar.ID,
		Attendees:  []*model.Attendee{self},
	}

	if _, err := env.service.Reconcile(context.Background(), event); err != nil {
		t.Fatal(err)
	}
	if event.RelatedAttendee != self {
		t.Error("related attendee not recomputed")
	}

	// the organizer removed themselves from the attendee list
	event.Attendees = nil
	if _, err := env.service.Reconcile(context.Background(), event); err != nil {
		t.Fatal(err)
	}
	if event.RelatedAttendee != nil {
		t.Error("related attendee should be cleared")
	}
}
