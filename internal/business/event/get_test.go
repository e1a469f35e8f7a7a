package event_test

import (
	"context"
	"testing"
	"time"

	"github.com/avoronov/calendar-events-backend/internal/business/event"
	"github.com/avoronov/calendar-events-backend/internal/database"
	"github.com/avoronov/calendar-events-backend/internal/model"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"
)

type fakeEvents struct {
	events      []*model.CalendarEvent
	recurrences map[int64]*model.Recurrence
	exceptions  map[int64][]*model.CalendarEvent
}

func (f *fakeEvents) GetEvents(_ context.Context, _ database.Queryable, filter model.EventsFilter) ([]*model.CalendarEvent, error) {
	calendarIDs := map[int64]bool{}
	for _, id := range filter.CalendarIDs {
		calendarIDs[id] = true
	}
	systemCalendarIDs := map[int64]bool{}
	for _, id := range filter.SystemCalendarIDs {
		systemCalendarIDs[id] = true
	}

	var res []*model.CalendarEvent
	for _, e := range f.events {
		if e.CalendarID != nil && calendarIDs[*e.CalendarID] {
			res = append(res, e)
		}
		if e.SystemCalendarID != nil && systemCalendarIDs[*e.SystemCalendarID] {
			res = append(res, e)
		}
	}
	return res, nil
}

func (f *fakeEvents) GetRecurrences(_ context.Context, _ database.Queryable, eventIDs []int64) ([]*model.Recurrence, error) {
	var res []*model.Recurrence
	for _, id := range eventIDs {
		if r, ok := f.recurrences[id]; ok {
			res = append(res, r)
		}
	}
	return res, nil
}

func (f *fakeEvents) GetRecurringEventExceptions(_ context.Context, _ database.Queryable, recurringEventID int64) ([]*model.CalendarEvent, error) {
	return f.exceptions[recurringEventID], nil
}

func (f *fakeEvents) GetRecurrence(_ context.Context, _ database.Queryable, eventID int64) (*model.Recurrence, error) {
	if r, ok := f.recurrences[eventID]; ok {
		return r, nil
	}
	return nil, model.ErrNoRecord
}

func (f *fakeEvents) GetEventByID(_ context.Context, _ database.Queryable, id int64) (*model.CalendarEvent, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, model.ErrNoRecord
}

func (f *fakeEvents) GetChildEvents(_ context.Context, _ database.Queryable, parentID int64) ([]*model.CalendarEvent, error) {
	var res []*model.CalendarEvent
	for _, e := range f.events {
		if e.ParentID != nil && *e.ParentID == parentID {
			res = append(res, e)
		}
	}
	return res, nil
}

func (f *fakeEvents) GetAttendees(_ context.Context, _ database.Queryable, _ []int64) ([]*model.Attendee, error) {
	return nil, nil
}

func (f *fakeEvents) CreateEvent(_ context.Context, _ database.Queryable, _ *model.CalendarEvent) (int64, error) {
	return 0, nil
}

func (f *fakeEvents) CreateAttendee(_ context.Context, _ database.Queryable, _ *model.Attendee) (int64, error) {
	return 0, nil
}

func (f *fakeEvents) CreateRecurrence(_ context.Context, _ database.Queryable, _ *model.Recurrence) (int64, error) {
	return 0, nil
}

func (f *fakeEvents) UpdateEvent(_ context.Context, _ database.Queryable, _ *model.CalendarEvent) error {
	return nil
}

func (f *fakeEvents) SetRelatedAttendee(_ context.Context, _ database.Queryable, _ int64, _ *int64) error {
	return nil
}

func (f *fakeEvents) UpdateAttendeeStatus(_ context.Context, _ database.Queryable, _ int64, _ model.AttendeeStatus) error {
	return nil
}

func (f *fakeEvents) DeleteAttendees(_ context.Context, _ database.Queryable, _ int64) error {
	return nil
}

func (f *fakeEvents) DeleteRecurrence(_ context.Context, _ database.Queryable, _ int64) error {
	return nil
}

func (f *fakeEvents) DeleteEvent(_ context.Context, _ database.Queryable, _ int64) error {
	return nil
}

func (f *fakeEvents) LockEvent(_ context.Context, _ database.Queryable, _ int64) error {
	return nil
}

func calendarIDPtr(id int64) *int64 {
	return &id
}

func dailyRule(t *testing.T, start time.Time) string {
	t.Helper()

	rule, err := rrule.NewRRule(rrule.ROption{Freq: rrule.DAILY, Interval: 1, Dtstart: start.UTC()})
	if err != nil {
		t.Fatal(err)
	}
	return rule.String()
}

func TestGetEventsExpandsChildOfRecurringRoot(t *testing.T) {
	start := time.Date(2022, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	root := &model.CalendarEvent{
		ID:         1,
		Title:      "standup",
		Start:      start,
		End:        end,
		CalendarID: calendarIDPtr(10),
	}
	child := &model.CalendarEvent{
		ID:         2,
		Title:      "standup",
		Start:      start,
		End:        end,
		CalendarID: calendarIDPtr(20),
		ParentID:   &root.ID,
	}

	repo := &fakeEvents{
		events: []*model.CalendarEvent{root, child},
		recurrences: map[int64]*model.Recurrence{
			root.ID: {ID: 1, EventID: root.ID, RepeatType: model.RepeatTypeEveryDay, Rule: dailyRule(t, start)},
		},
		exceptions: map[int64][]*model.CalendarEvent{},
	}
	service := event.NewService(nil, zap.NewNop().Sugar(), repo, nil, nil, nil, nil)

	events, err := service.GetEvents(context.Background(), model.EventsFilter{
		From:        time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
		To:          time.Date(2022, 6, 8, 0, 0, 0, 0, time.UTC),
		CalendarIDs: []int64{20},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(events) != 7 {
		t.Fatalf("expected 7 occurrences on the invitee's calendar, got %d", len(events))
	}

	for i, e := range events {
		if e.ID != child.ID {
			t.Errorf("occurrence %d has id %d, want %d", i, e.ID, child.ID)
		}
		want := start.AddDate(0, 0, i)
		if !e.Start.Equal(want) {
			t.Errorf("occurrence %d starts at %v, want %v", i, e.Start, want)
		}
	}
}

func TestGetEventsListsSystemCalendarEvents(t *testing.T) {
	start := time.Date(2022, 6, 2, 12, 0, 0, 0, time.UTC)
	holiday := &model.CalendarEvent{
		ID:               3,
		Title:            "company holiday",
		Start:            start,
		End:              start.Add(time.Hour),
		SystemCalendarID: calendarIDPtr(5),
	}

	repo := &fakeEvents{
		events:      []*model.CalendarEvent{holiday},
		recurrences: map[int64]*model.Recurrence{},
		exceptions:  map[int64][]*model.CalendarEvent{},
	}
	service := event.NewService(nil, zap.NewNop().Sugar(), repo, nil, nil, nil, nil)

	events, err := service.GetEvents(context.Background(), model.EventsFilter{
		From:              time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
		To:                time.Date(2022, 6, 8, 0, 0, 0, 0, time.UTC),
		SystemCalendarIDs: []int64{5},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(events) != 1 || events[0].ID != holiday.ID {
		t.Fatalf("system calendar event not listed: %v", events)
	}
}
