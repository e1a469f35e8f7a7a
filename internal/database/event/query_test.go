package event

import (
	"strings"
	"testing"
	"time"

	"github.com/avoronov/calendar-events-backend/internal/model"
)

func TestEventsRangeQueryMatchesBothCalendarKinds(t *testing.T) {
	sql, args, err := eventsRangeQuery(model.EventsFilter{
		From:              time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
		To:                time.Date(2022, 6, 8, 0, 0, 0, 0, time.UTC),
		CalendarIDs:       []int64{10},
		SystemCalendarIDs: []int64{5},
	}).ToSql()
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(sql, "calendar_id IN") {
		t.Errorf("query does not filter personal calendars: %s", sql)
	}
	if !strings.Contains(sql, "system_calendar_id IN") {
		t.Errorf("query does not filter system calendars: %s", sql)
	}

	found := map[int64]bool{}
	for _, a := range args {
		if id, ok := a.(int64); ok {
			found[id] = true
		}
	}
	if !found[10] || !found[5] {
		t.Errorf("calendar ids missing from args: %v", args)
	}
}

func TestEventsRangeQueryWithoutSystemCalendars(t *testing.T) {
	sql, _, err := eventsRangeQuery(model.EventsFilter{
		From:        time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
		To:          time.Date(2022, 6, 8, 0, 0, 0, 0, time.UTC),
		CalendarIDs: []int64{10},
	}).ToSql()
	if err != nil {
		t.Fatal(err)
	}

	// пустой список системных календарей не должен превращаться в "IS NULL"
	if strings.Contains(sql, "system_calendar_id IS NULL") {
		t.Errorf("empty system calendar list matches null column: %s", sql)
	}
}
