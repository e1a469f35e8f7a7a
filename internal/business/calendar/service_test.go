package calendar_test

import (
	"context"

	"github.com/avoronov/calendar-events-backend/internal/business/calendar"
	"github.com/avoronov/calendar-events-backend/internal/database"
	"github.com/avoronov/calendar-events-backend/internal/model"
	"go.uber.org/zap"
)

type fakeCalendars struct {
	byID       map[int64]*model.Calendar
	defaults   map[int64]*model.Calendar
	byOwner    map[int64][]*model.Calendar
	lookupUIDs [][]int64
}

func (f *fakeCalendars) GetCalendarByID(_ context.Context, _ database.Queryable, id int64) (*model.Calendar, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return c, nil
}

func (f *fakeCalendars) FindDefaultCalendars(_ context.Context, _ database.Queryable, userIDs []int64, organizationID int64) ([]*model.Calendar, error) {
	f.lookupUIDs = append(f.lookupUIDs, userIDs)

	var res []*model.Calendar
	for _, id := range userIDs {
		c, ok := f.defaults[id]
		if !ok || c.OrganizationID != organizationID {
			continue
		}
		res = append(res, c)
	}
	return res, nil
}

func (f *fakeCalendars) GetUserCalendars(_ context.Context, _ database.Queryable, organizationID, userID int64) ([]*model.Calendar, error) {
	var res []*model.Calendar
	for _, c := range f.byOwner[userID] {
		if c.OrganizationID == organizationID {
			res = append(res, c)
		}
	}
	return res, nil
}

type fakeSystemCalendars struct {
	byID map[int64]*model.SystemCalendar
}

func (f *fakeSystemCalendars) GetSystemCalendarByID(_ context.Context, _ database.Queryable, id int64) (*model.SystemCalendar, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return c, nil
}

func (f *fakeSystemCalendars) GetSystemCalendars(_ context.Context, _ database.Queryable, organizationID int64) ([]*model.SystemCalendar, error) {
	var res []*model.SystemCalendar
	for _, c := range f.byID {
		if c.OrganizationID == organizationID || c.Public {
			res = append(res, c)
		}
	}
	return res, nil
}

type fakeStatuses struct {
	byCode map[string]*model.Status
}

func (f *fakeStatuses) FindStatusByCode(_ context.Context, _ database.Queryable, code string) (*model.Status, error) {
	s, ok := f.byCode[code]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return s, nil
}

type fakeUsers struct {
	byID map[int64]*model.User
}

func (f *fakeUsers) GetUserByID(_ context.Context, _ database.Queryable, id int64) (*model.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return u, nil
}

type fakeConfig struct {
	system bool
	public bool
}

func (f *fakeConfig) IsSystemCalendarEnabled() bool { return f.system }
func (f *fakeConfig) IsPublicCalendarEnabled() bool { return f.public }

type testEnv struct {
	service         *calendar.Service
	calendars       *fakeCalendars
	systemCalendars *fakeSystemCalendars
	statuses        *fakeStatuses
	users           *fakeUsers
	config          *fakeConfig
}

func newTestEnv() *testEnv {
	env := &testEnv{
		calendars: &fakeCalendars{
			byID:     map[int64]*model.Calendar{},
			defaults: map[int64]*model.Calendar{},
			byOwner:  map[int64][]*model.Calendar{},
		},
		systemCalendars: &fakeSystemCalendars{byID: map[int64]*model.SystemCalendar{}},
		statuses: &fakeStatuses{byCode: map[string]*model.Status{
			"none":      {Code: "none", Value: model.AttendeeStatusNone, Name: "None"},
			"accepted":  {Code: "accepted", Value: model.AttendeeStatusAccepted, Name: "Accepted"},
			"declined":  {Code: "declined", Value: model.AttendeeStatusDeclined, Name: "Declined"},
			"tentative": {Code: "tentative", Value: model.AttendeeStatusTentative, Name: "Tentative"},
		}},
		users:  &fakeUsers{byID: map[int64]*model.User{}},
		config: &fakeConfig{system: true, public: true},
	}

	env.service = calendar.NewService(
		nil,
		zap.NewNop().Sugar(),
		env.calendars,
		env.systemCalendars,
		env.statuses,
		env.users,
		env.config,
	)

	return env
}

func (e *testEnv) addDefaultCalendar(userID, calendarID, organizationID int64) *model.Calendar {
	c := &model.Calendar{
		ID:             calendarID,
		OrganizationID: organizationID,
		OwnerID:        userID,
	}
	e.calendars.byID[calendarID] = c
	e.calendars.defaults[userID] = c
	e.calendars.byOwner[userID] = append(e.calendars.byOwner[userID], c)
	return c
}

func userIDPtr(id int64) *int64 {
	return &id
}

func attendeeFor(userID int64) *model.Attendee {
	return &model.Attendee{
		DisplayName: "user",
		Email:       "user@example.com",
		UserID:      userIDPtr(userID),
	}
}
