package api

import (
	"fmt"
	"time"

	calendar_manager "github.com/avoronov/calendar-events-backend/internal/business/calendar"
	"github.com/avoronov/calendar-events-backend/internal/model"
)

const dateTimeFormat = time.RFC3339

type dateTime time.Time

func (d dateTime) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Time(d).Format(dateTimeFormat))), nil
}

func (d *dateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid time %s", s)
	}

	t, err := time.Parse(dateTimeFormat, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("invalid time format: %w", err)
	}

	*d = dateTime(t)
	return nil
}

type userResp struct {
	ID          int64  `json:"id,omitempty"`
	FullName    string `json:"full_name,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Photo       string `json:"photo,omitempty"`
}

func mapToUserResp(user *model.User) (*userResp, error) {
	return &userResp{
		ID:          user.ID,
		FullName:    user.FullName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Photo:       user.Photo,
	}, nil
}

type calendarResp struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
}

func mapToCalendarResp(info *model.CalendarInfo) (*calendarResp, error) {
	return &calendarResp{
		UID:  calendar_manager.CalendarUID(model.CalendarAliasUser, info.ID),
		Name: info.Name,
	}, nil
}

func mapToSystemCalendarResp(info *model.SystemCalendarInfo) (*calendarResp, error) {
	alias := model.CalendarAliasSystem
	if info.Public {
		alias = model.CalendarAliasPublic
	}

	return &calendarResp{
		UID:  calendar_manager.CalendarUID(alias, info.ID),
		Name: info.Name,
	}, nil
}

type attendeeResp struct {
	ID          int64  `json:"id,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Type        int    `json:"type"`
	Status      int    `json:"status"`
	UserID      *int64 `json:"user_id,omitempty"`
}

func mapToAttendeeResp(attendee *model.Attendee) (*attendeeResp, error) {
	return &attendeeResp{
		ID:          attendee.ID,
		DisplayName: attendee.DisplayName,
		Email:       attendee.Email,
		Type:        int(attendee.Type),
		Status:      int(attendee.Status),
		UserID:      attendee.UserID,
	}, nil
}

type eventResp struct {
	ID            int64           `json:"id"`
	UID           string          `json:"uid"`
	CalendarUID   string          `json:"calendar_uid,omitempty"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	From          dateTime        `json:"from"`
	To            dateTime        `json:"to"`
	AllDay        bool            `json:"all_day"`
	RepeatType    int             `json:"repeat_type"`
	Cancelled     bool            `json:"cancelled,omitempty"`
	OriginalStart *dateTime       `json:"original_start,omitempty"`
	Attendees     []*attendeeResp `json:"attendees,omitempty"`
	MyStatus      *int            `json:"my_status,omitempty"`
}

// Повторяющиеся события разворачиваются в несколько вхождений с общим ID,
// поэтому UID дополняется временем начала вхождения.
func mapToEventsResp(event *model.CalendarEvent) (*eventResp, error) {
	attendees, _ := mapSlice(event.Attendees, mapToAttendeeResp)

	resp := &eventResp{
		ID:          event.ID,
		UID:         fmt.Sprintf("%d_%d", event.ID, event.Start.Unix()),
		Title:       event.Title,
		Description: event.Description,
		From:        dateTime(event.Start),
		To:          dateTime(event.End),
		AllDay:      event.AllDay,
		Cancelled:   event.Cancelled,
		Attendees:   attendees,
	}

	switch {
	case event.CalendarID != nil:
		resp.CalendarUID = calendar_manager.CalendarUID(model.CalendarAliasUser, *event.CalendarID)
	case event.SystemCalendarID != nil:
		alias := model.CalendarAliasSystem
		if event.SystemCalendar != nil && event.SystemCalendar.Public {
			alias = model.CalendarAliasPublic
		}
		resp.CalendarUID = calendar_manager.CalendarUID(alias, *event.SystemCalendarID)
	}

	if event.Recurrence != nil {
		resp.RepeatType = int(event.Recurrence.RepeatType)
	}

	if event.OriginalStart != nil {
		origin := dateTime(*event.OriginalStart)
		resp.OriginalStart = &origin
	}

	if event.RelatedAttendee != nil {
		status := int(event.RelatedAttendee.Status)
		resp.MyStatus = &status
	}

	return resp, nil
}
