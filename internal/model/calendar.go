package model

const (
	CalendarAliasUser   = "user"
	CalendarAliasSystem = "system"
	CalendarAliasPublic = "public"
)

// Calendar is a personal calendar owned by a single user within an organization.
type Calendar struct {
	ID             int64
	OrganizationID int64
	OwnerID        int64
	Name           string
}

// SystemCalendar is an organization-wide calendar without an individual owner.
// Public system calendars are visible to every user.
type SystemCalendar struct {
	ID             int64
	OrganizationID int64
	Name           string
	Public         bool
}

type CalendarInfo struct {
	ID   int64
	Name string
}

type SystemCalendarInfo struct {
	ID     int64
	Name   string
	Public bool
}
