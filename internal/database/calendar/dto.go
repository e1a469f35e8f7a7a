package calendar

import (
	"github.com/avoronov/calendar-events-backend/internal/model"
)

type calendarDTO struct {
	ID             int64
	OrganizationID int64
	OwnerID        int64
	Name           string
}

func mapToCalendar(dto *calendarDTO) *model.Calendar {
	return &model.Calendar{
		ID:             dto.ID,
		OrganizationID: dto.OrganizationID,
		OwnerID:        dto.OwnerID,
		Name:           dto.Name,
	}
}
