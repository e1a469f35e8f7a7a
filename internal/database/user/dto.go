package user

import (
	"github.com/avoronov/calendar-events-backend/internal/model"
)

type userDTO struct {
	ID             int64
	OrganizationID int64
	FullName       string
	Email          string
	PhoneNumber    string
	Photo          string
	PushToken      string
}

func mapToUser(dto *userDTO) *model.User {
	return &model.User{
		ID:        dto.ID,
		PushToken: dto.PushToken,
		UserCreate: model.UserCreate{
			OrganizationID: dto.OrganizationID,
			FullName:       dto.FullName,
			Email:          dto.Email,
			PhoneNumber:    dto.PhoneNumber,
			Photo:          dto.Photo,
		},
	}
}
