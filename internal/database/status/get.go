package status

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/avoronov/calendar-events-backend/internal/database"
	"github.com/avoronov/calendar-events-backend/internal/model"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

type statusDTO struct {
	Code  string
	Value int
	Name  string
}

func (*Repository) FindStatusByCode(ctx context.Context, q database.Queryable, code string) (*model.Status, error) {
	qb := database.PSQL.
		Select("code", "value", "name").
		From(database.AttendeeStatusesTable).
		Where(sq.Eq{"code": code})

	var dtos []*statusDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	if len(dtos) == 0 {
		return nil, model.ErrNoRecord
	}

	return &model.Status{
		Code:  dtos[0].Code,
		Value: model.AttendeeStatus(dtos[0].Value),
		Name:  dtos[0].Name,
	}, nil
}
