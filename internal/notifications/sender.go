package notifications

import (
	"context"
	"strconv"

	"github.com/avoronov/calendar-events-backend/internal/database"
	"github.com/avoronov/calendar-events-backend/internal/model"
	"github.com/avoronov/calendar-events-backend/internal/pkg/fcm"
	"go.uber.org/zap"
)

// Sender рассылает приглашенным пользователям push о новой копии события на
// их календаре.
type Sender struct {
	db     database.PGX
	logger *zap.SugaredLogger
	users  usersRepository
	fcm    fcmService
}

type usersRepository interface {
	GetUsersByIDs(ctx context.Context, q database.Queryable, ids []int64) ([]*model.User, error)
}

type fcmService interface {
	SendMessageBatch(ctx context.Context, ms []*fcm.Message) error
}

func NewSender(
	db database.PGX,
	logger *zap.SugaredLogger,
	users usersRepository,
	fcm fcmService,
) *Sender {
	return &Sender{
		db:     db,
		logger: logger,
		users:  users,
		fcm:    fcm,
	}
}

// NotifyInvited не возвращает ошибку: доставка уведомлений не должна ронять
// сохранение события.
func (s *Sender) NotifyInvited(ctx context.Context, event *model.CalendarEvent, userIDs []int64) {
	if len(userIDs) == 0 {
		return
	}

	users, err := s.users.GetUsersByIDs(ctx, s.db, userIDs)
	if err != nil {
		s.logger.Errorw("failed to get invited users", "user_ids", userIDs, "err", err)
		return
	}

	var messages []*fcm.Message
	for _, u := range users {
		if u.PushToken == "" {
			continue
		}

		messages = append(messages, &fcm.Message{
			Token: u.PushToken,
			Data: map[string]string{
				"type":     "event_invitation",
				"event_id": strconv.FormatInt(event.ID, 10),
				"title":    event.Title,
				"start":    event.Start.Format("2006-01-02T15:04:05Z07:00"),
			},
		})
	}

	if len(messages) == 0 {
		return
	}

	if err := s.fcm.SendMessageBatch(ctx, messages); err != nil {
		s.logger.Errorw("failed to send invite notifications", "event_id", event.ID, "err", err)
		return
	}

	s.logger.Debugw("sent invite notifications", "event_id", event.ID, "count", len(messages))
}
