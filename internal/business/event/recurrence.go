package event

import (
	"context"
	"fmt"
)

// RemoveRecurrence снимает правило повторения с корня серии. Существующие
// исключения остаются обычными событиями.
func (s *Service) RemoveRecurrence(ctx context.Context, eventID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.eventsRepository.LockEvent(ctx, tx, eventID); err != nil {
		return fmt.Errorf("lock event: %w", err)
	}

	if err := s.eventsRepository.DeleteRecurrence(ctx, tx, eventID); err != nil {
		return fmt.Errorf("eventsRepository.DeleteRecurrence: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// DeleteEvent удаляет событие вместе с дочерними копиями.
func (s *Service) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.eventsRepository.DeleteEvent(ctx, s.db, id); err != nil {
		return fmt.Errorf("eventsRepository.DeleteEvent: %w", err)
	}

	return nil
}
