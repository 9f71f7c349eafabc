package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Astemirdum/book-network/lending/internal/errs"
	"github.com/Astemirdum/book-network/lending/internal/model"
	"github.com/Astemirdum/book-network/pkg/kafka"
)

// GetStats summarises consumed lending events by type.
func (s *Service) GetStats(ctx context.Context) (model.StatsInfo, error) {
	return s.repo.GetStats(ctx)
}

// RecordEvent is used by the kafka consumer.
func (s *Service) RecordEvent(ctx context.Context, event kafka.EventLending) error {
	if _, err := uuid.Parse(event.EventID); err != nil {
		return errs.InvalidInput("invalid event id %q", event.EventID)
	}
	switch event.EventType {
	case kafka.EventBorrowed, kafka.EventReturned, kafka.EventReturnApproved, kafka.EventFeedback:
	default:
		return errs.InvalidInput("unknown event type %q", event.EventType)
	}
	return s.repo.RecordEvent(ctx, event)
}
