package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-network/lending/internal/errs"
	"github.com/Astemirdum/book-network/lending/internal/model"
	"github.com/Astemirdum/book-network/lending/internal/queue"
	"github.com/Astemirdum/book-network/lending/internal/repository"
	"github.com/Astemirdum/book-network/pkg/kafka"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	enqueuer queue.Enqueuer
	now      func() time.Time
}

func NewService(repo repository.Repository, enqueuer queue.Enqueuer, log *zap.Logger) *Service {
	return &Service{
		log:      log.Named("service"),
		repo:     repo,
		enqueuer: enqueuer,
		now:      time.Now,
	}
}

// SeedRoles makes sure every role exists before traffic is accepted.
func (s *Service) SeedRoles(ctx context.Context, roles []string) error {
	if len(roles) == 0 {
		return errors.New("no roles to seed")
	}
	if err := s.repo.SeedRoles(ctx, roles); err != nil {
		return errors.Wrap(err, "SeedRoles")
	}
	return nil
}

func (s *Service) getBook(ctx context.Context, id int64) (model.Book, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Book{}, errs.NotFound("no book found with ID %d", id)
		}
		return model.Book{}, errors.Wrap(err, "GetBook")
	}
	return book, nil
}

// publish is best-effort: a failed send never fails the operation.
func (s *Service) publish(ctx context.Context, typ kafka.EventType, book model.Book, recordID, userID int64) {
	event := kafka.EventLending{
		EventID:   uuid.NewString(),
		EventType: typ,
		Timestamp: s.now().UTC(),
		BookID:    book.ID,
		RecordID:  recordID,
		UserID:    userID,
		OwnerID:   book.OwnerID,
	}
	key := strconv.FormatInt(book.ID, 10)
	if err := s.enqueuer.Enqueue(ctx, kafka.LendingTopic, key, event); err != nil {
		s.log.Warn("publish lending event",
			zap.String("type", string(typ)),
			zap.Int64("bookID", book.ID),
			zap.Error(err))
	}
}
