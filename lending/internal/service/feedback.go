package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/Astemirdum/book-network/lending/internal/authz"
	"github.com/Astemirdum/book-network/lending/internal/errs"
	"github.com/Astemirdum/book-network/lending/internal/model"
	"github.com/Astemirdum/book-network/pkg/kafka"
)

const (
	MinNote = 0
	MaxNote = 5
)

// AddFeedback does not require the actor to have borrowed the book.
func (s *Service) AddFeedback(ctx context.Context, actor model.Identity, bookID int64, note float64, comment string) (int64, error) {
	book, err := s.getBook(ctx, bookID)
	if err != nil {
		return 0, err
	}
	if err = authz.CanFeedback(actor, book); err != nil {
		return 0, err
	}
	if note < MinNote || note > MaxNote {
		return 0, errs.InvalidInput("note must be between %d and %d", MinNote, MaxNote)
	}
	if strings.TrimSpace(comment) == "" {
		return 0, errs.InvalidInput("comment must not be blank")
	}

	id, err := s.repo.CreateFeedback(ctx, model.Feedback{
		BookID:    bookID,
		Note:      note,
		Comment:   comment,
		AuditInfo: model.AuditInfo{CreatedBy: actor.ID},
	})
	if err != nil {
		return 0, errors.Wrap(err, "CreateFeedback")
	}
	s.publish(ctx, kafka.EventFeedback, book, id, actor.ID)
	return id, nil
}

func (s *Service) ListFeedback(ctx context.Context, actor model.Identity, bookID int64, p model.Pageable) (model.Page[model.FeedbackResponse], error) {
	page, err := s.repo.ListFeedbackByBook(ctx, bookID, p)
	if err != nil {
		return model.Page[model.FeedbackResponse]{}, errors.Wrap(err, "ListFeedbackByBook")
	}
	items := make([]model.FeedbackResponse, 0, len(page.Content))
	for _, f := range page.Content {
		items = append(items, model.FeedbackResponse{
			Note:        f.Note,
			Comment:     f.Comment,
			OwnFeedback: f.CreatedBy == actor.ID,
		})
	}
	return model.Page[model.FeedbackResponse]{
		Content:       items,
		Number:        page.Number,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		First:         page.First,
		Last:          page.Last,
	}, nil
}
