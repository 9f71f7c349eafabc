package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-network/lending/internal/authz"
	"github.com/Astemirdum/book-network/lending/internal/errs"
	"github.com/Astemirdum/book-network/lending/internal/model"
	"github.com/Astemirdum/book-network/pkg/kafka"
)

const (
	msgAlreadyBorrowed = "the requested book is already borrowed"
	msgNothingToReturn = "you did not borrow this book"
	msgNotReturnedYet  = "the book is not returned yet. You cannot approve its return"
)

func (s *Service) BorrowBook(ctx context.Context, actor model.Identity, bookID int64) (int64, error) {
	book, err := s.getBook(ctx, bookID)
	if err != nil {
		return 0, err
	}
	if err = authz.CanBorrow(actor, book); err != nil {
		return 0, err
	}

	_, err = s.repo.FindUnresolvedRecord(ctx, bookID, actor.ID)
	switch {
	case err == nil:
		return 0, errs.AlreadyBorrowed(msgAlreadyBorrowed)
	case !errors.Is(err, errs.ErrNotFound):
		return 0, errors.Wrap(err, "FindUnresolvedRecord")
	}

	id, err := s.repo.CreateTransaction(ctx, model.TransactionRecord{
		BookID:    bookID,
		UserID:    actor.ID,
		AuditInfo: model.AuditInfo{CreatedBy: actor.ID},
	})
	if err != nil {
		if errors.Is(err, errs.ErrAlreadyBorrowed) {
			return 0, errs.AlreadyBorrowed(msgAlreadyBorrowed)
		}
		return 0, errors.Wrap(err, "CreateTransaction")
	}

	s.log.Info("book borrowed", zap.Int64("bookID", bookID), zap.Int64("userID", actor.ID), zap.Int64("recordID", id))
	s.publish(ctx, kafka.EventBorrowed, book, id, actor.ID)
	return id, nil
}

func (s *Service) ReturnBook(ctx context.Context, actor model.Identity, bookID int64) (int64, error) {
	book, err := s.getBook(ctx, bookID)
	if err != nil {
		return 0, err
	}
	if err = authz.CanReturn(actor, book); err != nil {
		return 0, err
	}

	id, err := s.repo.MarkReturned(ctx, bookID, actor.ID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return 0, errs.NotPermitted(msgNothingToReturn)
		}
		return 0, errors.Wrap(err, "MarkReturned")
	}

	s.log.Info("book returned", zap.Int64("bookID", bookID), zap.Int64("userID", actor.ID), zap.Int64("recordID", id))
	s.publish(ctx, kafka.EventReturned, book, id, actor.ID)
	return id, nil
}

func (s *Service) ApproveReturn(ctx context.Context, actor model.Identity, bookID int64) (int64, error) {
	book, err := s.getBook(ctx, bookID)
	if err != nil {
		return 0, err
	}
	if err = authz.CanApprove(actor, book); err != nil {
		return 0, err
	}

	rec, err := s.repo.ApproveReturn(ctx, bookID, actor.ID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return 0, errs.NotPermitted(msgNotReturnedYet)
		}
		return 0, errors.Wrap(err, "ApproveReturn")
	}

	s.log.Info("return approved", zap.Int64("bookID", bookID), zap.Int64("ownerID", actor.ID), zap.Int64("recordID", rec.ID))
	s.publish(ctx, kafka.EventReturnApproved, book, rec.ID, rec.UserID)
	return rec.ID, nil
}

func (s *Service) ListBorrowedBooks(ctx context.Context, actor model.Identity, p model.Pageable) (model.Page[model.BorrowedBook], error) {
	return s.repo.ListBorrowedByUser(ctx, actor.ID, p)
}

func (s *Service) ListReturnedBooks(ctx context.Context, actor model.Identity, p model.Pageable) (model.Page[model.BorrowedBook], error) {
	return s.repo.ListReturnedForOwner(ctx, actor.ID, p)
}
