package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/book-network/lending/internal/authz"
	"github.com/Astemirdum/book-network/lending/internal/model"
)

func (s *Service) CreateBook(ctx context.Context, actor model.Identity, req model.CreateBookRequest) (int64, error) {
	id, err := s.repo.CreateBook(ctx, model.Book{
		Title:     req.Title,
		Author:    req.Author,
		ISBN:      req.ISBN,
		Synopsis:  req.Synopsis,
		Shareable: req.Shareable,
		OwnerID:   actor.ID,
		AuditInfo: model.AuditInfo{CreatedBy: actor.ID},
	})
	if err != nil {
		return 0, errors.Wrap(err, "CreateBook")
	}
	return id, nil
}

func (s *Service) FindBook(ctx context.Context, id int64) (model.Book, error) {
	return s.getBook(ctx, id)
}

func (s *Service) ListDisplayableBooks(ctx context.Context, actor model.Identity, p model.Pageable) (model.Page[model.Book], error) {
	return s.repo.ListDisplayableBooks(ctx, actor.ID, p)
}

func (s *Service) ListOwnedBooks(ctx context.Context, actor model.Identity, p model.Pageable) (model.Page[model.Book], error) {
	return s.repo.ListBooksByOwner(ctx, actor.ID, p)
}

func (s *Service) ToggleShareable(ctx context.Context, actor model.Identity, bookID int64) (int64, error) {
	return s.manage(ctx, actor, bookID, func(ctx context.Context) error {
		return s.repo.ToggleShareable(ctx, bookID)
	})
}

func (s *Service) ToggleArchived(ctx context.Context, actor model.Identity, bookID int64) (int64, error) {
	return s.manage(ctx, actor, bookID, func(ctx context.Context) error {
		return s.repo.ToggleArchived(ctx, bookID)
	})
}

// UpdateCover stores a reference to a cover uploaded elsewhere.
func (s *Service) UpdateCover(ctx context.Context, actor model.Identity, bookID int64, cover string) (int64, error) {
	return s.manage(ctx, actor, bookID, func(ctx context.Context) error {
		return s.repo.UpdateCover(ctx, bookID, cover)
	})
}

func (s *Service) manage(ctx context.Context, actor model.Identity, bookID int64, update func(context.Context) error) (int64, error) {
	book, err := s.getBook(ctx, bookID)
	if err != nil {
		return 0, err
	}
	if err = authz.CanManage(actor, book); err != nil {
		return 0, err
	}
	if err = update(ctx); err != nil {
		return 0, err
	}
	return book.ID, nil
}
