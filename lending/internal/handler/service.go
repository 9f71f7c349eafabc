package handler

import (
	"context"

	"github.com/Astemirdum/book-network/lending/internal/model"
	"github.com/Astemirdum/book-network/lending/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LendingService interface {
	CreateBook(ctx context.Context, actor model.Identity, req model.CreateBookRequest) (int64, error)
	FindBook(ctx context.Context, id int64) (model.Book, error)
	ListDisplayableBooks(ctx context.Context, actor model.Identity, p model.Pageable) (model.Page[model.Book], error)
	ListOwnedBooks(ctx context.Context, actor model.Identity, p model.Pageable) (model.Page[model.Book], error)
	ListBorrowedBooks(ctx context.Context, actor model.Identity, p model.Pageable) (model.Page[model.BorrowedBook], error)
	ListReturnedBooks(ctx context.Context, actor model.Identity, p model.Pageable) (model.Page[model.BorrowedBook], error)
	ToggleShareable(ctx context.Context, actor model.Identity, bookID int64) (int64, error)
	ToggleArchived(ctx context.Context, actor model.Identity, bookID int64) (int64, error)
	UpdateCover(ctx context.Context, actor model.Identity, bookID int64, cover string) (int64, error)
	BorrowBook(ctx context.Context, actor model.Identity, bookID int64) (int64, error)
	ReturnBook(ctx context.Context, actor model.Identity, bookID int64) (int64, error)
	ApproveReturn(ctx context.Context, actor model.Identity, bookID int64) (int64, error)
	AddFeedback(ctx context.Context, actor model.Identity, bookID int64, note float64, comment string) (int64, error)
	ListFeedback(ctx context.Context, actor model.Identity, bookID int64, p model.Pageable) (model.Page[model.FeedbackResponse], error)
	GetStats(ctx context.Context) (model.StatsInfo, error)
}

var _ LendingService = (*service.Service)(nil)
