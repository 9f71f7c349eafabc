package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/book-network/lending/internal/model"
)

type actionFunc func(ctx context.Context, actor model.Identity, bookID int64) (int64, error)

type listFunc[T any] func(ctx context.Context, actor model.Identity, p model.Pageable) (model.Page[T], error)

func bookAction(c echo.Context, h *Handler, action actionFunc) error {
	actor, err := identity(c)
	if err != nil {
		return err
	}
	bookID, err := pathID(c)
	if err != nil {
		return err
	}
	id, err := action(c.Request().Context(), actor, bookID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.IDResponse{ID: id})
}

func listPage[T any](c echo.Context, h *Handler, list listFunc[T]) error {
	actor, err := identity(c)
	if err != nil {
		return err
	}
	p, err := pageable(c)
	if err != nil {
		return err
	}
	page, err := list(c.Request().Context(), actor, p)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// BorrowBook godoc
//
//	@Summary	Borrow a shareable book
//	@Tags		lending
//	@Produce	json
//	@Param		id	path		int	true	"Book id"
//	@Success	200	{object}	model.IDResponse
//	@Failure	403	{object}	errs.ErrorResponse
//	@Failure	404	{object}	errs.ErrorResponse
//	@Failure	409	{object}	errs.ErrorResponse
//	@Security	BearerAuth
//	@Router		/books/borrow/{id} [post]
func (h *Handler) BorrowBook(c echo.Context) error {
	return bookAction(c, h, h.lendingSvc.BorrowBook)
}

// ReturnBook godoc
//
//	@Summary	Return a borrowed book
//	@Tags		lending
//	@Produce	json
//	@Param		id	path		int	true	"Book id"
//	@Success	200	{object}	model.IDResponse
//	@Failure	403	{object}	errs.ErrorResponse
//	@Failure	404	{object}	errs.ErrorResponse
//	@Security	BearerAuth
//	@Router		/books/borrow/return/{id} [patch]
func (h *Handler) ReturnBook(c echo.Context) error {
	return bookAction(c, h, h.lendingSvc.ReturnBook)
}

// ApproveReturn godoc
//
//	@Summary	Approve the return of an owned book
//	@Tags		lending
//	@Produce	json
//	@Param		id	path		int	true	"Book id"
//	@Success	200	{object}	model.IDResponse
//	@Failure	403	{object}	errs.ErrorResponse
//	@Failure	404	{object}	errs.ErrorResponse
//	@Security	BearerAuth
//	@Router		/books/borrow/return/approve/{id} [patch]
func (h *Handler) ApproveReturn(c echo.Context) error {
	return bookAction(c, h, h.lendingSvc.ApproveReturn)
}

// ListBorrowedBooks godoc
//
//	@Summary	List the caller's loans
//	@Tags		lending
//	@Produce	json
//	@Param		page	query		int	false	"Page number"	default(0)
//	@Param		size	query		int	false	"Page size"		default(10)
//	@Success	200		{object}	model.Page[model.BorrowedBook]
//	@Security	BearerAuth
//	@Router		/books/borrowed [get]
func (h *Handler) ListBorrowedBooks(c echo.Context) error {
	return listPage(c, h, h.lendingSvc.ListBorrowedBooks)
}

// ListReturnedBooks godoc
//
//	@Summary	List loans of the caller's books
//	@Tags		lending
//	@Produce	json
//	@Param		page	query		int	false	"Page number"	default(0)
//	@Param		size	query		int	false	"Page size"		default(10)
//	@Success	200		{object}	model.Page[model.BorrowedBook]
//	@Security	BearerAuth
//	@Router		/books/returned [get]
func (h *Handler) ListReturnedBooks(c echo.Context) error {
	return listPage(c, h, h.lendingSvc.ListReturnedBooks)
}
