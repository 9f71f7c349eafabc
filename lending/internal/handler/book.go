package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/book-network/lending/internal/model"
)

// CreateBook godoc
//
//	@Summary	Publish a book owned by the caller
//	@Tags		books
//	@Accept		json
//	@Produce	json
//	@Param		body	body		model.CreateBookRequest	true	"Book to create"
//	@Success	201		{object}	model.IDResponse
//	@Failure	400		{object}	errs.ErrorResponse
//	@Security	BearerAuth
//	@Router		/books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	actor, err := identity(c)
	if err != nil {
		return err
	}
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err.Error())
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err.Error())
	}
	id, err := h.lendingSvc.CreateBook(c.Request().Context(), actor, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, model.IDResponse{ID: id})
}

// FindBook godoc
//
//	@Summary	Get a book by id
//	@Tags		books
//	@Produce	json
//	@Param		id	path		int	true	"Book id"
//	@Success	200	{object}	model.Book
//	@Failure	404	{object}	errs.ErrorResponse
//	@Security	BearerAuth
//	@Router		/books/{id} [get]
func (h *Handler) FindBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	book, err := h.lendingSvc.FindBook(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// ListDisplayableBooks godoc
//
//	@Summary	List books the caller may borrow
//	@Tags		books
//	@Produce	json
//	@Param		page	query		int	false	"Page number"	default(0)
//	@Param		size	query		int	false	"Page size"		default(10)
//	@Success	200		{object}	model.Page[model.Book]
//	@Failure	400		{object}	errs.ErrorResponse
//	@Security	BearerAuth
//	@Router		/books [get]
func (h *Handler) ListDisplayableBooks(c echo.Context) error {
	return listPage(c, h, h.lendingSvc.ListDisplayableBooks)
}

// ListOwnedBooks godoc
//
//	@Summary	List the caller's books
//	@Tags		books
//	@Produce	json
//	@Param		page	query		int	false	"Page number"	default(0)
//	@Param		size	query		int	false	"Page size"		default(10)
//	@Success	200		{object}	model.Page[model.Book]
//	@Security	BearerAuth
//	@Router		/books/owner [get]
func (h *Handler) ListOwnedBooks(c echo.Context) error {
	return listPage(c, h, h.lendingSvc.ListOwnedBooks)
}

// ToggleShareable godoc
//
//	@Summary	Flip the shareable flag of an owned book
//	@Tags		books
//	@Produce	json
//	@Param		id	path		int	true	"Book id"
//	@Success	200	{object}	model.IDResponse
//	@Failure	403	{object}	errs.ErrorResponse
//	@Failure	404	{object}	errs.ErrorResponse
//	@Security	BearerAuth
//	@Router		/books/shareable/{id} [patch]
func (h *Handler) ToggleShareable(c echo.Context) error {
	return bookAction(c, h, h.lendingSvc.ToggleShareable)
}

// ToggleArchived godoc
//
//	@Summary	Flip the archived flag of an owned book
//	@Tags		books
//	@Produce	json
//	@Param		id	path		int	true	"Book id"
//	@Success	200	{object}	model.IDResponse
//	@Failure	403	{object}	errs.ErrorResponse
//	@Failure	404	{object}	errs.ErrorResponse
//	@Security	BearerAuth
//	@Router		/books/archived/{id} [patch]
func (h *Handler) ToggleArchived(c echo.Context) error {
	return bookAction(c, h, h.lendingSvc.ToggleArchived)
}

// UpdateCover godoc
//
//	@Summary	Set the cover reference of an owned book
//	@Tags		books
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Book id"
//	@Param		body	body		model.CoverRequest	true	"Cover reference"
//	@Success	200		{object}	model.IDResponse
//	@Failure	400		{object}	errs.ErrorResponse
//	@Failure	403		{object}	errs.ErrorResponse
//	@Failure	404		{object}	errs.ErrorResponse
//	@Security	BearerAuth
//	@Router		/books/cover/{id} [patch]
func (h *Handler) UpdateCover(c echo.Context) error {
	actor, err := identity(c)
	if err != nil {
		return err
	}
	bookID, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.CoverRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err.Error())
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err.Error())
	}
	id, err := h.lendingSvc.UpdateCover(c.Request().Context(), actor, bookID, req.Cover)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.IDResponse{ID: id})
}
