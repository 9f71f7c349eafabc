package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/book-network/lending/internal/model"
)

// AddFeedback godoc
//
//	@Summary	Rate and review a book
//	@Tags		feedbacks
//	@Accept		json
//	@Produce	json
//	@Param		body	body		model.FeedbackRequest	true	"Feedback"
//	@Success	201		{object}	model.IDResponse
//	@Failure	400		{object}	errs.ErrorResponse
//	@Failure	403		{object}	errs.ErrorResponse
//	@Failure	404		{object}	errs.ErrorResponse
//	@Security	BearerAuth
//	@Router		/feedbacks [post]
func (h *Handler) AddFeedback(c echo.Context) error {
	actor, err := identity(c)
	if err != nil {
		return err
	}
	var req model.FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err.Error())
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err.Error())
	}
	id, err := h.lendingSvc.AddFeedback(c.Request().Context(), actor, req.BookID, *req.Note, req.Comment)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, model.IDResponse{ID: id})
}

// ListFeedback godoc
//
//	@Summary	List feedback of a book
//	@Tags		feedbacks
//	@Produce	json
//	@Param		id		path		int	true	"Book id"
//	@Param		page	query		int	false	"Page number"	default(0)
//	@Param		size	query		int	false	"Page size"		default(10)
//	@Success	200		{object}	model.Page[model.FeedbackResponse]
//	@Failure	400		{object}	errs.ErrorResponse
//	@Security	BearerAuth
//	@Router		/feedbacks/book/{id} [get]
func (h *Handler) ListFeedback(c echo.Context) error {
	actor, err := identity(c)
	if err != nil {
		return err
	}
	bookID, err := pathID(c)
	if err != nil {
		return err
	}
	p, err := pageable(c)
	if err != nil {
		return err
	}
	page, err := h.lendingSvc.ListFeedback(c.Request().Context(), actor, bookID, p)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}
