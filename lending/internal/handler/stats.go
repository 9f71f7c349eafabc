package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetStats godoc
//
//	@Summary	Lending event counters
//	@Tags		stats
//	@Produce	json
//	@Success	200	{object}	model.StatsInfo
//	@Failure	403	{object}	string
//	@Security	BearerAuth
//	@Router		/stats [get]
func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.lendingSvc.GetStats(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
