package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-network/lending/internal/errs"
	"github.com/Astemirdum/book-network/lending/internal/model"
	"github.com/Astemirdum/book-network/pkg/auth"
	mw "github.com/Astemirdum/book-network/pkg/middleware"
	"github.com/Astemirdum/book-network/pkg/validate"
	_ "github.com/Astemirdum/book-network/swagger"
)

type Handler struct {
	lendingSvc LendingService
	jwtKey     []byte
	log        *zap.Logger
}

func New(lendingSvc LendingService, jwtKey []byte, log *zap.Logger) *Handler {
	return &Handler{
		lendingSvc: lendingSvc,
		jwtKey:     jwtKey,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
		mw.JwtAuthentication(h.jwtKey),
		mw.RequireRole(auth.RoleUser),
	)

	books := api.Group("/books")
	books.POST("", h.CreateBook)
	books.GET("", h.ListDisplayableBooks)
	books.GET("/owner", h.ListOwnedBooks)
	books.GET("/borrowed", h.ListBorrowedBooks)
	books.GET("/returned", h.ListReturnedBooks)
	books.GET("/:id", h.FindBook)
	books.PATCH("/shareable/:id", h.ToggleShareable)
	books.PATCH("/archived/:id", h.ToggleArchived)
	books.PATCH("/cover/:id", h.UpdateCover)
	books.POST("/borrow/:id", h.BorrowBook)
	books.PATCH("/borrow/return/:id", h.ReturnBook)
	books.PATCH("/borrow/return/approve/:id", h.ApproveReturn)

	feedbacks := api.Group("/feedbacks")
	feedbacks.POST("", h.AddFeedback)
	feedbacks.GET("/book/:id", h.ListFeedback)

	api.GET("/stats", h.GetStats, mw.RequireRole(auth.RoleAdmin))

	return e
}

// Health godoc
//
//	@Summary	Liveness probe
//	@Tags		manage
//	@Success	200	{string}	string	"OK"
//	@Router		/manage/health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func identity(c echo.Context) (model.Identity, error) {
	p, err := auth.GetProfile(c.Request().Context())
	if err != nil {
		return model.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return model.Identity{ID: p.UserID, FullName: p.FullName, Roles: p.Roles}, nil
}

func badRequest(msg string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{
		Code:    errs.CodeInvalidInput,
		Message: msg,
	})
}

// httpError maps a service error onto the wire error body.
func (h *Handler) httpError(err error) error {
	code, name := errs.HTTPStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		h.log.Error("internal error", zap.Error(err))
		msg = http.StatusText(code)
	}
	return echo.NewHTTPError(code, errs.ErrorResponse{Code: name, Message: msg})
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest("invalid id: " + c.Param("id"))
	}
	return id, nil
}

func pageable(c echo.Context) (model.Pageable, error) {
	p := model.Pageable{Page: model.DefaultPage, Size: model.DefaultSize}
	if err := echo.QueryParamsBinder(c).
		Int("page", &p.Page).
		Int("size", &p.Size).
		BindError(); err != nil {
		return model.Pageable{}, badRequest("invalid paging parameters")
	}
	if p.Page < 0 {
		return model.Pageable{}, badRequest("page must not be negative")
	}
	if p.Page > model.MaxPage {
		return model.Pageable{}, badRequest("page must not exceed " + strconv.Itoa(model.MaxPage))
	}
	if p.Size < 1 || p.Size > model.MaxSize {
		return model.Pageable{}, badRequest("size must be between 1 and " + strconv.Itoa(model.MaxSize))
	}
	return p, nil
}
