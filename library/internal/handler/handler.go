package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/Astemirdum/library-management/library/docs"
	md "github.com/Astemirdum/library-management/pkg/middleware"
	"github.com/Astemirdum/library-management/pkg/serializer"
	"github.com/Astemirdum/library-management/pkg/validate"
)

const welcome = "Welcome to Library Management App"

type Handler struct {
	bookSvc   BookService
	borrowSvc BorrowService
	gatherer  prometheus.Gatherer
	log       *zap.Logger
}

func New(bookSvc BookService, borrowSvc BorrowService, gatherer prometheus.Gatherer, log *zap.Logger) *Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &Handler{
		bookSvc:   bookSvc,
		borrowSvc: borrowSvc,
		gatherer:  gatherer,
		log:       log.Named("handler"),
	}
}

// @title Library Management API
// @version 1.0
// @description Book inventory and borrowing.
// @BasePath /
func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = serializer.JSONSerializer{}
	e.Validator = validate.NewCustomValidator()
	e.HTTPErrorHandler = h.httpErrorHandler

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
	}))

	e.GET("/", h.Welcome)
	e.GET("/manage/health", h.Health)
	e.GET("/manage/metrics", echo.WrapHandler(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api",
		middleware.RequestID(),
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
	)

	books := api.Group("/books")
	books.POST("", h.CreateBook)
	books.GET("", h.ListBooks)
	books.GET("/:bookId", h.GetBook)
	books.PUT("/:bookId", h.UpdateBook)
	books.PATCH("/:bookId", h.UpdateBook)
	books.DELETE("/:bookId", h.DeleteBook)
	books.POST("/:bookId/availability", h.UpdateAvailability)

	api.POST("/borrow", h.CreateBorrow)
	api.GET("/borrow", h.BorrowSummary)

	return e
}

// Welcome godoc
// @Summary welcome message
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *Handler) Welcome(c echo.Context) error {
	return c.String(http.StatusOK, welcome)
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
