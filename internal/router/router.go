package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"sipengawas/internal/auth"
	"sipengawas/internal/config"
	"sipengawas/internal/handler"
	"sipengawas/internal/upload"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	saver *upload.Saver,
	authHandler *handler.AuthHandler,
	schoolHandler *handler.SchoolHandler,
	taskHandler *handler.TaskHandler,
	supervisionHandler *handler.SupervisionHandler,
	additionalTaskHandler *handler.AdditionalTaskHandler,
	reportHandler *handler.ReportHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded photos are served as-is; the store only knows their filenames.
	e.Static("/uploads", saver.Dir())

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/auth/me", authHandler.Me)

	// School routes
	secured.GET("/schools", schoolHandler.List)
	secured.POST("/schools", schoolHandler.Create)
	secured.DELETE("/schools/:id", schoolHandler.Delete)

	// Task routes
	secured.GET("/tasks", taskHandler.List)
	secured.POST("/tasks", taskHandler.Create)
	secured.PATCH("/tasks/:id", taskHandler.Update)
	secured.DELETE("/tasks/:id", taskHandler.Delete)

	// Supervision routes
	secured.GET("/supervisions", supervisionHandler.List)
	secured.GET("/supervisions/school/:schoolId", supervisionHandler.ListBySchool)
	secured.POST("/supervisions", supervisionHandler.Create)
	secured.DELETE("/supervisions/:id", supervisionHandler.Delete)

	// Additional activity routes
	secured.GET("/additional-tasks", additionalTaskHandler.List)
	secured.POST("/additional-tasks", additionalTaskHandler.Create)
	secured.DELETE("/additional-tasks/:id", additionalTaskHandler.Delete)

	// Report routes
	secured.GET("/reports/monthly", reportHandler.Monthly)
	secured.GET("/reports/yearly", reportHandler.Yearly)
	secured.GET("/reports/monthly/pdf", reportHandler.MonthlyPDF)
	secured.GET("/reports/yearly/pdf", reportHandler.YearlyPDF)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
