package infra

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	_ "github.com/umalmyha/cases/docs" // registers swagger document
	"github.com/umalmyha/cases/internal/handlers"
	"github.com/umalmyha/cases/internal/middleware"
	"github.com/umalmyha/cases/internal/service"
)

// Router builds echo application with all API routes
func Router(caseSvc service.CaseService, fieldSvc service.CustomFieldService, corsOrigins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	// Middleware
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger(logrus.StandardLogger()))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: corsOrigins}))

	// Handlers
	caseHandler := handlers.NewCaseHTTPHandler(caseSvc)
	fieldHandler := handlers.NewCustomFieldHTTPHandler(fieldSvc)

	e.GET("/", handlers.Root)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API routes
	api := e.Group("/api")

	// static custom-fields segment has priority over :id
	casesApi := api.Group("/cases")
	casesApi.GET("/custom-fields", fieldHandler.GetAll)
	casesApi.POST("/custom-fields", fieldHandler.Post)
	casesApi.DELETE("/custom-fields/:id", fieldHandler.DeleteByID)

	casesApi.GET("", caseHandler.GetAll)
	casesApi.GET("/:id", caseHandler.Get)
	casesApi.POST("", caseHandler.Post)
	casesApi.PUT("/:id", caseHandler.Put)
	casesApi.DELETE("/:id", caseHandler.DeleteByID)

	return e
}
