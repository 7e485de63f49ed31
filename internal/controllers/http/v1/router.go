package http

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "weather-forecast/docs"
	"weather-forecast/internal/services/forecast"
	"weather-forecast/internal/services/input"
	"weather-forecast/pkg/logger"
)

type routes struct {
	pipeline   *forecast.Pipeline
	controller *input.Controller
	validate   *validator.Validate
	now        func() time.Time
	l          *logger.Logger
}

func NewRouter(
	app *fiber.App,
	pipeline *forecast.Pipeline,
	controller *input.Controller,
	l *logger.Logger,
) {
	r := &routes{
		pipeline:   pipeline,
		controller: controller,
		validate:   validator.New(),
		now:        time.Now,
		l:          l,
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// UI
	app.Get("/", r.handleIndex)
	app.Post("/search", r.handleSearchForm)

	// API routes
	v1 := app.Group("/api/v1")
	v1.Get("/state", r.handleState)
	v1.Put("/draft", r.handleDraft)
	v1.Post("/search", r.handleSearch)
	v1.Get("/forecast", r.handleForecast)
	v1.Get("/icons/:code", r.handleIcon)
}
