package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"weather-forecast/config"
	"weather-forecast/pkg/logger"
)

// InitFiberServer builds the app with the common middleware stack. Access
// logs go to accessLog; nil disables them.
func InitFiberServer(cnf config.ServerConfig, appName string, l *logger.Logger, accessLog io.Writer) *fiber.App {
	s := fiber.New(fiber.Config{
		AppName:               appName,
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ReadTimeout:           time.Duration(cnf.ReadTimeout) * time.Second,
		WriteTimeout:          time.Duration(cnf.WriteTimeout) * time.Second,
		IdleTimeout:           time.Duration(cnf.IdleTimeout) * time.Second,
		ErrorHandler:          errorHandler(l),
	})

	s.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	if accessLog != nil {
		s.Use(fiberlogger.New(fiberlogger.Config{
			Format:     "${time} ${status} ${latency} ${method} ${path}\n",
			TimeFormat: time.RFC3339,
			TimeZone:   "UTC",
			Output:     accessLog,
		}))
	}
	s.Use(cors.New())
	s.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint:  "/manage/health",
		ReadinessEndpoint: "/manage/ready",
	}))

	return s
}

// errorHandler renders every unhandled error in the same shape the handlers use.
func errorHandler(l *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code >= fiber.StatusInternalServerError {
			l.Error(err, map[string]any{"method": c.Method(), "path": c.Path()})
		}

		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
