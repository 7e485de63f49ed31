package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-forecast/config"
	v1 "weather-forecast/internal/controllers/http/v1"
	"weather-forecast/internal/repositories"
	"weather-forecast/internal/services/forecast"
	"weather-forecast/internal/services/input"
	"weather-forecast/pkg/httpserver"
	"weather-forecast/pkg/logger"
	"weather-forecast/pkg/observe"
)

// @title Weather Forecast API
// @version 1.0.0
// @description Resolves a city name with Open-Meteo geocoding and returns its daily forecast as day cards.
// @description The same search state backs the HTML page served at /.

// @contact.name Weather Forecast Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Forecast
// @tag.description Weather forecast search operations
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	writers := []io.Writer{os.Stdout}

	var hook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		hook, err = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, 0, cnf.Sentry.Debug, cnf.Sentry.DSN)
		if err != nil {
			log.Printf("sentry disabled: %v", err)
		} else {
			writers = append(writers, hook)
		}
	}

	l := logger.New(logger.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
		Format:  cnf.Log.Format,
	}, writers...)
	if hook != nil {
		hook.SetLogger(l)
	}

	repos := repositories.InitRepositories(cnf, l)

	pipeline := forecast.NewPipeline(ctx, repos, l)
	controller := input.NewController(pipeline, l)

	var accessLog io.Writer
	if cnf.IsDevelopment() {
		accessLog = os.Stdout
	}
	app := httpserver.InitFiberServer(cnf.Server, cnf.App.Name, l, accessLog)

	v1.NewRouter(
		app,
		pipeline,
		controller,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":    cnf.Server.Port,
		"version": cnf.App.Version,
		"env":     cnf.App.Env,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		pipeline.Close()
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
