package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/formkit/modules/forms"
	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/environment"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/requestid"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ENV_FILE lists .env files to read instead of ./.env, comma separated
	var loadOpts []config.Option
	if files := os.Getenv("ENV_FILE"); files != "" {
		loadOpts = append(loadOpts, config.WithEnvFiles(strings.Split(files, ",")...))
	}
	cfg := config.MustLoad[Config](loadOpts...)

	logOpts, err := cfg.loggerOptions()
	if err != nil {
		logger.New().Error("Invalid logger configuration", logger.Error(err))
		os.Exit(1)
	}
	log := logger.New(logOpts...)
	slog.SetDefault(log)

	sets, err := validator.LoadRuleSetsFile(cfg.RuleSetsPath, nil)
	if err != nil {
		log.Error("Failed to load form rule sets", logger.Component("validator"), logger.Error(err))
		os.Exit(1)
	}

	errorHandler := forms.NewErrorHandler(cfg.Forms, log)

	validation := forms.NewValidationService(cfg.Forms, sets, log, errorHandler)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(cfg.Env),
		middleware.Recoverer,
	)

	// Health check endpoints
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, validation.Ready))

	r.Mount("/", forms.Router(forms.RouterOptions{
		Validation: validation,
		Password:   forms.NewPasswordService(cfg.Forms, errorHandler),
		Uploads:    forms.NewUploadService(cfg.Forms, log, errorHandler),
		Tables:     forms.NewTableService(cfg.Forms, log, errorHandler),
	}))

	log.Info("Form rule sets loaded", logger.Component("validator"), logger.Forms(validation.Forms()))

	eg, ctx := errgroup.WithContext(ctx)

	srv := httpserver.New(cfg.Server, httpserver.WithLogger(log.With(logger.Component("httpserver"))))
	eg.Go(func() error { return srv.Run(ctx, r) })

	if err := eg.Wait(); err != nil {
		log.Error("Failed to run server", logger.Component("httpserver"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}
