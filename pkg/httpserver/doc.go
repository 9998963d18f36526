// Package httpserver runs the formkit router with configured timeouts and
// a bounded graceful drain, and provides liveness and readiness handlers.
//
// Run blocks until its context is done. Cancelling the context stops accepting
// connections and waits up to Config.ShutdownTimeout for in-flight requests,
// SSE streams included, to finish:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//	r.Get("/readyz", httpserver.HealthCheckHandler(log, validation.Ready))
//
//	srv := httpserver.New(cfg.Server, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Listen failures wrap ErrStart and an expired drain wraps ErrShutdown.
package httpserver
