// Package logger builds the application's *slog.Logger and holds the
// attribute helpers the forms module logs with.
//
// The logger is configured once from the environment and picks up
// request-scoped values, such as the request ID, from the context of each
// *Context call:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "formkit"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.WarnContext(ctx, "form rejected",
//		logger.Form("register"),
//		logger.InvalidFields(outcome.Fields),
//	)
//
// Error and InvalidFields return an empty attribute for nil input, which slog
// drops, so callers need no nil checks.
package logger
