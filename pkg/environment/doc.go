// Package environment names the deployment (development, staging or
// production) and carries it through request contexts.
//
// The value is read once from APP_ENV, where the aliases "dev", "stage" and
// "prod" are accepted, and attached to every request by Middleware:
//
//	type Config struct {
//		Env environment.Environment `env:"APP_ENV" envDefault:"development"`
//	}
//
//	r.Use(environment.Middleware(cfg.Env))
//
// The error handler shows the text of internal errors only when
// FromContext(ctx).IsDevelopment(); logger.WithEnvironment picks the log
// format and level from it.
package environment
