// Package config reads typed configuration from the environment and .env
// files with github.com/caarlos0/env and github.com/joho/godotenv.
//
// Struct fields declare their variable and default with tags; nested structs
// such as httpserver.Config and forms.Config are parsed in place:
//
//	type Config struct {
//		Env          environment.Environment `env:"APP_ENV" envDefault:"development"`
//		RuleSetsPath string                  `env:"RULESETS_PATH" envDefault:"config/rulesets.yaml"`
//		Server       httpserver.Config
//		Forms        forms.Config
//	}
//
//	cfg := config.MustLoad[Config](config.WithEnvFiles(".env", ".env.local"))
//
// Values in the process environment beat the files, and later files beat
// earlier ones. Without WithEnvFiles a ".env" in the working directory is read
// if it exists. Files never leak into os.Environ, so loading is repeatable and
// tests can pass their own variables with WithEnviron.
package config
