package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	files    []string
	environ  map[string]string
	prefix   string
	optional bool
}

// WithEnvFiles reads the given .env files instead of the default ".env".
// Each file must exist; later files override earlier ones.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = append(o.files, paths...)
		o.optional = false
	}
}

// WithEnviron replaces the process environment as the highest-precedence
// source.
func WithEnviron(vars map[string]string) Option {
	return func(o *options) { o.environ = vars }
}

// WithPrefix only reads variables that start with prefix; tags omit it.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// Load parses T from env tags. Sources, lowest precedence first: the .env
// files (".env" in the working directory when present), then the process
// environment. Files are read into the lookup table only; os.Environ is not
// modified.
func Load[T any](opts ...Option) (T, error) {
	o := &options{optional: true}
	for _, opt := range opts {
		opt(o)
	}
	if o.environ == nil {
		o.environ = env.ToMap(os.Environ())
	}
	files := o.files
	if len(files) == 0 {
		files = []string{".env"}
	}

	vars := make(map[string]string)
	for _, path := range files {
		m, err := godotenv.Read(path)
		if err != nil {
			if o.optional && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return *new(T), errors.Join(ErrEnvFile, fmt.Errorf("%s: %w", path, err))
		}
		maps.Copy(vars, m)
	}
	maps.Copy(vars, o.environ)

	cfg, err := env.ParseAsWithOptions[T](env.Options{Environment: vars, Prefix: o.prefix})
	if err != nil {
		return cfg, errors.Join(ErrParse, err)
	}
	return cfg, nil
}

// MustLoad is Load for startup code: it panics on error.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(err)
	}
	return cfg
}
