package httpserver

import "time"

// Config holds the listener address and the http.Server timeouts.
// Zero timeouts mean no limit, except ShutdownTimeout which falls back to 5s.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"` // covers upload bodies
	HeaderTimeout   time.Duration `env:"HTTP_HEADER_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"0s"` // 0 keeps SSE streams open
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

const defaultShutdownTimeout = 5 * time.Second
