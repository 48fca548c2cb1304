package async

import (
	"os"
	"strconv"

	"github.com/gogpu/textkit"
)

// LoadersEnv is the environment variable holding the default number of
// loaders.
const LoadersEnv = "TEXTKIT_ASYNC_LOADERS"

// Loader count bounds.
const (
	DefaultLoaders = 4
	MinLoaders     = 1
	MaxLoaders     = 16
)

type config struct {
	loaders int
	queued  func()
	locale  string
}

// Option configures a Manager.
type Option func(*config)

func defaultConfig() config {
	return config{loaders: loadersFromEnv()}
}

func loadersFromEnv() int {
	s, ok := os.LookupEnv(LoadersEnv)
	if !ok || s == "" {
		return DefaultLoaders
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		textkit.Logger().Warn("async: ignoring loader count", "env", LoadersEnv, "value", s, "error", err)
		return DefaultLoaders
	}
	return n
}

// WithLoaders sets the number of loaders. It is clamped to
// [MinLoaders, MaxLoaders].
func WithLoaders(n int) Option {
	return func(c *config) {
		c.loaders = n
	}
}

// WithQueueCallback sets a function called from a worker goroutine each
// time a result is queued. Callers use it to schedule Dispatch on their
// own goroutine. It must not block.
func WithQueueCallback(fn func()) Option {
	return func(c *config) {
		c.queued = fn
	}
}

// WithLocale sets the initial locale of every loader.
func WithLocale(locale string) Option {
	return func(c *config) {
		c.locale = locale
	}
}
