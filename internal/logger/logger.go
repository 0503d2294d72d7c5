package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the process logger.
type Options struct {
	Level  string
	Format string // "json" or "console"
	Output io.Writer
}

var (
	once sync.Once
	log  zerolog.Logger
)

// Get returns the process logger. The first call builds it from opts; later
// calls return the same logger and ignore their arguments.
func Get(opts ...Options) zerolog.Logger {
	once.Do(func() {
		var o Options
		if len(opts) > 0 {
			o = opts[0]
		}
		log = New(o)
	})
	return log
}

// New builds a standalone logger. Tests use it to capture output.
func New(o Options) zerolog.Logger {
	out := o.Output
	if out == nil {
		out = os.Stdout
	}
	if strings.EqualFold(o.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(o.Level))
	if err != nil || o.Level == "" {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
