/*
Package obs provides the package-scoped structured logger used throughout
this module, mirroring the shape of the teacher's own tracer()/T() helper
functions (see terex/doc.go, runtime/runtime.go in the gorgo toolbox this
module is patterned after) but backed by zerolog instead of a bespoke
tracing facility.

There is no ambient global state beyond a single swappable default logger:
callers embedding this module as a library may replace it wholesale with
SetLogger, or ignore it entirely — nothing in the compiler or evaluator
consults the logger for control flow.
*/
package obs

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)
)

// SetLogger replaces the package-wide default logger.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// For returns a logger scoped to component, e.g. "transducer.builder" or
// "refeval".
func For(component string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger.With().Str("component", component).Logger()
}
