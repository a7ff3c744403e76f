package pace

import (
	"errors"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/trace"
)

// Option is a functional option for configuring a [Pacer] via [New].
type Option func(*options) error

type options struct {
	clock  clockwork.Clock
	logFn  func() *slog.Logger
	tracer trace.Tracer
}

// WithClock replaces the wall clock used to measure elapsed time and to
// sleep. Tests inject [clockwork.NewFakeClock] here for deterministic
// timing.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) error {
		if clock == nil {
			return errors.New("clock must not be nil")
		}
		o.clock = clock
		return nil
	}
}

// WithLogger injects a lazily-resolved [slog.Logger]; when set, each
// enforced wait is logged at debug level. logFn is resolved at call
// time, making option ordering irrelevant. A nil-returning logFn
// disables logging.
func WithLogger(logFn func() *slog.Logger) Option {
	return func(o *options) error {
		if logFn == nil {
			return errors.New("logFn must not be nil")
		}
		o.logFn = logFn
		return nil
	}
}

// WithTracer injects the given tracer into the Pacer; each call to
// [Pacer.Next] runs inside a span recording the enforced wait.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		o.tracer = tracer
		return nil
	}
}
