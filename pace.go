package pace

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Pacer gates a [Source] so that the consumer observes at most one
// value per interval. It is driven by a single goroutine making
// synchronous Next calls; it spawns no background timers and holds no
// locks. The last-emission timestamp is stamped after the wait
// completes, so the gap between two returns is never shorter than the
// interval regardless of how long the source itself takes.
type Pacer[T any] struct {
	src      Source[T]
	interval time.Duration
	clock    clockwork.Clock
	logFn    func() *slog.Logger
	tracer   trace.Tracer

	last      time.Time
	emitted   bool
	exhausted bool
}

// New wraps src in a Pacer enforcing at least interval between
// emissions. interval must not be negative; a zero interval degrades to
// an unthrottled passthrough. No blocking occurs until the first call
// to Next.
func New[T any](src Source[T], interval time.Duration, opts ...Option) (*Pacer[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if interval < 0 {
		return nil, fmt.Errorf("interval[%v] %w", interval, ErrNegativeInterval)
	}

	var settings options
	for _, opt := range opts {
		if err := opt(&settings); err != nil {
			return nil, fmt.Errorf("applying pacer option: %w", err)
		}
	}

	p := &Pacer[T]{
		src:      src,
		interval: interval,
		clock:    clockwork.NewRealClock(),
		logFn:    func() *slog.Logger { return nil },
		tracer:   noop.NewTracerProvider().Tracer("no-op tracer"),
	}

	if settings.clock != nil {
		p.clock = settings.clock
	}
	if settings.logFn != nil {
		p.logFn = settings.logFn
	}
	if settings.tracer != nil {
		p.tracer = settings.tracer
	}

	return p, nil
}

// Interval reports the minimum spacing enforced between emissions.
func (p *Pacer[T]) Interval() time.Duration { return p.interval }

// Next returns the source's next value, sleeping beforehand if less
// than the interval has passed since the previous emission. The first
// call never waits. Exhaustion is never delayed: the call that
// discovers it returns false without sleeping, and every call after
// that returns false immediately without touching the source again.
func (p *Pacer[T]) Next() (T, bool) {
	var zero T

	if p.exhausted {
		return zero, false
	}

	_, span := p.tracer.Start(context.Background(), "pace.next")
	defer span.End()

	v, ok := p.src.Next()
	if !ok {
		p.exhausted = true
		return zero, false
	}

	var waited time.Duration
	if p.emitted && p.interval > 0 {
		if elapsed := p.clock.Since(p.last); elapsed < p.interval {
			wait := p.interval - elapsed

			if logger := p.logFn(); logger != nil {
				logger.Debug("pacing wait", "wait", wait.String(), "interval", p.interval.String())
			}

			p.clock.Sleep(wait)
			waited = wait
		}
	}
	span.SetAttributes(attribute.String("waited", waited.String()))

	p.last = p.clock.Now()
	p.emitted = true

	return v, true
}
