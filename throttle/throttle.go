package throttle

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// throttle is an http.RoundTripper, using the time/rate limiter to
// enforce a minimum spacing between outbound calls.
type throttle struct {
	limiter  *rate.Limiter
	interval time.Duration
	next     http.RoundTripper
	logFn    func() *slog.Logger
}

var (
	ErrNegativeInterval = errors.New("interval must not be negative")
	ErrWaitingFailed    = errors.New("limiter waiting failed")
	ErrContextEnded     = errors.New("throttle context ended")
)

// Config defines the throttler's minimum spacing between outbound
// requests.
type Config struct {
	Interval time.Duration
}

// NewRoundTripper returns an http.RoundTripper that spaces outbound
// requests at least cfg.Interval apart. A zero interval passes requests
// through unthrottled. logFn lazily resolves the logger at request
// time, making option ordering irrelevant. A nil-returning logFn skips
// the calls to *Limiter.Allow().
func NewRoundTripper(cfg Config, logFn func() *slog.Logger, next http.RoundTripper) (http.RoundTripper, error) {
	if cfg.Interval < 0 {
		return nil, fmt.Errorf("interval[%v] %w", cfg.Interval, ErrNegativeInterval)
	}

	t := &throttle{
		interval: cfg.Interval,
		next:     next,
		logFn:    logFn,
	}

	if cfg.Interval > 0 {
		t.limiter = rate.NewLimiter(rate.Every(cfg.Interval), 1)
	}

	return t, nil
}

func (t *throttle) RoundTrip(r *http.Request) (*http.Response, error) {
	if t.limiter == nil {
		return t.next.RoundTrip(r)
	}

	ctx := r.Context()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w early: %w", ErrContextEnded, err)
	}

	var waited time.Duration
	logger := t.logFn()
	if logger != nil && !t.limiter.Allow() {
		logger.Info("throttle interval not yet elapsed", "interval", t.interval.String(), "path", r.URL.Path)

		defer func() {
			logger.Info("throttle wait complete", "waited", waited.String(), "interval", t.interval.String())
		}()
	}

	start := time.Now()

	err := t.limiter.Wait(ctx)
	waited = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWaitingFailed, err)
	}

	if err := ctx.Err(); err != nil { // Check context hasn't expired again.
		return nil, fmt.Errorf("%w post-wait: %w", ErrContextEnded, err)
	}

	return t.next.RoundTrip(r)
}
