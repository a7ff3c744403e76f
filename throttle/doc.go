// Package throttle provides an [http.RoundTripper] that paces outbound
// HTTP requests to a fixed minimum interval using
// [golang.org/x/time/rate].
//
// It is the cancellable counterpart to the core pacer: the wait for the
// next emission slot is raced against the request context, so a caller
// that gives up is released immediately.
//
// # Usage
//
// Wrap an existing transport with [NewRoundTripper]:
//
//	rt, err := throttle.NewRoundTripper(
//		throttle.Config{Interval: 200 * time.Millisecond},
//		func() *slog.Logger { return slog.Default() },
//		http.DefaultTransport,
//	)
//	httpClient := &http.Client{Transport: rt}
//
// When a request arrives before the interval has elapsed, it blocks
// until its slot opens or the request context is cancelled.
package throttle
