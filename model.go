package pace

import "errors"

var (
	ErrNilSource        = errors.New("source must not be nil")
	ErrNegativeInterval = errors.New("interval must not be negative")
)

// Source produces an ordered sequence of values, one per call to Next.
// Next returns false once the sequence is exhausted; after that it is
// never called again by a [Pacer].
type Source[T any] interface {
	Next() (T, bool)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc[T any] func() (T, bool)

func (f SourceFunc[T]) Next() (T, bool) { return f() }
