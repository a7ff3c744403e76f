package pace

import "iter"

// All exposes the paced sequence through the iteration protocol. The
// loop body observes the same timing contract as [Pacer.Next]; breaking
// out of the loop leaves the Pacer usable for further Next calls.
func (p *Pacer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := p.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// FromSeq adapts a native iterator into a [Source]. The underlying pull
// iterator is stopped once the sequence is exhausted.
func FromSeq[T any](seq iter.Seq[T]) Source[T] {
	next, stop := iter.Pull(seq)

	return SourceFunc[T](func() (T, bool) {
		v, ok := next()
		if !ok {
			stop()
		}
		return v, ok
	})
}

// FromSlice returns a finite [Source] yielding the elements of s in
// order.
func FromSlice[T any](s []T) Source[T] {
	var i int

	return SourceFunc[T](func() (T, bool) {
		if i >= len(s) {
			var zero T
			return zero, false
		}

		v := s[i]
		i++

		return v, true
	})
}
