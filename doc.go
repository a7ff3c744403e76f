// Package pace re-emits the values of a wrapped source at a bounded
// rate: no two values are handed to the consumer closer together than a
// fixed interval. The calling goroutine is blocked between emissions;
// nothing is buffered, dropped, or reordered.
//
// # Building a Pacer
//
// Wrap any [Source] with [New]:
//
//	p, err := pace.New(pace.FromSlice([]int{0, 1, 2}), time.Second)
//	for v, ok := p.Next(); ok; v, ok = p.Next() {
//		fmt.Println(v)
//	}
//
// The first value is returned immediately; each subsequent call to
// [Pacer.Next] sleeps for whatever remains of the interval before
// releasing the next value. Exhaustion is reported without any wait.
// A zero interval disables pacing entirely.
//
// # Iterating
//
// [Pacer.All] exposes the paced sequence through the language's
// iteration protocol, and [FromSeq] adapts an existing [iter.Seq] into
// a [Source]:
//
//	p, err := pace.New(pace.FromSeq(maps.Keys(m)), 500*time.Millisecond)
//	for k := range p.All() {
//		fmt.Println(k)
//	}
//
// # Cancellation
//
// The pacer itself has no cancellation primitive: once a wait has
// begun, it runs to completion. Callers that need to abandon a wait
// should race the blocking call at the call site, or use the
// [github.com/adamwoolhether/pace/throttle] package, which paces
// outbound HTTP requests and honors the request context.
package pace
