package pace

import (
	"iter"
	"testing"
	"time"
)

func TestFromSeq(t *testing.T) {
	counter := func(n int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for i := 0; i < n; i++ {
				if !yield(i) {
					return
				}
			}
		}
	}

	src := FromSeq(counter(3))

	for want := 0; want < 3; want++ {
		v, ok := src.Next()
		if !ok || v != want {
			t.Fatalf("exp (%d, true); got (%d, %t)", want, v, ok)
		}
	}

	// Exhausted pull iterators stay exhausted.
	for i := 0; i < 3; i++ {
		if _, ok := src.Next(); ok {
			t.Fatal("exp exhaustion after sequence end")
		}
	}
}

func TestFromSlice_Empty(t *testing.T) {
	src := FromSlice([]int(nil))

	if _, ok := src.Next(); ok {
		t.Fatal("exp immediate exhaustion for empty slice")
	}
}

func TestPacer_All(t *testing.T) {
	want := []int{10, 20, 30}

	p, err := New(FromSlice(want), 0)
	if err != nil {
		t.Fatal(err)
	}

	var got []int
	for v := range p.All() {
		got = append(got, v)
	}

	if len(got) != len(want) {
		t.Fatalf("exp %d values; got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d: exp %d; got %d", i, want[i], got[i])
		}
	}
}

func TestPacer_All_EarlyBreak(t *testing.T) {
	p, err := New(FromSlice([]int{1, 2, 3, 4}), 0)
	if err != nil {
		t.Fatal(err)
	}

	for v := range p.All() {
		if v == 2 {
			break
		}
	}

	// Breaking the range loop must not consume or discard values.
	v, ok := p.Next()
	if !ok || v != 3 {
		t.Fatalf("exp (3, true) after break; got (%d, %t)", v, ok)
	}
}

func TestPacer_All_Paced(t *testing.T) {
	const interval = 40 * time.Millisecond

	p, err := New(FromSlice([]int{0, 1, 2}), interval)
	if err != nil {
		t.Fatal(err)
	}

	start := time.Now()
	for range p.All() {
	}

	// Two gated emissions follow the immediate first one.
	checkSlowedDown(t, time.Since(start), 2*interval-10*time.Millisecond, "ranged iteration")
}
