// Package compute implements the pull-driven stream transducers: every
// value is a lazy stream of continued-fraction terms, and every operation
// is a state machine with a single Next method that absorbs input terms
// until it can safely emit an output term.
package compute

import (
	"github.com/contfrac/reals/pkg/term"
)

// Computation produces the terms of a generalized continued fraction on
// demand. Next returns ok = false when the stream is exhausted (rational
// value fully emitted); every later call must also return false.
// Computations are single-pass; use Cached to share one across readers.
type Computation interface {
	Next() (term.Term, bool)
}

// sliceSource replays a fixed term slice.
type sliceSource struct {
	terms []term.Term
	index int
}

// FromSlice returns a computation over a fixed list of terms.
func FromSlice(terms []term.Term) Computation {
	return &sliceSource{terms: terms}
}

// FromInts returns a computation over simple terms.
func FromInts(ns ...int64) Computation {
	terms := make([]term.Term, len(ns))
	for i, n := range ns {
		terms[i] = term.Simple(n)
	}
	return FromSlice(terms)
}

func (s *sliceSource) Next() (term.Term, bool) {
	if s.index >= len(s.terms) {
		return term.Term{}, false
	}
	t := s.terms[s.index]
	s.index++
	return t, true
}

// funcSource adapts a generator closure.
type funcSource struct {
	f func() (term.Term, bool)
}

// FromFunc returns a computation backed by a generator closure. The closure
// must keep returning false once it has returned false.
func FromFunc(f func() (term.Term, bool)) Computation {
	return &funcSource{f: f}
}

func (s *funcSource) Next() (term.Term, bool) {
	return s.f()
}

// FromIndexFunc returns an infinite computation whose i-th term (1-based)
// is produced by f.
func FromIndexFunc(f func(i int) term.Term) Computation {
	i := 0
	return FromFunc(func() (term.Term, bool) {
		i++
		return f(i), true
	})
}

// Empty returns a computation with no terms.
func Empty() Computation {
	return FromSlice(nil)
}

// Take drains up to n terms from c.
func Take(c Computation, n int) []term.Term {
	var out []term.Term
	for i := 0; i < n; i++ {
		t, ok := c.Next()
		if !ok {
			break
		}
		out = append(out, t)
	}
	return out
}
