// SPDX-License-Identifier: Apache-2.0

package span

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Span represents the half-open interval [Start, End) on a number line.
//
// See [Span.Check] for constraints on how this type should be used.
type Span[T constraints.Integer] struct {
	Start, End T
}

// Check asserts that the span is well formed (that is, start <= end).
// Empty spans are allowed.
func (s Span[T]) Check() error {
	if s.Start <= s.End {
		return nil
	}
	return fmt.Errorf("bad span: start must not follow end [%d,%d)", s.Start, s.End)
}

// Len returns the number of points covered by a checked span.
func (s Span[T]) Len() T {
	return s.End - s.Start
}

// Contains returns true if the other span is completely contained
// by the receiving span. It returns false even for partially overlapping
// spans. An empty span is contained if its start lies within [Start, End].
func (s Span[T]) Contains(other Span[T]) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Overlaps returns true if the two spans share any common point.
// Empty spans overlap nothing.
func (s Span[T]) Overlaps(other Span[T]) bool {
	return s.Start < s.End && other.Start < other.End &&
		s.Start < other.End && other.Start < s.End
}

// Shift returns a span of the same length starting at to.
func (s Span[T]) Shift(to T) Span[T] {
	return Span[T]{Start: to, End: to + s.Len()}
}
