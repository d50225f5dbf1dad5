// SPDX-License-Identifier: Apache-2.0

package copyinplace

import "math"

// Bounds selects a run of elements in a sequence of length n.
//
// Resolve returns the selection as the half-open interval [start, end). It
// only fails when an inclusive end cannot be turned into an exclusive one;
// whether the interval actually fits the sequence is checked by the caller.
type Bounds interface {
	Resolve(n int) (start, end int, err error)
}

// Range selects [Start, End).
type Range struct {
	Start, End int
}

func (r Range) Resolve(int) (int, int, error) { return r.Start, r.End, nil }

// RangeInclusive selects [Start, End].
type RangeInclusive struct {
	Start, End int
}

func (r RangeInclusive) Resolve(int) (int, int, error) {
	end, err := inclusiveEnd(r.End)
	return r.Start, end, err
}

// RangeFrom selects [Start, n).
type RangeFrom struct {
	Start int
}

func (r RangeFrom) Resolve(n int) (int, int, error) { return r.Start, n, nil }

// RangeTo selects [0, End).
type RangeTo struct {
	End int
}

func (r RangeTo) Resolve(int) (int, int, error) { return 0, r.End, nil }

// RangeToInclusive selects [0, End].
type RangeToInclusive struct {
	End int
}

func (r RangeToInclusive) Resolve(int) (int, int, error) {
	end, err := inclusiveEnd(r.End)
	return 0, end, err
}

// RangeFull selects the whole sequence.
type RangeFull struct{}

func (RangeFull) Resolve(n int) (int, int, error) { return 0, n, nil }

func inclusiveEnd(end int) (int, error) {
	switch {
	case end < 0:
		return end, errNegativeEnd
	case end == math.MaxInt:
		return end, errBoundOverflow
	}
	return end + 1, nil
}
