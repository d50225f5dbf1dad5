// SPDX-License-Identifier: Apache-2.0

// Package copyinplace copies a run of elements from one part of a slice to
// another part of the same slice. The two regions may overlap.
package copyinplace

import "github.com/digitalocean/go-copyinplace/internal/span"

// CopyInPlace copies the elements of s selected by src to s[dest:], which
// receives the same number of elements. The regions may overlap: afterwards
// s[dest+i] holds the value s[start+i] held before the call.
//
// CopyInPlace panics with a *RangeError if src or the destination region
// extends past either end of s, or if src ends before it starts. The check
// happens before s is touched, so a rejected call leaves s unmodified.
//
// Copying within a slice:
//
//	b := []byte("Hello, World!")
//	copyinplace.CopyInPlace(b, copyinplace.Range{Start: 1, End: 5}, 8)
//	// b is now "Hello, Wello!"
func CopyInPlace[S ~[]E, E any](s S, src Bounds, dest int) {
	r, err := check(len(s), src, dest)
	if err != nil {
		panic(err)
	}
	if placementOf(r, dest) == placementStationary {
		return
	}
	// The builtin copy is defined for overlapping slices, so forward and
	// backward placements need no special handling here.
	copy(s[dest:dest+r.Len()], s[r.Start:r.End])
}

// Check reports whether CopyInPlace would accept src and dest for a slice of
// length n. It returns the *RangeError CopyInPlace would panic with, or nil.
func Check(n int, src Bounds, dest int) error {
	_, err := check(n, src, dest)
	return err
}

func check(n int, src Bounds, dest int) (span.Span[int], error) {
	var r span.Span[int]
	fail := func(msg string) error {
		return &RangeError{
			Cause:   ErrInvalidRange,
			Message: msg,
			Start:   r.Start,
			End:     r.End,
			Dest:    dest,
			Len:     n,
		}
	}

	if src == nil {
		return r, fail("src is nil")
	}
	start, end, err := src.Resolve(n)
	r = span.Span[int]{Start: start, End: end}
	if err != nil {
		return r, fail(err.Error())
	}

	switch {
	case r.Start < 0:
		return r, fail("src start is negative")
	case dest < 0:
		return r, fail("dest is negative")
	case r.Check() != nil:
		return r, fail("src end is before src start")
	case !(span.Span[int]{Start: 0, End: n}).Contains(r):
		return r, fail("src is out of bounds")
	case dest > n-r.Len():
		return r, fail("dest is out of bounds")
	}
	return r, nil
}
