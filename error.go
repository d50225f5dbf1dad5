// SPDX-License-Identifier: Apache-2.0

package copyinplace

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is the cause of every rejected copy request.
var ErrInvalidRange = errors.New("invalid range")

var (
	errBoundOverflow = errors.New("range bound overflows int")
	errNegativeEnd   = errors.New("src end is negative")
)

// RangeError describes a copy request that would read or write outside the
// sequence. CopyInPlace panics with a *RangeError; Check returns one.
type RangeError struct {
	Cause   error
	Message string

	// Start and End are the resolved source bounds, Dest the requested
	// destination and Len the length of the sequence.
	Start, End int
	Dest       int
	Len        int
}

func (e *RangeError) Error() string {
	s := e.Cause.Error()
	if e.Message != "" {
		s = fmt.Sprintf("%s: %s", s, e.Message)
	}
	return fmt.Sprintf("%s (src [%d,%d) dest %d len %d)", s, e.Start, e.End, e.Dest, e.Len)
}

func (e *RangeError) Unwrap() error { return e.Cause }

// IsInvalidRangeErr reports whether err, or a value recovered from a
// CopyInPlace panic, is a rejected copy request.
func IsInvalidRangeErr(err error) bool {
	if errors.Is(err, ErrInvalidRange) {
		return true
	}
	var e *RangeError
	if errors.As(err, &e) {
		return errors.Is(e.Cause, ErrInvalidRange)
	}
	return false
}
