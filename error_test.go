// SPDX-License-Identifier: Apache-2.0

package copyinplace

import (
	"errors"
	"fmt"
	"testing"
)

func TestRangeErrorMessage(t *testing.T) {
	err := Check(13, Range{Start: 1, End: 5}, 10)
	want := "invalid range: dest is out of bounds (src [1,5) dest 10 len 13)"
	if err == nil || err.Error() != want {
		t.Errorf("want %q, got %v", want, err)
	}
}

func TestIsInvalidRangeErr(t *testing.T) {
	rangeErr := Check(4, RangeTo{End: 5}, 0)

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "sentinel", err: ErrInvalidRange, want: true},
		{name: "range error", err: rangeErr, want: true},
		{name: "wrapped range error", err: fmt.Errorf("copy: %w", rangeErr), want: true},
		{name: "range error with other cause", err: &RangeError{Cause: errBoundOverflow}, want: false},
		{name: "unrelated", err: errors.New("invalid range"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInvalidRangeErr(tt.err); got != tt.want {
				t.Errorf("want %v, got %v", tt.want, got)
			}
		})
	}
}
