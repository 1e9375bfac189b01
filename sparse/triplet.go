// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"strconv"
	"strings"
)

// tripletFields is the exact number of comma-separated fields in a record.
const tripletFields = 3

// ParseTriplet parses one "row,col,value" record. Whitespace around fields
// is ignored. Row and col must be non-negative integers (bounds against a
// concrete shape are checked later, by FromTriplets); value must be a
// non-negative integer that fits in 64 bits.
//
// Errors: ErrMalformedTriplet, wrapped with the offending input.
// Complexity: O(len(s)).
func ParseTriplet(s string) (Triplet, error) {
	parts := strings.Split(s, ",")
	if len(parts) != tripletFields {
		return Triplet{}, fmt.Errorf("ParseTriplet: %q: want row,col,value: %w", s, ErrMalformedTriplet)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || row < 0 {
		return Triplet{}, fmt.Errorf("ParseTriplet: %q: bad row: %w", s, ErrMalformedTriplet)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || col < 0 {
		return Triplet{}, fmt.Errorf("ParseTriplet: %q: bad col: %w", s, ErrMalformedTriplet)
	}
	val, err := strconv.ParseUint(strings.TrimSpace(parts[2]), 10, 64)
	if err != nil {
		return Triplet{}, fmt.Errorf("ParseTriplet: %q: bad value: %w", s, ErrMalformedTriplet)
	}

	return Triplet{Row: row, Col: col, Val: val}, nil
}
