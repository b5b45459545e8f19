// SPDX-License-Identifier: MIT

// Package matrix: element type constraint and the numeric helpers built on it.
package matrix

// Number is the set of element types a Matrix can hold.
// Every member supports +, -, *, value copy and has a zero value.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// isNonFinite reports whether v is NaN or ±Inf.
// v-v is 0 for every finite value and NaN for NaN/±Inf; integers never trip it.
// Complexity: O(1).
func isNonFinite[T Number](v T) bool {
	d := v - v
	return d != d
}

// firstNonFinite returns the flat offset of the first NaN/Inf in data, or -1.
// Complexity: O(n).
func firstNonFinite[T Number](data []T) int {
	for i, v := range data {
		if isNonFinite(v) {
			return i
		}
	}

	return -1
}
