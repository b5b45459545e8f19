// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite so the numeric policy never interferes by accident.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// MustMatrix builds an r×c matrix from data or fails the test.
func MustMatrix[T matrix.Number](t testing.TB, r, c int, data []T, opts ...matrix.Option) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New(r, c, data, opts...)
	require.NoError(t, err, "New(%d,%d)", r, c)

	return m
}

// MustGet reads (row, col) or fails the test.
func MustGet[T matrix.Number](t testing.TB, m *matrix.Matrix[T], row, col int) T {
	t.Helper()
	v, err := m.Get(row, col)
	require.NoError(t, err, "Get(%d,%d)", row, col)

	return v
}

// requireData compares the row-major storage of m with want and prints a diff.
func requireData[T matrix.Number](t testing.TB, want []T, m *matrix.Matrix[T]) {
	t.Helper()
	require.NotNil(t, m)
	if diff := cmp.Diff(want, m.Data()); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}
}

// requirePanicsIs runs f, expects it to panic with an error, and matches that
// error against target via errors.Is.
func requirePanicsIs(t testing.TB, target error, f func()) {
	t.Helper()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		f()
	}()
	require.NotNil(t, recovered, "expected a panic")
	err, ok := recovered.(error)
	require.True(t, ok, "panic value %T is not an error", recovered)
	require.True(t, errors.Is(err, target), "panic %q does not wrap %q", err, target)
}

// RandomInts returns a deterministic r×c matrix with entries in [-50, 50).
func RandomInts(t testing.TB, r, c int, seed int64) *matrix.Matrix[int] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]int, r*c)
	for i := range data {
		data[i] = rng.Intn(100) - 50
	}

	return MustMatrix(t, r, c, data)
}

// RandomFloats returns a deterministic r×c matrix with entries in [-1, 1).
func RandomFloats(t testing.TB, r, c int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return MustMatrix(t, r, c, data)
}
