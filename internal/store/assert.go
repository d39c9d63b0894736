//go:build debug

package store

import "fmt"

// assertState panics if the length, capacity or terminator invariant is broken.
// Only enabled with -tags debug.
func assertState(method string, s *Store) {
	if s.data == nil {
		if s.length != 0 {
			panic(fmt.Sprintf("%s: length %d without array", method, s.length))
		}
		return
	}
	if s.length > len(s.data)-1 {
		panic(fmt.Sprintf("%s: length %d > capacity %d", method, s.length, len(s.data)-1))
	}
	for i := s.length; i < len(s.data); i++ {
		if s.data[i] != 0 {
			panic(fmt.Sprintf("%s: non-zero byte %d at %d past length %d", method, s.data[i], i, s.length))
		}
	}
}

// assertCapacity panics if length does not fit capacity.
// Only enabled with -tags debug.
func assertCapacity(method string, capacity, length int) {
	if length > capacity {
		panic(fmt.Sprintf("%s: length %d > capacity %d", method, length, capacity))
	}
}

// assertSpan panics if [off, off+n) is not inside [0, limit).
// Only enabled with -tags debug.
func assertSpan(method string, off, n, limit int) {
	if off < 0 || n < 0 || off+n > limit {
		panic(fmt.Sprintf("%s: span [%d, %d) outside [0, %d)", method, off, off+n, limit))
	}
}
