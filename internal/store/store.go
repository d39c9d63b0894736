// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package store owns the byte array behind a growable string.
//
// It is the only code that allocates. Every reallocation goes through one
// entry point, which also bumps the generation counter so that cursors
// holding an older generation can tell their view is gone.
//
// Layout: data has capacity+1 bytes. data[length] is always zero, and so is
// every byte after it, which lets the length grow without an extra fill.
package store

import (
	"unsafe"

	"github.com/dacapoday/gstr/growth"
)

// Store requires no initialization: the zero value is empty, owns no array
// and grows with growth.Default.
type Store struct {
	data   []byte
	length int
	stride int
	gen    uint64
	policy growth.Policy
}

// SetPolicy replaces the growth policy and restarts the stride ramp.
func (s *Store) SetPolicy(p growth.Policy) {
	s.policy = p.Normalize()
	s.stride = s.policy.Stride
}

// Policy returns the growth policy in effect.
func (s *Store) Policy() growth.Policy {
	return s.policy.Normalize()
}

// Len returns the number of live bytes.
func (s *Store) Len() int {
	return s.length
}

// Cap returns the number of bytes that fit before the next reallocation.
// The terminator slot is not counted.
func (s *Store) Cap() int {
	if s.data == nil {
		return 0
	}
	return len(s.data) - 1
}

// Gen returns the generation, which changes whenever the array is replaced.
func (s *Store) Gen() uint64 {
	return s.gen
}

// Stride returns the stride the next growth event will use.
func (s *Store) Stride() int {
	if s.stride < 1 {
		return s.Policy().Stride
	}
	return s.stride
}

// Bytes returns the live bytes. The slice aliases the array and is capped at
// the length, so appending to it never writes into the store.
func (s *Store) Bytes() []byte {
	return s.data[:s.length:s.length]
}

// Terminated returns the live bytes followed by the zero terminator,
// or nil when nothing is allocated.
func (s *Store) Terminated() []byte {
	if s.data == nil {
		return nil
	}
	return s.data[: s.length+1 : s.length+1]
}

// At returns the byte at i without checking it against the length.
func (s *Store) At(i int) byte {
	return s.data[i]
}

// Set overwrites the byte at i, which must be below the length.
func (s *Store) Set(i int, c byte) {
	assertSpan("Set", i, 1, s.length)
	s.data[i] = c
}

// Reserve makes room for n bytes, growing along the policy ramp.
// It reallocates only when the capacity is below n and reports whether it did.
func (s *Store) Reserve(n int) bool {
	capacity := s.Cap()
	if capacity >= n {
		return false
	}
	capacity, s.stride = s.Policy().Grow(capacity, n, s.stride)
	s.realloc(capacity)
	return true
}

// Resize reallocates to exactly capacity bytes, never below the length.
// Resizing an empty store to zero releases the array.
func (s *Store) Resize(capacity int) {
	capacity = max(capacity, s.length)
	if capacity == s.Cap() {
		return
	}
	s.realloc(capacity)
}

// Shrink reallocates down to capacity bytes (never below the length) and
// narrows the growth stride. It does nothing unless capacity is smaller than
// the current one.
func (s *Store) Shrink(capacity int) {
	capacity = max(capacity, s.length)
	if capacity >= s.Cap() {
		return
	}
	s.realloc(capacity)
	s.stride = s.Policy().Shrink(s.Stride())
}

// SetLen moves the end of the live bytes to n, which must fit the capacity.
// Bytes dropped by a shorter length are zeroed.
func (s *Store) SetLen(n int) {
	assertCapacity("SetLen", s.Cap(), n)
	if s.data == nil {
		return
	}
	if n < s.length {
		clear(s.data[n:s.length])
	}
	s.data[n] = 0
	s.length = n
	assertState("SetLen", s)
}

// Put copies p into the array at off. The span may run past the length but
// not past the capacity; the caller publishes it with SetLen.
func (s *Store) Put(off int, p []byte) {
	assertSpan("Put", off, len(p), s.Cap())
	copy(s.data[off:], p)
}

// Fill writes n copies of c at off, within the capacity.
func (s *Store) Fill(off, n int, c byte) {
	assertSpan("Fill", off, n, s.Cap())
	b := s.data[off : off+n]
	for i := range b {
		b[i] = c
	}
}

// Shift moves n bytes from src to dst inside the array. The spans may overlap.
func (s *Store) Shift(dst, src, n int) {
	if n <= 0 || dst == src {
		return
	}
	assertSpan("Shift", dst, n, s.Cap())
	assertSpan("Shift", src, n, s.Cap())
	copy(s.data[dst:dst+n], s.data[src:src+n])
}

// Overlaps reports whether p shares memory with the array.
func (s *Store) Overlaps(p []byte) bool {
	if len(p) == 0 || s.data == nil {
		return false
	}
	start := uintptr(unsafe.Pointer(unsafe.SliceData(s.data)))
	end := start + uintptr(len(s.data))
	pstart := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	pend := pstart + uintptr(len(p))
	return pstart < end && start < pend
}

// Release drops the array and restarts the stride ramp.
func (s *Store) Release() {
	s.data = nil
	s.length = 0
	s.stride = 0
	s.gen++
}

// Swap exchanges contents, capacity and growth state with o.
// Both generations advance.
func (s *Store) Swap(o *Store) {
	if s == o {
		return
	}
	s.data, o.data = o.data, s.data
	s.length, o.length = o.length, s.length
	s.stride, o.stride = o.stride, s.stride
	s.policy, o.policy = o.policy, s.policy
	s.gen++
	o.gen++
}

// Take moves the array of o into s in O(1), leaving o empty.
func (s *Store) Take(o *Store) {
	if s == o {
		return
	}
	s.data, s.length, s.stride = o.data, o.length, o.stride
	s.gen++
	o.Release()
}

// realloc is the single reallocation entry point.
func (s *Store) realloc(capacity int) {
	assertCapacity("realloc", capacity, s.length)
	if capacity == 0 {
		s.data = nil
	} else {
		data := make([]byte, capacity+1)
		copy(data, s.data[:s.length])
		s.data = data
	}
	s.gen++
	assertState("realloc", s)
}
