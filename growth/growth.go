// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package growth computes capacity targets for a growable buffer.
//
// Growth is not a fixed doubling. Each growth event adds whole strides to the
// current capacity until the request fits, then widens the stride by one, so a
// long run of small appends turns into progressively larger allocations.
// Shrink events narrow the stride again, down to a floor, so alternating
// grow/shrink sequences settle instead of thrashing.
//
// Policy holds no state: the caller owns the stride and passes it back in.
package growth

import "github.com/dacapoday/gstr"

const (
	DefaultStride = 16
	DefaultFloor  = 16
)

// Default is the policy used by a zero-value buffer.
var Default = Policy{Stride: DefaultStride, Floor: DefaultFloor}

// Policy describes the growth ramp.
type Policy struct {
	// Stride is the step used by the first growth event.
	Stride int
	// Floor is the narrowest stride a shrink event can leave behind.
	Floor int
}

// Normalize returns p with unset or invalid fields replaced by defaults.
func (p Policy) Normalize() Policy {
	if p.Stride < 1 {
		p.Stride = DefaultStride
	}
	if p.Floor < 1 {
		p.Floor = min(p.Stride, DefaultFloor)
	}
	return p
}

// Grow returns the capacity to allocate so that need bytes fit, together with
// the stride for the next growth event.
//
// The result is the smallest capacity+k*stride strictly greater than need
// (k >= 1 when capacity <= need). A stride below 1 is replaced by p.Stride.
// When capacity already exceeds need, capacity is returned unchanged and the
// stride does not move.
func (p Policy) Grow(capacity, need, stride int) (int, int) {
	p = p.Normalize()
	if stride < 1 {
		stride = p.Stride
	}
	if capacity < 0 {
		capacity = 0
	}
	if capacity > need {
		return capacity, stride
	}
	steps := (need-capacity)/stride + 1
	if steps > (gstr.MaxLen-capacity)/stride {
		return max(need, gstr.MaxLen), stride + 1
	}
	return capacity + steps*stride, stride + 1
}

// Shrink returns the stride after a shrink event.
func (p Policy) Shrink(stride int) int {
	p = p.Normalize()
	if stride <= p.Floor {
		return p.Floor
	}
	return stride - 1
}
