// Package gstr defines the shared constants and errors of a growable byte string.
//
// The string type itself lives in package strbuf; growth policy in package growth.
package gstr

import "math"

// NPos is the not-found result of every search, and the "to the end" value
// accepted wherever a length is expected.
const NPos = -1

// MaxLen is the largest length a buffer may reach.
// One slot is always kept for the terminating zero byte.
const MaxLen = math.MaxInt - 1
