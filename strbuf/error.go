package strbuf

import (
	"fmt"

	"github.com/dacapoday/gstr"
)

var (
	ErrOutOfRange      = gstr.ErrOutOfRange
	ErrInvalidRange    = gstr.ErrInvalidRange
	ErrForeignIterator = gstr.ErrForeignIterator
	ErrStaleIterator   = gstr.ErrStaleIterator
	ErrUnpositioned    = gstr.ErrUnpositioned
	ErrNilSource       = gstr.ErrNilSource
	ErrTooLarge        = gstr.ErrTooLarge
)

// RangeError reports a rejected position or length together with the values
// that caused it. It unwraps to one of the package sentinels.
type RangeError struct {
	Op    string // operation name, e.g. "Insert"
	Pos   int    // offending position
	Len   int    // requested length, NPos when not applicable
	Limit int    // bound that was exceeded, usually the buffer length
	Err   error
}

func (e *RangeError) Error() string {
	msg := fmt.Sprintf("strbuf: %s: pos %d", e.Op, e.Pos)
	if e.Len != NPos {
		msg += fmt.Sprintf(", len %d", e.Len)
	}
	if e.Limit != NPos {
		msg += fmt.Sprintf(", limit %d", e.Limit)
	}
	return msg + ": " + e.Err.Error()
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

func errOutOfRange(op string, pos, n, limit int) error {
	return &RangeError{Op: op, Pos: pos, Len: n, Limit: limit, Err: ErrOutOfRange}
}

func errInvalidRange(op string, first, last int) error {
	return &RangeError{Op: op, Pos: first, Len: last - first, Limit: last, Err: ErrInvalidRange}
}

func errTooLarge(op string, length, n int) error {
	return &RangeError{Op: op, Pos: length, Len: n, Limit: MaxLen, Err: ErrTooLarge}
}

func errIterator(op string, off int, err error) error {
	return &RangeError{Op: op, Pos: off, Len: NPos, Limit: NPos, Err: err}
}
