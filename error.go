package gstr

import "errors"

var (
	ErrOutOfRange      = errors.New("out of range")
	ErrInvalidRange    = errors.New("invalid range")
	ErrForeignIterator = errors.New("iterator from another buffer")
	ErrStaleIterator   = errors.New("stale iterator")
	ErrUnpositioned    = errors.New("unpositioned iterator")
	ErrNilSource       = errors.New("nil source")
	ErrTooLarge        = errors.New("too large")
)
