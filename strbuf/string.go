// Package strbuf provides String, a growable byte string.
//
// A String owns a zero-terminated byte array with an explicit length and
// capacity. It grows along a ramp (see package growth) rather than by
// doubling, supports the usual find/insert/erase/replace repertoire, and hands
// out bounds-checked cursors in four flavours: forward, const forward, reverse
// and const reverse.
//
// String requires no initialization - just declare and use:
//
//	var s strbuf.String
//	s.Append("Hello")
//	s.Append(", World")
//	i := s.Find("World", 0) // 7
//
// A String is not safe for concurrent use and must not be copied by value
// after first use: copies would share the array. Use Clone, Assign or Move.
//
// Positions are validated against the current length. A position past the
// length is rejected with a *RangeError and the String is left untouched.
// NPos as a length means "to the end". Searches never fail; they return NPos.
package strbuf

import (
	"unsafe"

	"github.com/dacapoday/gstr"
	"github.com/dacapoday/gstr/growth"
	"github.com/dacapoday/gstr/internal/store"
)

const (
	NPos   = gstr.NPos
	MaxLen = gstr.MaxLen
)

// String is a growable byte string. The zero value is empty and ready to use.
type String struct {
	buf store.Store
}

// New returns an empty String configured by opts.
func New(opts ...Option) *String {
	s := new(String)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// From returns a String holding a copy of str.
func From(str string) *String {
	s := new(String)
	s.AppendBytes(s2b(str))
	return s
}

// FromBytes returns a String holding a copy of p. A nil p gives an empty String.
func FromBytes(p []byte) *String {
	s := new(String)
	s.AppendBytes(p)
	return s
}

// FromPrefix returns a String holding the first n bytes of p.
// n may be NPos for all of p. A nil p is rejected with ErrNilSource.
func FromPrefix(p []byte, n int) (*String, error) {
	if p == nil {
		return nil, &RangeError{Op: "FromPrefix", Len: n, Err: ErrNilSource}
	}
	if n == NPos {
		n = len(p)
	}
	if n < 0 || n > len(p) {
		return nil, errOutOfRange("FromPrefix", 0, n, len(p))
	}
	return FromBytes(p[:n]), nil
}

// Repeat returns a String of n copies of c.
func Repeat(n int, c byte) (*String, error) {
	s := new(String)
	if err := s.AppendFill(n, c); err != nil {
		return nil, err
	}
	return s, nil
}

// FromRange returns a String holding the bytes in [first, last).
func FromRange(first, last ConstIter) (*String, error) {
	s := new(String)
	if err := s.AppendRange(first, last); err != nil {
		return nil, err
	}
	return s, nil
}

// Clone returns a deep copy of s with the same growth policy.
func (s *String) Clone() *String {
	c := New(WithPolicy(s.buf.Policy()))
	c.AppendBytes(s.buf.Bytes())
	return c
}

// Assign replaces the content of s with a copy of src, reusing the capacity of s.
func (s *String) Assign(src *String) {
	if s == src {
		return
	}
	s.buf.SetLen(0)
	s.AppendBytes(src.buf.Bytes())
}

// Take moves the array of src into s in O(1). src is left empty, and every
// cursor issued by either String becomes stale.
func (s *String) Take(src *String) {
	s.buf.Take(&src.buf)
}

// Move transfers the content of s into a new String in O(1) and leaves s empty.
func (s *String) Move() *String {
	d := New(WithPolicy(s.buf.Policy()))
	d.buf.Take(&s.buf)
	return d
}

// Swap exchanges the contents of s and o. Cursors of both become stale.
func (s *String) Swap(o *String) {
	s.buf.Swap(&o.buf)
}

// Reset releases the array. The String stays usable.
func (s *String) Reset() {
	s.buf.Release()
}

// Len returns the number of bytes.
func (s *String) Len() int {
	return s.buf.Len()
}

// Cap returns the number of bytes that fit before the next reallocation.
func (s *String) Cap() int {
	return s.buf.Cap()
}

// IsEmpty reports whether the length is zero.
func (s *String) IsEmpty() bool {
	return s.buf.Len() == 0
}

// Generation changes every time the array is replaced.
// Cursors issued under an older generation are stale.
func (s *String) Generation() uint64 {
	return s.buf.Gen()
}

// Stride returns the step the next growth event will use.
func (s *String) Stride() int {
	return s.buf.Stride()
}

// Policy returns the growth policy in effect.
func (s *String) Policy() growth.Policy {
	return s.buf.Policy()
}

// Index returns the byte at i without checking it against the length.
// Offsets between the length and the capacity read as zero; anything
// beyond panics.
func (s *String) Index(i int) byte {
	return s.buf.At(i)
}

// At returns the byte at i, or an error if i is not below the length.
func (s *String) At(i int) (byte, error) {
	if n := s.buf.Len(); i < 0 || i >= n {
		return 0, errOutOfRange("At", i, NPos, n)
	}
	return s.buf.At(i), nil
}

// SetAt overwrites the byte at i.
func (s *String) SetAt(i int, c byte) error {
	if n := s.buf.Len(); i < 0 || i >= n {
		return errOutOfRange("SetAt", i, NPos, n)
	}
	s.buf.Set(i, c)
	return nil
}

// Front returns the first byte.
func (s *String) Front() (byte, error) {
	if s.buf.Len() == 0 {
		return 0, errOutOfRange("Front", 0, NPos, 0)
	}
	return s.buf.At(0), nil
}

// Back returns the last byte.
func (s *String) Back() (byte, error) {
	n := s.buf.Len()
	if n == 0 {
		return 0, errOutOfRange("Back", NPos, NPos, 0)
	}
	return s.buf.At(n - 1), nil
}

// Bytes returns the content without copying.
// The slice is valid until the next mutation and must not be modified.
func (s *String) Bytes() []byte {
	return s.buf.Bytes()
}

// CBytes returns the content followed by its zero terminator, without copying.
// The slice is valid until the next mutation and must not be modified.
func (s *String) CBytes() []byte {
	if p := s.buf.Terminated(); p != nil {
		return p
	}
	return []byte{0}
}

// String returns a copy of the content.
func (s *String) String() string {
	return string(s.buf.Bytes())
}

// Copy copies up to n bytes starting at pos into dst and returns the count.
// n may be NPos; it is clamped to the bytes available and to len(dst).
func (s *String) Copy(dst []byte, pos, n int) (int, error) {
	n, err := s.resolve("Copy", pos, n)
	if err != nil {
		return 0, err
	}
	return copy(dst, s.buf.Bytes()[pos:pos+n]), nil
}

func s2b(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
