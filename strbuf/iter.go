package strbuf

import "github.com/dacapoday/gstr/iterator"

// Iter is a forward cursor that can also write the byte it points at.
//
// Every flavour of cursor reads the live length of its String, so it keeps
// working across edits that stay within the current array. Any edit that
// reallocates (growth, ShrinkToFit, Reserve, Swap, Take, Move, Reset) makes it
// stale: its operations then fail with ErrStaleIterator until it is
// re-positioned with SeekFirst or SeekLast, or replaced by a fresh one.
//
// Equal cursors belong to the same String, were issued under the same
// generation, and sit at the same offset.
type Iter struct{ cursor }

// ConstIter is a read-only forward cursor.
type ConstIter struct{ cursor }

// ReverseIter is a cursor walking from the last byte to the first that can
// also write the byte it points at.
type ReverseIter struct{ rcursor }

// ConstReverseIter is a read-only reverse cursor.
type ConstReverseIter struct{ rcursor }

var (
	_ iterator.Iterator = (*Iter)(nil)
	_ iterator.Iterator = (*ConstIter)(nil)
	_ iterator.Iterator = (*ReverseIter)(nil)
	_ iterator.Iterator = (*ConstReverseIter)(nil)
)

// Begin returns a cursor at the first byte.
func (s *String) Begin() Iter {
	return Iter{newCursor(s, 0)}
}

// End returns a cursor one past the last byte.
func (s *String) End() Iter {
	return Iter{newCursor(s, s.buf.Len())}
}

// CBegin returns a read-only cursor at the first byte.
func (s *String) CBegin() ConstIter {
	return ConstIter{newCursor(s, 0)}
}

// CEnd returns a read-only cursor one past the last byte.
func (s *String) CEnd() ConstIter {
	return ConstIter{newCursor(s, s.buf.Len())}
}

// RBegin returns a reverse cursor at the last byte.
func (s *String) RBegin() ReverseIter {
	return ReverseIter{rcursor{newCursor(s, s.buf.Len())}}
}

// REnd returns a reverse cursor one before the first byte.
func (s *String) REnd() ReverseIter {
	return ReverseIter{rcursor{newCursor(s, 0)}}
}

// CRBegin returns a read-only reverse cursor at the last byte.
func (s *String) CRBegin() ConstReverseIter {
	return ConstReverseIter{rcursor{newCursor(s, s.buf.Len())}}
}

// CREnd returns a read-only reverse cursor one before the first byte.
func (s *String) CREnd() ConstReverseIter {
	return ConstReverseIter{rcursor{newCursor(s, 0)}}
}

// Add returns a cursor k bytes further on. The target must lie in [0, Len].
func (it Iter) Add(k int) (Iter, error) {
	c, err := it.add("Add", k)
	return Iter{c}, err
}

// Sub returns a cursor k bytes back.
func (it Iter) Sub(k int) (Iter, error) {
	c, err := it.add("Sub", -k)
	return Iter{c}, err
}

// Set overwrites the current byte.
func (it Iter) Set(c byte) error {
	return it.set("Set", it.off, c)
}

// SetAt overwrites the byte k positions after the current one.
func (it Iter) SetAt(k int, c byte) error {
	return it.set("SetAt", it.off+k, c)
}

// Equal reports whether both cursors denote the same position of the same array.
func (it Iter) Equal(o Iter) bool {
	return it.equal(&o.cursor)
}

// Const returns a read-only cursor at the same position.
func (it Iter) Const() ConstIter {
	return ConstIter{it.cursor}
}

// Add returns a cursor k bytes further on. The target must lie in [0, Len].
func (it ConstIter) Add(k int) (ConstIter, error) {
	c, err := it.add("Add", k)
	return ConstIter{c}, err
}

// Sub returns a cursor k bytes back.
func (it ConstIter) Sub(k int) (ConstIter, error) {
	c, err := it.add("Sub", -k)
	return ConstIter{c}, err
}

// Equal reports whether both cursors denote the same position of the same array.
func (it ConstIter) Equal(o ConstIter) bool {
	return it.equal(&o.cursor)
}

// Add returns a cursor k bytes further towards the front.
func (it ReverseIter) Add(k int) (ReverseIter, error) {
	c, err := it.base.add("Add", -k)
	return ReverseIter{rcursor{c}}, err
}

// Sub returns a cursor k bytes back towards the end.
func (it ReverseIter) Sub(k int) (ReverseIter, error) {
	c, err := it.base.add("Sub", k)
	return ReverseIter{rcursor{c}}, err
}

// Set overwrites the current byte.
func (it ReverseIter) Set(c byte) error {
	return it.base.set("Set", it.base.off-1, c)
}

// SetAt overwrites the byte k positions further towards the front.
func (it ReverseIter) SetAt(k int, c byte) error {
	return it.base.set("SetAt", it.base.off-1-k, c)
}

// Equal reports whether both cursors denote the same position of the same array.
func (it ReverseIter) Equal(o ReverseIter) bool {
	return it.base.equal(&o.base)
}

// Base returns the forward cursor one past the current byte.
func (it ReverseIter) Base() Iter {
	c := it.base
	c.err = nil
	return Iter{c}
}

// Const returns a read-only cursor at the same position.
func (it ReverseIter) Const() ConstReverseIter {
	return ConstReverseIter{it.rcursor}
}

// Add returns a cursor k bytes further towards the front.
func (it ConstReverseIter) Add(k int) (ConstReverseIter, error) {
	c, err := it.base.add("Add", -k)
	return ConstReverseIter{rcursor{c}}, err
}

// Sub returns a cursor k bytes back towards the end.
func (it ConstReverseIter) Sub(k int) (ConstReverseIter, error) {
	c, err := it.base.add("Sub", k)
	return ConstReverseIter{rcursor{c}}, err
}

// Equal reports whether both cursors denote the same position of the same array.
func (it ConstReverseIter) Equal(o ConstReverseIter) bool {
	return it.base.equal(&o.base)
}

// Base returns the forward cursor one past the current byte.
func (it ConstReverseIter) Base() ConstIter {
	c := it.base
	c.err = nil
	return ConstIter{c}
}
