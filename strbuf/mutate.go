package strbuf

import "bytes"

// resolve validates pos against the length and turns n into the number of
// bytes available from pos: NPos and overlong lengths stop at the end.
func (s *String) resolve(op string, pos, n int) (int, error) {
	length := s.buf.Len()
	if pos < 0 || pos > length {
		return 0, errOutOfRange(op, pos, n, length)
	}
	if n == NPos || n > length-pos {
		return length - pos, nil
	}
	if n < 0 {
		return 0, errOutOfRange(op, pos, n, length)
	}
	return n, nil
}

// gap resizes the n bytes at pos to m bytes. The tail is moved in place and
// the m bytes at pos are left for the caller to overwrite. pos and n must
// already be resolved.
func (s *String) gap(op string, pos, n, m int) error {
	length := s.buf.Len()
	if m < 0 {
		return errOutOfRange(op, pos, m, length)
	}
	if m > MaxLen-(length-n) {
		return errTooLarge(op, length, m)
	}
	size := length - n + m
	s.buf.Reserve(size)
	s.buf.Shift(pos+m, pos+n, length-pos-n)
	s.buf.SetLen(size)
	return nil
}

// splice replaces the n bytes at pos with p. A p that aliases the array is
// copied first, since moving the tail could overwrite it.
func (s *String) splice(op string, pos, n int, p []byte) error {
	if s.buf.Overlaps(p) {
		p = bytes.Clone(p)
	}
	if err := s.gap(op, pos, n, len(p)); err != nil {
		return err
	}
	s.buf.Put(pos, p)
	return nil
}

// spliceFill replaces the n bytes at pos with m copies of c.
func (s *String) spliceFill(op string, pos, n, m int, c byte) error {
	if err := s.gap(op, pos, n, m); err != nil {
		return err
	}
	s.buf.Fill(pos, m, c)
	return nil
}

// sub returns the bytes selected by pos and n, without copying.
func (s *String) sub(op string, pos, n int) ([]byte, error) {
	n, err := s.resolve(op, pos, n)
	if err != nil {
		return nil, err
	}
	return s.buf.Bytes()[pos : pos+n], nil
}

// Append appends str. It panics with ErrTooLarge if the result would exceed MaxLen.
func (s *String) Append(str string) {
	s.AppendBytes(s2b(str))
}

// AppendBytes appends p. A nil or empty p is a no-op.
// It panics with ErrTooLarge if the result would exceed MaxLen.
func (s *String) AppendBytes(p []byte) {
	if len(p) == 0 {
		return
	}
	if err := s.splice("Append", s.buf.Len(), 0, p); err != nil {
		panic(err)
	}
}

// AppendString appends the content of o, which may be s itself.
func (s *String) AppendString(o *String) {
	s.AppendBytes(o.buf.Bytes())
}

// AppendSub appends n bytes of o starting at pos. n may be NPos.
func (s *String) AppendSub(o *String, pos, n int) error {
	p, err := o.sub("AppendSub", pos, n)
	if err != nil {
		return err
	}
	return s.splice("AppendSub", s.buf.Len(), 0, p)
}

// AppendFill appends n copies of c.
func (s *String) AppendFill(n int, c byte) error {
	return s.spliceFill("AppendFill", s.buf.Len(), 0, n, c)
}

// PushBack appends one byte.
func (s *String) PushBack(c byte) {
	if err := s.spliceFill("PushBack", s.buf.Len(), 0, 1, c); err != nil {
		panic(err)
	}
}

// PopBack removes the last byte.
func (s *String) PopBack() error {
	n := s.buf.Len()
	if n == 0 {
		return errOutOfRange("PopBack", NPos, 1, 0)
	}
	s.buf.SetLen(n - 1)
	return nil
}

// Insert inserts str before pos. pos equal to the length appends.
func (s *String) Insert(pos int, str string) error {
	return s.InsertBytes(pos, s2b(str))
}

// InsertBytes inserts p before pos.
func (s *String) InsertBytes(pos int, p []byte) error {
	if pos < 0 || pos > s.buf.Len() {
		return errOutOfRange("Insert", pos, len(p), s.buf.Len())
	}
	if len(p) == 0 {
		return nil
	}
	return s.splice("Insert", pos, 0, p)
}

// InsertString inserts the content of o before pos.
func (s *String) InsertString(pos int, o *String) error {
	return s.InsertBytes(pos, o.buf.Bytes())
}

// InsertSub inserts n bytes of o, starting at subpos, before pos.
func (s *String) InsertSub(pos int, o *String, subpos, n int) error {
	p, err := o.sub("InsertSub", subpos, n)
	if err != nil {
		return err
	}
	return s.InsertBytes(pos, p)
}

// InsertFill inserts n copies of c before pos.
func (s *String) InsertFill(pos, n int, c byte) error {
	if pos < 0 || pos > s.buf.Len() {
		return errOutOfRange("InsertFill", pos, n, s.buf.Len())
	}
	return s.spliceFill("InsertFill", pos, 0, n, c)
}

// Erase removes n bytes starting at pos. n may be NPos or run past the end;
// either way erasing stops at the end.
func (s *String) Erase(pos, n int) error {
	n, err := s.resolve("Erase", pos, n)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	return s.gap("Erase", pos, n, 0)
}

// Clear removes every byte and keeps the capacity.
func (s *String) Clear() {
	s.buf.SetLen(0)
}

// Replace replaces n bytes starting at pos with str.
func (s *String) Replace(pos, n int, str string) error {
	return s.ReplaceBytes(pos, n, s2b(str))
}

// ReplaceBytes replaces n bytes starting at pos with p.
func (s *String) ReplaceBytes(pos, n int, p []byte) error {
	n, err := s.resolve("Replace", pos, n)
	if err != nil {
		return err
	}
	return s.splice("Replace", pos, n, p)
}

// ReplaceString replaces n bytes starting at pos with the content of o.
func (s *String) ReplaceString(pos, n int, o *String) error {
	return s.ReplaceBytes(pos, n, o.buf.Bytes())
}

// ReplaceSub replaces n bytes starting at pos with subn bytes of o starting at subpos.
func (s *String) ReplaceSub(pos, n int, o *String, subpos, subn int) error {
	p, err := o.sub("ReplaceSub", subpos, subn)
	if err != nil {
		return err
	}
	return s.ReplaceBytes(pos, n, p)
}

// ReplaceFill replaces n bytes starting at pos with count copies of c.
func (s *String) ReplaceFill(pos, n, count int, c byte) error {
	n, err := s.resolve("ReplaceFill", pos, n)
	if err != nil {
		return err
	}
	return s.spliceFill("ReplaceFill", pos, n, count, c)
}

// Substr returns a new String holding n bytes starting at pos. n may be NPos.
func (s *String) Substr(pos, n int) (*String, error) {
	p, err := s.sub("Substr", pos, n)
	if err != nil {
		return nil, err
	}
	d := New(WithPolicy(s.buf.Policy()))
	d.AppendBytes(p)
	return d, nil
}

// Resize sets the length to n. New bytes are zero.
func (s *String) Resize(n int) error {
	return s.ResizeFill(n, 0)
}

// ResizeFill sets the length to n, filling new bytes with c.
func (s *String) ResizeFill(n int, c byte) error {
	length := s.buf.Len()
	switch {
	case n < 0 || n > MaxLen:
		return errOutOfRange("Resize", n, NPos, MaxLen)
	case n < length:
		s.buf.SetLen(n)
		return nil
	case n > length:
		return s.spliceFill("Resize", length, 0, n-length, c)
	}
	return nil
}

// Reserve requests room for n bytes.
//
// Growing reallocates to exactly n. Asking for less than the capacity is a
// shrink hint: when more than half the capacity is unused, the capacity
// drops to the larger of n and half of itself. The length never changes.
func (s *String) Reserve(n int) error {
	if n < 0 || n > MaxLen {
		return errOutOfRange("Reserve", n, NPos, MaxLen)
	}
	capacity := s.buf.Cap()
	switch {
	case n > capacity:
		s.buf.Resize(n)
	case n < capacity && capacity/2 > s.buf.Len():
		s.buf.Shrink(max(n, capacity/2))
	}
	return nil
}

// ShrinkToFit reduces the capacity to the length. An empty String releases
// its array, leaving the capacity at zero.
func (s *String) ShrinkToFit() {
	s.buf.Shrink(s.buf.Len())
}
