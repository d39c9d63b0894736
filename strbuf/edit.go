package strbuf

// span resolves [first, last) to its String, start and length.
func span(op string, first, last ConstIter) (*String, int, int, error) {
	if err := first.check(op); err != nil {
		return nil, 0, 0, err
	}
	if err := last.check(op); err != nil {
		return nil, 0, 0, err
	}
	if first.owner != last.owner {
		return nil, 0, 0, errIterator(op, first.off, ErrForeignIterator)
	}
	if first.off > last.off {
		return nil, 0, 0, errInvalidRange(op, first.off, last.off)
	}
	if n := first.length(); first.off < 0 || last.off > n {
		return nil, 0, 0, errOutOfRange(op, first.off, last.off-first.off, n)
	}
	return first.owner, first.off, last.off - first.off, nil
}

// rangeBytes returns the bytes in [first, last) without copying.
func rangeBytes(op string, first, last ConstIter) ([]byte, error) {
	o, pos, n, err := span(op, first, last)
	if err != nil {
		return nil, err
	}
	return o.buf.Bytes()[pos : pos+n], nil
}

// own resolves a cursor of s to an offset in [0, Len].
func (s *String) own(op string, c *cursor) (int, error) {
	if err := c.check(op); err != nil {
		return 0, err
	}
	if c.owner != s {
		return 0, errIterator(op, c.off, ErrForeignIterator)
	}
	if n := s.buf.Len(); c.off < 0 || c.off > n {
		return 0, errOutOfRange(op, c.off, NPos, n)
	}
	return c.off, nil
}

// ownRange resolves a range of s to a position and length.
func (s *String) ownRange(op string, first, last ConstIter) (int, int, error) {
	o, pos, n, err := span(op, first, last)
	if err != nil {
		return 0, 0, err
	}
	if o != s {
		return 0, 0, errIterator(op, pos, ErrForeignIterator)
	}
	return pos, n, nil
}

// AppendRange appends the bytes in [first, last), which may belong to any
// String, s included.
func (s *String) AppendRange(first, last ConstIter) error {
	p, err := rangeBytes("AppendRange", first, last)
	if err != nil {
		return err
	}
	return s.splice("AppendRange", s.buf.Len(), 0, p)
}

// InsertAt inserts c before the byte at it and returns a cursor to the
// inserted byte, issued under the current generation.
func (s *String) InsertAt(it ConstIter, c byte) (Iter, error) {
	return s.InsertFillAt(it, 1, c)
}

// InsertFillAt inserts n copies of c before it and returns a cursor to the
// first inserted byte.
func (s *String) InsertFillAt(it ConstIter, n int, c byte) (Iter, error) {
	pos, err := s.own("InsertAt", &it.cursor)
	if err != nil {
		return Iter{}, err
	}
	if err = s.spliceFill("InsertAt", pos, 0, n, c); err != nil {
		return Iter{}, err
	}
	return Iter{newCursor(s, pos)}, nil
}

// InsertRangeAt inserts the bytes in [first, last) before it and returns a
// cursor to the first inserted byte.
func (s *String) InsertRangeAt(it, first, last ConstIter) (Iter, error) {
	pos, err := s.own("InsertRangeAt", &it.cursor)
	if err != nil {
		return Iter{}, err
	}
	p, err := rangeBytes("InsertRangeAt", first, last)
	if err != nil {
		return Iter{}, err
	}
	if err = s.splice("InsertRangeAt", pos, 0, p); err != nil {
		return Iter{}, err
	}
	return Iter{newCursor(s, pos)}, nil
}

// EraseAt removes the byte at it and returns a cursor to the byte that
// followed it.
func (s *String) EraseAt(it ConstIter) (Iter, error) {
	pos, err := s.own("EraseAt", &it.cursor)
	if err != nil {
		return Iter{}, err
	}
	if pos == s.buf.Len() {
		return Iter{}, errOutOfRange("EraseAt", pos, 1, pos)
	}
	if err = s.gap("EraseAt", pos, 1, 0); err != nil {
		return Iter{}, err
	}
	return Iter{newCursor(s, pos)}, nil
}

// EraseRange removes the bytes in [first, last) and returns a cursor to the
// byte that followed them.
func (s *String) EraseRange(first, last ConstIter) (Iter, error) {
	pos, n, err := s.ownRange("EraseRange", first, last)
	if err != nil {
		return Iter{}, err
	}
	if err = s.gap("EraseRange", pos, n, 0); err != nil {
		return Iter{}, err
	}
	return Iter{newCursor(s, pos)}, nil
}

// ReplaceRange replaces the bytes in [first, last) with str.
func (s *String) ReplaceRange(first, last ConstIter, str string) error {
	pos, n, err := s.ownRange("ReplaceRange", first, last)
	if err != nil {
		return err
	}
	return s.splice("ReplaceRange", pos, n, s2b(str))
}

// ReplaceRangeFill replaces the bytes in [first, last) with count copies of c.
func (s *String) ReplaceRangeFill(first, last ConstIter, count int, c byte) error {
	pos, n, err := s.ownRange("ReplaceRangeFill", first, last)
	if err != nil {
		return err
	}
	return s.spliceFill("ReplaceRangeFill", pos, n, count, c)
}

// ReplaceRangeWith replaces the bytes in [first, last) with the bytes in
// [from, to), which may belong to any String, s included.
func (s *String) ReplaceRangeWith(first, last, from, to ConstIter) error {
	pos, n, err := s.ownRange("ReplaceRangeWith", first, last)
	if err != nil {
		return err
	}
	p, err := rangeBytes("ReplaceRangeWith", from, to)
	if err != nil {
		return err
	}
	return s.splice("ReplaceRangeWith", pos, n, p)
}
