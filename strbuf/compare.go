package strbuf

import "bytes"

// Compare orders s against o and returns -1, 0 or +1.
//
// Length decides first, and the shorter String sorts greater. Only Strings of
// equal length are compared byte by byte. This is not lexicographic order;
// use bytes.Compare on Bytes for that.
func (s *String) Compare(o *String) int {
	switch a, b := s.buf.Len(), o.buf.Len(); {
	case a < b:
		return 1
	case a > b:
		return -1
	}
	return bytes.Compare(s.buf.Bytes(), o.buf.Bytes())
}

// Compare is the package-level form of (*String).Compare, usable with slices.SortFunc.
func Compare(a, b *String) int {
	return a.Compare(b)
}

// Equal reports whether s and o hold the same bytes.
func (s *String) Equal(o *String) bool {
	return bytes.Equal(s.buf.Bytes(), o.buf.Bytes())
}

// EqualString reports whether s holds exactly the bytes of str.
func (s *String) EqualString(str string) bool {
	return string(s.buf.Bytes()) == str
}
