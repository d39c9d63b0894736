package strbuf

import "bytes"

// Find returns the offset of the first occurrence of needle at or after pos,
// or NPos. A negative pos, NPos included, searches from the start.
// An empty needle matches at pos as long as pos is within the length.
func (s *String) Find(needle string, pos int) int {
	return s.find(s2b(needle), pos)
}

// FindBytes is Find for a byte slice.
func (s *String) FindBytes(needle []byte, pos int) int {
	return s.find(needle, pos)
}

// FindByte returns the offset of the first c at or after pos, or NPos.
func (s *String) FindByte(c byte, pos int) int {
	data := s.buf.Bytes()
	pos = max(pos, 0)
	if pos >= len(data) {
		return NPos
	}
	if i := bytes.IndexByte(data[pos:], c); i >= 0 {
		return pos + i
	}
	return NPos
}

// RFind returns the offset of the last occurrence of needle that starts at or
// before pos, or NPos. NPos as pos searches the whole String.
func (s *String) RFind(needle string, pos int) int {
	return s.rfind(s2b(needle), pos)
}

// RFindBytes is RFind for a byte slice.
func (s *String) RFindBytes(needle []byte, pos int) int {
	return s.rfind(needle, pos)
}

// RFindByte returns the offset of the last c at or before pos, or NPos.
func (s *String) RFindByte(c byte, pos int) int {
	data := s.buf.Bytes()
	if pos < 0 || pos >= len(data) {
		pos = len(data) - 1
	}
	if i := bytes.LastIndexByte(data[:pos+1], c); i >= 0 {
		return i
	}
	return NPos
}

// FindFirstOf returns the offset of the first byte at or after pos that is in set.
func (s *String) FindFirstOf(set string, pos int) int {
	return s.scanForward(s2b(set), pos, true)
}

// FindFirstNotOf returns the offset of the first byte at or after pos that is not in set.
func (s *String) FindFirstNotOf(set string, pos int) int {
	return s.scanForward(s2b(set), pos, false)
}

// FindLastOf returns the offset of the last byte at or before pos that is in set.
// NPos, or any pos past the end, scans from the last byte.
func (s *String) FindLastOf(set string, pos int) int {
	return s.scanBackward(s2b(set), pos, true)
}

// FindLastNotOf returns the offset of the last byte at or before pos that is not in set.
func (s *String) FindLastNotOf(set string, pos int) int {
	return s.scanBackward(s2b(set), pos, false)
}

func (s *String) find(needle []byte, pos int) int {
	data := s.buf.Bytes()
	pos = max(pos, 0)
	if pos > len(data) {
		return NPos
	}
	if i := bytes.Index(data[pos:], needle); i >= 0 {
		return pos + i
	}
	return NPos
}

func (s *String) rfind(needle []byte, pos int) int {
	data := s.buf.Bytes()
	if len(needle) > len(data) {
		return NPos
	}
	start := len(data) - len(needle)
	if pos >= 0 && pos < start {
		start = pos
	}
	if i := bytes.LastIndex(data[:start+len(needle)], needle); i >= 0 {
		return i
	}
	return NPos
}

type byteSet [256]bool

func makeByteSet(set []byte) (t byteSet) {
	for _, c := range set {
		t[c] = true
	}
	return
}

// scanForward returns the first offset from pos whose membership in set equals presence.
func (s *String) scanForward(set []byte, pos int, presence bool) int {
	t := makeByteSet(set)
	data := s.buf.Bytes()
	for i := max(pos, 0); i < len(data); i++ {
		if t[data[i]] == presence {
			return i
		}
	}
	return NPos
}

// scanBackward returns the last offset up to pos whose membership in set equals presence.
func (s *String) scanBackward(set []byte, pos int, presence bool) int {
	t := makeByteSet(set)
	data := s.buf.Bytes()
	if pos < 0 || pos >= len(data) {
		pos = len(data) - 1
	}
	for i := pos; i >= 0; i-- {
		if t[data[i]] == presence {
			return i
		}
	}
	return NPos
}
