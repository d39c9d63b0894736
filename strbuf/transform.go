package strbuf

// Transform replaces every byte c with f(c), in place.
func (s *String) Transform(f func(byte) byte) {
	data := s.buf.Bytes()
	for i, c := range data {
		data[i] = f(c)
	}
}

// ToLower maps ASCII upper-case letters to lower case. Other bytes are kept.
func (s *String) ToLower() {
	s.Transform(lower)
}

// ToUpper maps ASCII lower-case letters to upper case. Other bytes are kept.
func (s *String) ToUpper() {
	s.Transform(upper)
}

// Trim removes leading and trailing ASCII white space without reallocating.
func (s *String) Trim() {
	data := s.buf.Bytes()
	end := len(data)
	for end > 0 && isSpace(data[end-1]) {
		end--
	}
	start := 0
	for start < end && isSpace(data[start]) {
		start++
	}
	if start == 0 && end == len(data) {
		return
	}
	s.buf.Shift(0, start, end-start)
	s.buf.SetLen(end - start)
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
