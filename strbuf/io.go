package strbuf

import "io"

var (
	_ io.Writer       = (*String)(nil)
	_ io.ByteWriter   = (*String)(nil)
	_ io.StringWriter = (*String)(nil)
	_ io.WriterTo     = (*String)(nil)
	_ io.ReaderFrom   = (*String)(nil)
	_ io.ReaderAt     = (*String)(nil)
)

const readChunk = 4096

// Write appends p. It always succeeds.
func (s *String) Write(p []byte) (int, error) {
	s.AppendBytes(p)
	return len(p), nil
}

// WriteString appends str. It always succeeds.
func (s *String) WriteString(str string) (int, error) {
	s.AppendBytes(s2b(str))
	return len(str), nil
}

// WriteByte appends c. It always succeeds.
func (s *String) WriteByte(c byte) error {
	s.PushBack(c)
	return nil
}

// WriteTo writes the content to w.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.buf.Bytes())
	return int64(n), err
}

// ReadFrom reads data from r until EOF and replaces the entire content.
// It implements io.ReaderFrom interface.
//
// Any existing content is discarded; the capacity is kept.
//
// ReadFrom returns the number of bytes read and any error encountered,
// except that io.EOF is not returned as an error.
func (s *String) ReadFrom(r io.Reader) (n int64, err error) {
	s.Clear()
	buf := make([]byte, readChunk)
	for {
		c, err := r.Read(buf)
		if c > 0 {
			n += int64(c)
			s.AppendBytes(buf[:c])
		}
		if err != nil {
			if err == io.EOF {
				err = nil
			}
			return n, err
		}
	}
}

// ReadAt reads len(p) bytes into p starting at byte offset off.
// It implements io.ReaderAt interface.
func (s *String) ReadAt(p []byte, off int64) (n int, err error) {
	data := s.buf.Bytes()
	if off < 0 {
		return 0, errOutOfRange("ReadAt", int(off), len(p), len(data))
	}
	if len(p) == 0 {
		return 0, nil
	}
	if off >= int64(len(data)) {
		return 0, io.EOF
	}
	n = copy(p, data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
