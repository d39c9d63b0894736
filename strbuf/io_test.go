package strbuf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestWriters(t *testing.T) {
	var s String
	n, err := s.Write([]byte("ab"))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = s.WriteString("cd")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	require.NoError(t, s.WriteByte('e'))

	fmt.Fprintf(&s, "-%03d", 7)
	require.Equal(t, "abcde-007", s.String())
}

func TestWriteTo(t *testing.T) {
	s := From("payload")
	var out bytes.Buffer
	n, err := s.WriteTo(&out)
	require.NoError(t, err)
	require.EqualValues(t, 7, n)
	require.Equal(t, "payload", out.String())
}

func TestReadFrom(t *testing.T) {
	s := From("old content")
	data := strings.Repeat("0123456789", 1000)

	n, err := s.ReadFrom(iotest.OneByteReader(strings.NewReader(data[:100])))
	require.NoError(t, err)
	require.EqualValues(t, 100, n)
	require.Equal(t, data[:100], s.String())

	n, err = s.ReadFrom(strings.NewReader(data))
	require.NoError(t, err)
	require.EqualValues(t, len(data), n)
	require.Equal(t, data, s.String())
	requireInvariants(t, s)
}

func TestReadFromError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("partial"), iotest.ErrReader(boom))

	var s String
	n, err := s.ReadFrom(r)
	require.ErrorIs(t, err, boom)
	require.EqualValues(t, 7, n)
	require.Equal(t, "partial", s.String())
}

func TestReadAt(t *testing.T) {
	s := From("0123456789")

	p := make([]byte, 4)
	n, err := s.ReadAt(p, 3)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "3456", string(p))

	n, err = s.ReadAt(p, 8)
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, 2, n)
	require.Equal(t, "89", string(p[:n]))

	n, err = s.ReadAt(p, 10)
	require.ErrorIs(t, err, io.EOF)
	require.Zero(t, n)

	_, err = s.ReadAt(p, -1)
	require.ErrorIs(t, err, ErrOutOfRange)

	n, err = s.ReadAt(nil, 0)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSectionReader(t *testing.T) {
	s := From("header:body")
	got, err := io.ReadAll(io.NewSectionReader(s, 7, 4))
	require.NoError(t, err)
	require.Equal(t, "body", string(got))
}
