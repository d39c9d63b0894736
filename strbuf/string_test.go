package strbuf

import (
	"testing"

	"github.com/dacapoday/gstr/growth"
	"github.com/stretchr/testify/require"
)

// requireInvariants checks the length/capacity/terminator contract.
func requireInvariants(t *testing.T, s *String) {
	t.Helper()
	require.LessOrEqual(t, s.Len(), s.Cap())
	c := s.CBytes()
	require.Len(t, c, s.Len()+1)
	require.Zero(t, c[s.Len()])
}

func TestZeroValue(t *testing.T) {
	var s String
	require.Zero(t, s.Len())
	require.Zero(t, s.Cap())
	require.True(t, s.IsEmpty())
	require.Nil(t, s.Bytes())
	require.Equal(t, []byte{0}, s.CBytes())
	require.Equal(t, "", s.String())
	require.Equal(t, growth.Default, s.Policy())
	requireInvariants(t, &s)
}

func TestFrom(t *testing.T) {
	s := From("Hello")
	require.Equal(t, 5, s.Len())
	require.Equal(t, "Hello", s.String())
	require.GreaterOrEqual(t, s.Cap(), 5)
	require.Equal(t, []byte("Hello\x00"), s.CBytes())
	requireInvariants(t, s)

	require.True(t, From("").IsEmpty())
	require.True(t, FromBytes(nil).IsEmpty())
	require.Equal(t, "abc", FromBytes([]byte("abc")).String())
}

func TestFromPrefix(t *testing.T) {
	s, err := FromPrefix([]byte("hello"), 3)
	require.NoError(t, err)
	require.Equal(t, "hel", s.String())

	s, err = FromPrefix([]byte("hello"), NPos)
	require.NoError(t, err)
	require.Equal(t, "hello", s.String())

	_, err = FromPrefix([]byte("hello"), 6)
	require.ErrorIs(t, err, ErrOutOfRange)
	var rerr *RangeError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, "FromPrefix", rerr.Op)
	require.Equal(t, 6, rerr.Len)
	require.Equal(t, 5, rerr.Limit)

	_, err = FromPrefix(nil, 0)
	require.ErrorIs(t, err, ErrNilSource)
}

func TestRepeat(t *testing.T) {
	s, err := Repeat(3, 'x')
	require.NoError(t, err)
	require.Equal(t, "xxx", s.String())

	s, err = Repeat(0, 'x')
	require.NoError(t, err)
	require.True(t, s.IsEmpty())

	_, err = Repeat(-1, 'x')
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestNewOptions(t *testing.T) {
	s := New(WithCapacity(64), WithPolicy(growth.Policy{Stride: 8, Floor: 4}))
	require.Equal(t, 64, s.Cap())
	require.Zero(t, s.Len())
	require.Equal(t, 8, s.Stride())

	s = New(WithPolicy(growth.Policy{Stride: 8}))
	s.PushBack('a')
	require.Equal(t, 8, s.Cap())
	require.Equal(t, 9, s.Stride())
}

func TestCloneIsIndependent(t *testing.T) {
	s := From("original")
	c := s.Clone()
	require.True(t, c.Equal(s))

	c.Append(" copy")
	require.Equal(t, "original", s.String())
	require.Equal(t, "original copy", c.String())
}

func TestAssign(t *testing.T) {
	s := From("a much longer string than needed")
	capacity := s.Cap()
	gen := s.Generation()

	s.Assign(From("short"))
	require.Equal(t, "short", s.String())
	require.Equal(t, capacity, s.Cap(), "assign reuses capacity")
	require.Equal(t, gen, s.Generation())
	requireInvariants(t, s)

	s.Assign(s)
	require.Equal(t, "short", s.String())
}

func TestMove(t *testing.T) {
	s := From("payload")
	it := s.Begin()

	d := s.Move()
	require.Equal(t, "payload", d.String())
	require.Zero(t, s.Len())
	require.Zero(t, s.Cap())
	require.Nil(t, s.Bytes())

	_, err := it.Get()
	require.ErrorIs(t, err, ErrStaleIterator)

	// the moved-from String is still usable
	s.Append("again")
	require.Equal(t, "again", s.String())
}

func TestTake(t *testing.T) {
	s := From("left")
	o := From("right")
	s.Take(o)
	require.Equal(t, "right", s.String())
	require.True(t, o.IsEmpty())
	require.Zero(t, o.Cap())

	s.Take(s)
	require.Equal(t, "right", s.String())
}

func TestSwap(t *testing.T) {
	a := From("first")
	b := From("second string")
	ia, ib := a.Begin(), b.Begin()

	a.Swap(b)
	require.Equal(t, "second string", a.String())
	require.Equal(t, "first", b.String())
	require.False(t, ia.Valid())
	require.False(t, ib.Valid())
	requireInvariants(t, a)
	requireInvariants(t, b)
}

func TestReset(t *testing.T) {
	s := From("something")
	s.Reset()
	require.Zero(t, s.Len())
	require.Zero(t, s.Cap())
	s.Append("more")
	require.Equal(t, "more", s.String())
}

func TestElementAccess(t *testing.T) {
	s := From("abc")

	c, err := s.At(1)
	require.NoError(t, err)
	require.Equal(t, byte('b'), c)

	_, err = s.At(3)
	require.ErrorIs(t, err, ErrOutOfRange)
	var rerr *RangeError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, 3, rerr.Pos)
	require.Equal(t, 3, rerr.Limit)

	_, err = s.At(-1)
	require.ErrorIs(t, err, ErrOutOfRange)

	require.Equal(t, byte('c'), s.Index(2))
	require.Zero(t, s.Index(3), "unchecked access past the length reads the terminator")

	require.NoError(t, s.SetAt(0, 'A'))
	require.ErrorIs(t, s.SetAt(3, 'x'), ErrOutOfRange)
	require.Equal(t, "Abc", s.String())

	front, err := s.Front()
	require.NoError(t, err)
	require.Equal(t, byte('A'), front)
	back, err := s.Back()
	require.NoError(t, err)
	require.Equal(t, byte('c'), back)

	var e String
	_, err = e.Front()
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = e.Back()
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestCopy(t *testing.T) {
	s := From("Hello, World")
	dst := make([]byte, 5)

	n, err := s.Copy(dst, 7, NPos)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "World", string(dst))

	n, err = s.Copy(dst, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "He", string(dst[:n]))

	_, err = s.Copy(dst, 13, 1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestRangeErrorMessage(t *testing.T) {
	err := From("abc").Insert(9, "x")
	require.EqualError(t, err, "strbuf: Insert: pos 9, len 1, limit 3: out of range")

	_, err = From("abc").At(7)
	require.EqualError(t, err, "strbuf: At: pos 7, limit 3: out of range")
}
