package iterator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errPastEnd = errors.New("past end")

// sliceIter walks a byte slice, forward or backward.
type sliceIter struct {
	data    []byte
	off     int
	reverse bool
	err     error
}

var _ Iterator = (*sliceIter)(nil)

func (it *sliceIter) Valid() bool  { return it.err == nil && it.off >= 0 && it.off < len(it.data) }
func (it *sliceIter) Error() error { return it.err }
func (it *sliceIter) Offset() int  { return it.off }

func (it *sliceIter) Byte() byte {
	if !it.Valid() {
		return 0
	}
	return it.data[it.off]
}

func (it *sliceIter) step(d int) bool {
	next := it.off + d
	if next < -1 || next > len(it.data) {
		it.err = errPastEnd
		return false
	}
	it.off = next
	return it.Valid()
}

func (it *sliceIter) Next() bool {
	if it.reverse {
		return it.step(-1)
	}
	return it.step(1)
}

func (it *sliceIter) Prev() bool {
	if it.reverse {
		return it.step(1)
	}
	return it.step(-1)
}

func (it *sliceIter) SeekFirst() bool {
	it.err = nil
	if it.reverse {
		it.off = len(it.data) - 1
	} else {
		it.off = 0
	}
	return it.Valid()
}

func (it *sliceIter) SeekLast() bool {
	it.err = nil
	if it.reverse {
		it.off = 0
	} else {
		it.off = len(it.data) - 1
	}
	return it.Valid()
}

func TestAll(t *testing.T) {
	it := &sliceIter{data: []byte("abc")}
	var offs []int
	var got []byte
	for off, c := range All(it) {
		offs = append(offs, off)
		got = append(got, c)
	}
	require.Equal(t, []int{0, 1, 2}, offs)
	require.Equal(t, []byte("abc"), got)
	require.NoError(t, it.Error())
}

func TestAllReverse(t *testing.T) {
	it := &sliceIter{data: []byte("abc"), reverse: true}
	got, err := Collect(nil, it)
	require.NoError(t, err)
	require.Equal(t, []byte("cba"), got)
}

func TestAllBreak(t *testing.T) {
	it := &sliceIter{data: []byte("abcdef")}
	for off := range All(it) {
		if off == 2 {
			break
		}
	}
	require.Equal(t, 2, it.Offset())
	require.True(t, it.Valid())
}

func TestCollectEmpty(t *testing.T) {
	got, err := Collect([]byte("x"), &sliceIter{})
	require.NoError(t, err)
	require.Equal(t, []byte("x"), got)
}

func TestCount(t *testing.T) {
	it := &sliceIter{data: []byte("hello")}
	it.SeekFirst()
	it.Next()
	n, err := Count(it)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.False(t, it.Valid())
	require.Equal(t, 5, it.Offset())

	// one more step past the end is misuse
	require.False(t, it.Next())
	require.ErrorIs(t, it.Error(), errPastEnd)
}
