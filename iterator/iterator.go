package iterator

import "iter"

// Iterator represents a cursor over the bytes of a buffer.
// The cursor maintains a current offset and can be moved forward or backward;
// reverse cursors walk from the last byte towards the first.
//
// Usage:
//
//	for it.SeekFirst(); it.Valid(); it.Next() {
//	    off, c := it.Offset(), it.Byte()
//	    // process off, c
//	}
//	if err := it.Error(); err != nil {
//	    // handle error
//	}
type Iterator interface {
	// Valid returns true if positioned at a dereferenceable byte.
	// Returns false when not positioned; check Error() to distinguish the cause.
	Valid() bool

	// Error returns the error recorded by the last failed move.
	// Returns nil when not positioned due to normal conditions (boundary reached,
	// empty buffer). Returns non-nil for misuse: moving past a boundary or using
	// a cursor whose buffer has been reallocated.
	Error() error

	// Offset returns the index of the current byte in the buffer.
	// Offsets stay meaningful even when Valid returns false: a forward cursor
	// past the last byte reports the buffer length, a reverse cursor past the
	// first byte reports -1.
	Offset() int

	// Byte returns the byte at the current position.
	// Returns 0 if Valid() returns false.
	Byte() byte

	// Next advances the iterator in its direction of travel.
	// Returns true if the iterator is positioned at a valid byte afterwards.
	// Moving off the last byte is not an error; moving once more is.
	Next() bool

	// Prev moves the iterator against its direction of travel.
	// Returns true if the iterator is positioned at a valid byte afterwards.
	Prev() bool

	// SeekFirst positions the iterator at the first byte in its direction of travel.
	// Returns false if the buffer is empty or the iterator is stale.
	SeekFirst() bool

	// SeekLast positions the iterator at the last byte in its direction of travel.
	// Returns false if the buffer is empty or the iterator is stale.
	SeekLast() bool
}

// All returns a sequence of (offset, byte) pairs, starting from SeekFirst.
// The iterator is left where the sequence stopped; check it.Error() afterwards.
func All(it Iterator) iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for ok := it.SeekFirst(); ok; ok = it.Next() {
			if !yield(it.Offset(), it.Byte()) {
				return
			}
		}
	}
}

// Collect appends every byte from SeekFirst onwards to dst.
func Collect(dst []byte, it Iterator) ([]byte, error) {
	for _, c := range All(it) {
		dst = append(dst, c)
	}
	return dst, it.Error()
}

// Count returns how many bytes remain from the current position onwards,
// leaving the iterator one past the end.
func Count(it Iterator) (n int, err error) {
	for ok := it.Valid(); ok; ok = it.Next() {
		n++
	}
	return n, it.Error()
}
