package strbuf

// cursor is the state shared by every iterator flavour: the owning String,
// the generation it was issued under, and an offset. The length is never
// copied; it is read from the owner on every use, so truncation and growth
// within the same array are observed directly.
type cursor struct {
	owner *String
	gen   uint64
	off   int
	err   error
}

func newCursor(s *String, off int) cursor {
	return cursor{owner: s, gen: s.buf.Gen(), off: off}
}

func (c *cursor) live() bool {
	return c.owner != nil && c.gen == c.owner.buf.Gen()
}

func (c *cursor) check(op string) error {
	if c.owner == nil {
		return errIterator(op, c.off, ErrUnpositioned)
	}
	if c.gen != c.owner.buf.Gen() {
		return errIterator(op, c.off, ErrStaleIterator)
	}
	return nil
}

func (c *cursor) fail(err error) bool {
	c.err = err
	return false
}

func (c *cursor) length() int {
	return c.owner.buf.Len()
}

// Valid returns true if positioned at a byte below the length.
func (c *cursor) Valid() bool {
	return c.err == nil && c.live() && c.off >= 0 && c.off < c.length()
}

// Error returns the error recorded by the last failed move, or nil.
func (c *cursor) Error() error {
	return c.err
}

// Offset returns the current position.
func (c *cursor) Offset() int {
	return c.off
}

// Byte returns the current byte, or 0 when not Valid.
func (c *cursor) Byte() byte {
	if !c.Valid() {
		return 0
	}
	return c.owner.buf.At(c.off)
}

// Get returns the current byte, or an error when the cursor is stale or not
// dereferenceable.
func (c *cursor) Get() (byte, error) {
	return c.at("Get", c.off)
}

// At returns the byte k positions after the current one.
func (c *cursor) At(k int) (byte, error) {
	return c.at("At", c.off+k)
}

func (c *cursor) at(op string, i int) (byte, error) {
	if err := c.check(op); err != nil {
		return 0, err
	}
	if n := c.length(); i < 0 || i >= n {
		return 0, errOutOfRange(op, i, NPos, n)
	}
	return c.owner.buf.At(i), nil
}

func (c *cursor) set(op string, i int, b byte) error {
	if err := c.check(op); err != nil {
		return err
	}
	if n := c.length(); i < 0 || i >= n {
		return errOutOfRange(op, i, NPos, n)
	}
	c.owner.buf.Set(i, b)
	return nil
}

// Next moves one byte forward. Stepping onto the end position is allowed;
// stepping past it fails and leaves the cursor where it was.
func (c *cursor) Next() bool {
	if err := c.check("Next"); err != nil {
		return c.fail(err)
	}
	n := c.length()
	if c.off >= n {
		return c.fail(errOutOfRange("Next", c.off+1, NPos, n))
	}
	c.off++
	c.err = nil
	return c.off < n
}

// Prev moves one byte backward. Stepping below zero fails.
func (c *cursor) Prev() bool {
	if err := c.check("Prev"); err != nil {
		return c.fail(err)
	}
	n := c.length()
	if c.off <= 0 {
		return c.fail(errOutOfRange("Prev", c.off-1, NPos, n))
	}
	c.off--
	c.err = nil
	return c.off < n
}

// SeekFirst moves to offset 0. Seeking re-acquires the owner's current
// generation, so it also revives a stale cursor.
func (c *cursor) SeekFirst() bool {
	if c.owner == nil {
		return c.fail(errIterator("SeekFirst", c.off, ErrUnpositioned))
	}
	c.gen, c.err = c.owner.buf.Gen(), nil
	c.off = 0
	return c.length() > 0
}

// SeekLast moves to the last byte, or to offset 0 when empty.
func (c *cursor) SeekLast() bool {
	if c.owner == nil {
		return c.fail(errIterator("SeekLast", c.off, ErrUnpositioned))
	}
	c.gen, c.err = c.owner.buf.Gen(), nil
	n := c.length()
	c.off = max(n-1, 0)
	return n > 0
}

// add returns a copy moved by k, checked against [0, length].
func (c *cursor) add(op string, k int) (cursor, error) {
	if err := c.check(op); err != nil {
		return cursor{}, err
	}
	off := c.off + k
	if n := c.length(); off < 0 || off > n {
		return cursor{}, errOutOfRange(op, off, NPos, n)
	}
	r := *c
	r.off, r.err = off, nil
	return r, nil
}

func (c *cursor) equal(o *cursor) bool {
	return c.owner == o.owner && c.gen == o.gen && c.off == o.off
}

// rcursor walks backwards by composing a forward cursor that sits one byte
// past the current position: the reverse begin wraps the forward end and the
// reverse end wraps the forward begin.
type rcursor struct {
	base cursor
}

// Valid returns true if positioned at a byte.
func (r *rcursor) Valid() bool {
	b := &r.base
	return b.err == nil && b.live() && b.off >= 1 && b.off <= b.length()
}

// Error returns the error recorded by the last failed move, or nil.
func (r *rcursor) Error() error {
	return r.base.err
}

// Offset returns the current position; -1 past the first byte.
func (r *rcursor) Offset() int {
	return r.base.off - 1
}

// Byte returns the current byte, or 0 when not Valid.
func (r *rcursor) Byte() byte {
	if !r.Valid() {
		return 0
	}
	return r.base.owner.buf.At(r.base.off - 1)
}

// Get returns the current byte, or an error when not dereferenceable.
func (r *rcursor) Get() (byte, error) {
	return r.base.at("Get", r.base.off-1)
}

// At returns the byte k positions further along the reverse direction.
func (r *rcursor) At(k int) (byte, error) {
	return r.base.at("At", r.base.off-1-k)
}

// Next moves one byte towards the front.
func (r *rcursor) Next() bool {
	b := &r.base
	if err := b.check("Next"); err != nil {
		return b.fail(err)
	}
	n := b.length()
	if b.off <= 0 {
		return b.fail(errOutOfRange("Next", b.off-2, NPos, n))
	}
	b.off--
	b.err = nil
	return b.off >= 1 && b.off <= n
}

// Prev moves one byte towards the back.
func (r *rcursor) Prev() bool {
	b := &r.base
	if err := b.check("Prev"); err != nil {
		return b.fail(err)
	}
	n := b.length()
	if b.off >= n {
		return b.fail(errOutOfRange("Prev", b.off, NPos, n))
	}
	b.off++
	b.err = nil
	return true
}

// SeekFirst moves to the last byte of the String, where reverse travel starts.
func (r *rcursor) SeekFirst() bool {
	b := &r.base
	if b.owner == nil {
		return b.fail(errIterator("SeekFirst", b.off-1, ErrUnpositioned))
	}
	b.gen, b.err = b.owner.buf.Gen(), nil
	b.off = b.length()
	return b.off > 0
}

// SeekLast moves to the first byte of the String.
func (r *rcursor) SeekLast() bool {
	b := &r.base
	if b.owner == nil {
		return b.fail(errIterator("SeekLast", b.off-1, ErrUnpositioned))
	}
	b.gen, b.err = b.owner.buf.Gen(), nil
	n := b.length()
	b.off = min(n, 1)
	return n > 0
}
