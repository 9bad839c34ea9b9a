package elf32

import "encoding/binary"

// cursor is a sequential little-endian reader over an immutable byte
// buffer. A read either advances the offset by exactly the field width
// or fails without moving it.
type cursor struct {
	buf []byte
	off int
}

func newCursor(buf []byte, off int) *cursor {
	return &cursor{buf: buf, off: off}
}

func (c *cursor) bytes(n int) ([]byte, error) {
	start, end := c.off, c.off+n
	// start can go negative when a declared u32 offset is narrowed to a
	// 32-bit host int; treat that the same as running past the end.
	if start < 0 || end < start || end > len(c.buf) {
		return nil, &SliceReadError{Start: start, End: end}
	}
	c.off = end
	return c.buf[start:end], nil
}

func (c *cursor) skip(n int) error {
	_, err := c.bytes(n)
	return err
}

func (c *cursor) u8() (uint8, error) {
	b, err := c.bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) u16() (uint16, error) {
	b, err := c.bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) u32() (uint32, error) {
	b, err := c.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}
