package elf32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorReads(t *testing.T) {
	c := newCursor([]byte{0x01, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12, 0xff}, 0)

	b, err := c.u8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), b)

	u16, err := c.u16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), u16)

	u32, err := c.u32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), u32)

	require.NoError(t, c.skip(1))
	assert.Equal(t, 8, c.off)
}

func TestCursorFailedReadKeepsOffset(t *testing.T) {
	c := newCursor([]byte{1, 2, 3}, 0)
	require.NoError(t, c.skip(2))

	_, err := c.u32()
	var readErr *SliceReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, 2, readErr.Start)
	assert.Equal(t, 6, readErr.End)
	// The offset must not move on failure, so a smaller read still works.
	assert.Equal(t, 2, c.off)

	b, err := c.u8()
	require.NoError(t, err)
	assert.Equal(t, uint8(3), b)
}

func TestCursorAtOffset(t *testing.T) {
	c := newCursor([]byte{0, 0, 0, 0xaa}, 3)
	b, err := c.u8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xaa), b)

	_, err = c.u8()
	var readErr *SliceReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, 4, readErr.Start)
	assert.Equal(t, 5, readErr.End)
}

func TestCursorOffsetPastEnd(t *testing.T) {
	// A cursor positioned past the buffer (bogus program header offset)
	// fails on the first read instead of panicking.
	c := newCursor(make([]byte, 8), 100)
	_, err := c.u32()
	var readErr *SliceReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, 100, readErr.Start)
	assert.Equal(t, 104, readErr.End)
}
