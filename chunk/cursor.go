// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package chunk

// Cursor is a bounds checked little-endian reader over an in-memory buffer.
// The buffer is never modified; the offset is the only mutable state.
type Cursor struct {
	data   []byte
	offset int
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset is the current read position.
func (cur *Cursor) Offset() int {
	return cur.offset
}

// Len is the length of the underlying buffer.
func (cur *Cursor) Len() int {
	return len(cur.data)
}

// Remaining is the number of unread bytes.
func (cur *Cursor) Remaining() int {
	return len(cur.data) - cur.offset
}

func (cur *Cursor) claim(width int) (start int, err error) {
	if width < 0 || width > cur.Remaining() {
		err = &ErrRange{Offset: cur.offset, Want: width, Have: cur.Remaining()}
		return
	}

	start = cur.offset
	cur.offset += width

	return
}

// Capacity bounds a preallocation for count records of size bytes by the
// bytes remaining. The count comes from the file and is never trusted.
func (cur *Cursor) Capacity(count uint32, size int) int {
	if size <= 0 {
		size = 1
	}
	return int(min(uint64(count), uint64(cur.Remaining()/size)))
}

// ReadUint assembles width bytes (1 to 8) into an unsigned integer, least
// significant byte first.
func (cur *Cursor) ReadUint(width int) (value uint64, err error) {
	start, err := cur.claim(width)
	if err != nil {
		return
	}

	for n := width - 1; n >= 0; n-- {
		value = (value << 8) | uint64(cur.data[start+n])
	}

	return
}

// ReadU8 reads one byte.
func (cur *Cursor) ReadU8() (value uint8, err error) {
	v, err := cur.ReadUint(1)
	value = uint8(v)
	return
}

// ReadU16 reads a little-endian 16-bit value.
func (cur *Cursor) ReadU16() (value uint16, err error) {
	v, err := cur.ReadUint(2)
	value = uint16(v)
	return
}

// ReadU32 reads a little-endian 32-bit value.
func (cur *Cursor) ReadU32() (value uint32, err error) {
	v, err := cur.ReadUint(4)
	value = uint32(v)
	return
}

// ReadU64 reads a little-endian 64-bit value.
func (cur *Cursor) ReadU64() (value uint64, err error) {
	return cur.ReadUint(8)
}

// ReadBytes returns a copy of the next count bytes.
func (cur *Cursor) ReadBytes(count int) (value []byte, err error) {
	start, err := cur.claim(count)
	if err != nil {
		return
	}

	value = make([]byte, count)
	copy(value, cur.data[start:cur.offset])

	return
}

// ReadSized reads a u32 length followed by that many bytes.
func (cur *Cursor) ReadSized() (value []byte, err error) {
	length, err := cur.ReadU32()
	if err != nil {
		return
	}

	if uint64(length) > uint64(cur.Remaining()) {
		err = &ErrRange{Offset: cur.offset, Want: int(length), Have: cur.Remaining()}
		return
	}

	return cur.ReadBytes(int(length))
}

// ReadTag reads a four character chunk tag.
func (cur *Cursor) ReadTag() (tag Tag, err error) {
	start, err := cur.claim(TAG_SIZE)
	if err != nil {
		return
	}

	tag = Tag(cur.data[start:cur.offset])

	return
}
