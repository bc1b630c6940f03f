package chunk

// Header is a framed chunk: its tag, declared length, and the body bounds.
type Header struct {
	Tag    Tag
	Length uint32
	Start  int // first body byte
	End    int // Start + Length
}

// ReadHeader frames the next chunk. The body is not interpreted. A chunk
// whose declared end lies past the buffer fails with ErrOutOfBounds.
func (cur *Cursor) ReadHeader() (h Header, err error) {
	tag, err := cur.ReadTag()
	if err != nil {
		return
	}

	length, err := cur.ReadU32()
	if err != nil {
		return
	}

	h = Header{
		Tag:    tag,
		Length: length,
		Start:  cur.offset,
		End:    cur.offset + int(length),
	}

	if uint64(length) > uint64(cur.Remaining()) {
		err = &ErrRange{Offset: h.Start, Want: int(length), Have: cur.Remaining()}
		return
	}

	return
}

// Enter interprets the body of h with fn, then moves the cursor to h.End
// whatever fn consumed. Consuming past h.End fails with ErrMisframed.
//
// This is the only place the offset moves other than by a read.
func (cur *Cursor) Enter(h Header, fn func() error) (err error) {
	if fn != nil {
		err = fn()
		if err != nil {
			return
		}
	}

	if cur.offset > h.End {
		err = &ErrFrame{Tag: h.Tag, Offset: cur.offset, End: h.End}
		return
	}

	cur.offset = h.End

	return
}

// Skip moves past the body of h without interpreting it.
func (cur *Cursor) Skip(h Header) error {
	return cur.Enter(h, nil)
}

// Walk frames sub-chunks until the cursor reaches end, entering each with
// fn. A sub-chunk extending past end fails with ErrMisframed.
func (cur *Cursor) Walk(end int, fn func(h Header) error) (err error) {
	for cur.offset < end {
		if end-cur.offset < HEADER_SIZE {
			err = &ErrFrame{Offset: cur.offset + HEADER_SIZE, End: end}
			return
		}

		var h Header
		h, err = cur.ReadHeader()
		if err != nil {
			return
		}

		if h.End > end {
			err = &ErrFrame{Tag: h.Tag, Offset: h.End, End: end}
			return
		}

		err = cur.Enter(h, func() error { return fn(h) })
		if err != nil {
			return
		}
	}

	if cur.offset > end {
		err = &ErrFrame{Offset: cur.offset, End: end}
	}

	return
}

// Body returns a cursor limited to the body of h.
func (cur *Cursor) Body(h Header) *Cursor {
	return NewCursor(cur.data[h.Start:h.End:h.End])
}
