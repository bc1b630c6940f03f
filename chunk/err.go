package chunk

import (
	"errors"

	"github.com/ezrec/moo/translate"
)

var f = translate.From

var (
	// Stream errors
	ErrOutOfBounds = errors.New(f("read out of bounds"))
	ErrMisframed   = errors.New(f("truncated or misframed chunk"))
)

// ErrRange reports a read that would pass the end of the buffer.
type ErrRange struct {
	Offset int
	Want   int
	Have   int
}

func (err *ErrRange) Error() string {
	return f("offset %d: read of %d bytes, %d available", err.Offset, err.Want, err.Have)
}

func (err *ErrRange) Unwrap() error {
	return ErrOutOfBounds
}

// ErrFrame reports a chunk body that does not fit its parent's bounds.
type ErrFrame struct {
	Tag    Tag
	Offset int
	End    int
}

func (err *ErrFrame) Error() string {
	return f("chunk '%v' reaches offset %d past end %d", string(err.Tag), err.Offset, err.End)
}

func (err *ErrFrame) Unwrap() error {
	return ErrMisframed
}
