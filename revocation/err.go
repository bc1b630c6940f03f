package revocation

import (
	"errors"

	"github.com/ezrec/moo/translate"
)

var f = translate.From

var (
	ErrInvalidEntry = errors.New(f("invalid revocation entry"))
)

// ErrEntry reports a 40 character line that is not a hex hash.
type ErrEntry struct {
	LineNo int
	Line   string
}

func (err *ErrEntry) Error() string {
	return f("line %d '%v' is not a hex hash", err.LineNo, err.Line)
}

func (err *ErrEntry) Unwrap() error {
	return ErrInvalidEntry
}
