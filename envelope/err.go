package envelope

import (
	"errors"

	"github.com/ezrec/moo/translate"
)

var f = translate.From

var (
	ErrCorrupt = errors.New(f("corrupt envelope"))
)

// ErrEnvelope reports a compressed stream that could not be inflated.
type ErrEnvelope struct {
	Kind Kind
	Err  error
}

func (err *ErrEnvelope) Error() string {
	return f("%v envelope: %v", err.Kind, err.Err)
}

func (err *ErrEnvelope) Unwrap() []error {
	return []error{ErrCorrupt, err.Err}
}
