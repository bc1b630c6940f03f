package vector

import (
	"errors"

	"github.com/ezrec/moo/cpu"
	"github.com/ezrec/moo/translate"
)

var f = translate.From

var (
	ErrRegisterAbsent = errors.New(f("register absent"))
	ErrHashSyntax     = errors.New(f("hash syntax"))
)

// ErrRegister reports a read of a register slot with no value.
type ErrRegister struct {
	Width cpu.Width
	Slot  int
}

func (err *ErrRegister) Error() string {
	return f("register %v (bit %d) absent", cpu.RegisterName(err.Width, err.Slot), err.Slot)
}

func (err *ErrRegister) Unwrap() error {
	return ErrRegisterAbsent
}

// ErrHash reports a hash string that is not 40 hex digits.
type ErrHash string

func (err ErrHash) Error() string {
	return f("'%v' is not a 40 digit hex hash", string(err))
}

func (err ErrHash) Unwrap() error {
	return ErrHashSyntax
}
