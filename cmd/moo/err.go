package main

import (
	"errors"

	"github.com/ezrec/moo/translate"
)

var f = translate.From

var (
	ErrNoRevocation = errors.New(f("no revocation list given"))
	ErrRange        = errors.New(f("out of range"))
)

// ErrIndex reports a test position past the end of a container.
type ErrIndex struct {
	Index int
	Len   int
}

func (err *ErrIndex) Error() string {
	return f("test %d: container has %d tests", err.Index, err.Len)
}

func (err *ErrIndex) Unwrap() error {
	return ErrRange
}
