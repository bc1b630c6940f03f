package container

import (
	"errors"

	"github.com/ezrec/moo/chunk"
	"github.com/ezrec/moo/translate"
)

var f = translate.From

var (
	ErrContainer = errors.New(f("invalid container"))
	ErrVersion   = errors.New(f("unsupported version"))
	ErrCpuType   = errors.New(f("unsupported cpu type"))
	ErrNotFound  = errors.New(f("test not found"))
)

// ErrInvalidContainer reports a leading chunk other than "MOO ".
type ErrInvalidContainer struct {
	Tag chunk.Tag
}

func (err *ErrInvalidContainer) Error() string {
	return f("leading chunk '%v' is not '%v'", string(err.Tag), string(chunk.TAG_MOO))
}

func (err *ErrInvalidContainer) Unwrap() error {
	return ErrContainer
}

// ErrUnsupportedVersion names a header version with no known layout.
type ErrUnsupportedVersion struct {
	Major uint8
	Minor uint8
}

func (err *ErrUnsupportedVersion) Error() string {
	return f("unsupported version %d.%d", err.Major, err.Minor)
}

func (err *ErrUnsupportedVersion) Unwrap() error {
	return ErrVersion
}

// ErrUnsupportedCpu names a cpu identifier the header version does not accept.
type ErrUnsupportedCpu struct {
	ID string
}

func (err *ErrUnsupportedCpu) Error() string {
	return f("unsupported cpu type %q", err.ID)
}

func (err *ErrUnsupportedCpu) Unwrap() error {
	return ErrCpuType
}
