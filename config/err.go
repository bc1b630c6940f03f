package config

import (
	"errors"

	"github.com/ezrec/moo/translate"
)

var f = translate.From

var (
	ErrInvalidSetting = errors.New(f("invalid setting"))
)

// ErrConfig reports a configuration file that could not be read or parsed.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("config '%v': %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// ErrSetting names a setting with an unusable value.
type ErrSetting struct {
	Name  string
	Value string
}

func (err *ErrSetting) Error() string {
	return f("%v: invalid value %q", err.Name, err.Value)
}

func (err *ErrSetting) Unwrap() error {
	return ErrInvalidSetting
}
