package query

import (
	"errors"

	"github.com/ezrec/moo/translate"
)

var f = translate.From

var (
	ErrNoResult = errors.New(f("expression has no result"))
)

// ErrExpression reports an expression that did not compile or evaluate.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("where '%v': %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}
