package tuple

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrTypeMismatch    = errors.New("type mismatch")
)

type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index must be between 0 and %d, got %d", e.Size-1, e.Index)
}

func (e *IndexError) Unwrap() error {
	return ErrInvalidArgument
}

func indexError(index int, size int) error {
	return &IndexError{Index: index, Size: size}
}

type ArityError struct {
	Arity int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("no tuple type of arity %d, must be between 2 and 4", e.Arity)
}

func (e *ArityError) Unwrap() error {
	return ErrInvalidArgument
}

// TypeError reports a projected value that is not of the requested type.
type TypeError struct {
	Index    int
	Expected reflect.Type
	Actual   reflect.Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("value at index %d is %v, not %v", e.Index, e.Actual, e.Expected)
}

func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}

func typeOf[T any]() reflect.Type {
	var tp *T
	return reflect.TypeOf(tp).Elem()
}
