package h

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
)

// Opt holds a value or nothing. Used as a tuple slot, it scans SQL NULL as None.
type Opt[T any] struct {
	value *T
}

func (o Opt[T]) String() string {
	if o.value == nil {
		return "<none>"
	}
	return fmt.Sprintf("%v", *o.value)
}

func Some[T any](v T) Opt[T] {
	return Opt[T]{
		value: &v,
	}
}

func None[T any]() Opt[T] {
	return Opt[T]{}
}

func FromPtr[T any](p *T) Opt[T] {
	return Opt[T]{
		value: p,
	}
}

func (o Opt[T]) IsNone() bool {
	return o.value == nil
}

func (o Opt[T]) IsSome() bool {
	return o.value != nil
}

func (o Opt[T]) Get() (T, bool) {
	if o.IsNone() {
		var zero T
		return zero, false
	}
	return *o.value, true
}

func (o Opt[T]) Expect(msg string) T {
	if o.value == nil {
		panic(fmt.Errorf("tried to unwrap an empty option: %s", msg))
	}
	return *o.value
}

func (o Opt[T]) Unwrap() T {
	if o.value == nil {
		panic(errors.New("tried to unwrap an empty option"))
	}
	return *o.value
}

func (o Opt[T]) UnwrapOr(d T) T {
	if o.value == nil {
		return d
	}
	return *o.value
}

func (o Opt[T]) UnwrapOrEmpty() T {
	if o.value == nil {
		var zero T
		return zero
	}
	return *o.value
}

func (o Opt[T]) IfSome(f func(T)) {
	if o.value == nil {
		return
	}
	f(*o.value)
}

func MapOpt[From any, To any](from Opt[From], m func(From) To) Opt[To] {
	if from.value == nil {
		return Opt[To]{}
	}
	mapped := m(*from.value)
	return Opt[To]{value: &mapped}
}

// Scan converts src the way database/sql scans into a plain T.
func (o *Opt[T]) Scan(src any) error {
	var n sql.Null[T]
	if err := n.Scan(src); err != nil {
		return err
	}
	if n.Valid {
		o.value = &n.V
	} else {
		o.value = nil
	}
	return nil
}

func (o Opt[T]) Value() (driver.Value, error) {
	if o.value == nil {
		return nil, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(*o.value)
}
