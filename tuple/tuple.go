package tuple

import (
	"fmt"
	"reflect"
	"strings"
)

// Converter maps the value at the given position to its replacement.
type Converter func(value any, index int) any

// Tuple is the capability shared by every fixed-arity tuple.
//
// Get is untyped: callers know the slot types from context.
type Tuple interface {
	Size() int
	Get(index int) (any, error)
	Convert(fn Converter) Tuple
}

func Equal(a, b Tuple) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Size() != b.Size() {
		return false
	}
	for i := 0; i < a.Size(); i++ {
		va, _ := a.Get(i)
		vb, _ := b.Get(i)
		if !reflect.DeepEqual(va, vb) {
			return false
		}
	}
	return true
}

func Slice(t Tuple) []any {
	values := make([]any, t.Size())
	for i := range values {
		values[i], _ = t.Get(i)
	}
	return values
}

// Of builds an untyped tuple from a value list of length 2, 3 or 4.
func Of(values ...any) (Tuple, error) {
	switch len(values) {
	case 2:
		return NewT2(values[0], values[1]), nil
	case 3:
		return NewT3(values[0], values[1], values[2]), nil
	case 4:
		return NewT4(values[0], values[1], values[2], values[3]), nil
	default:
		return nil, &ArityError{Arity: len(values)}
	}
}

func format(values ...any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
