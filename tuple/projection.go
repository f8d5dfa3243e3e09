package tuple

import "reflect"

func project[X, T any](tuples []X, column func(X) T) []T {
	result := make([]T, 0, len(tuples))
	for _, t := range tuples {
		result = append(result, column(t))
	}
	return result
}

// Project extracts the value at index from every tuple, keeping input order.
func Project(tuples []Tuple, index int) ([]any, error) {
	result := make([]any, 0, len(tuples))
	for _, t := range tuples {
		v, err := t.Get(index)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

// ProjectAs is Project with every value asserted to T. A nil value
// projects to the zero T.
func ProjectAs[T any](tuples []Tuple, index int) ([]T, error) {
	values, err := Project(tuples, index)
	if err != nil {
		return nil, err
	}

	result := make([]T, 0, len(values))
	for _, v := range values {
		if v == nil {
			var zero T
			result = append(result, zero)
			continue
		}
		typed, ok := v.(T)
		if !ok {
			return nil, &TypeError{
				Index:    index,
				Expected: typeOf[T](),
				Actual:   reflect.TypeOf(v),
			}
		}
		result = append(result, typed)
	}
	return result, nil
}
