package tuple

// T3 holds three values of independent types.
type T3[Ta, Tb, Tc any] struct {
	First  Ta
	Second Tb
	Third  Tc
}

func NewT3[Ta, Tb, Tc any](first Ta, second Tb, third Tc) T3[Ta, Tb, Tc] {
	return T3[Ta, Tb, Tc]{First: first, Second: second, Third: third}
}

func (t T3[Ta, Tb, Tc]) Values() (Ta, Tb, Tc) {
	return t.First, t.Second, t.Third
}

func (t T3[Ta, Tb, Tc]) Size() int {
	return 3
}

func (t T3[Ta, Tb, Tc]) Get(index int) (any, error) {
	switch index {
	case 0:
		return t.First, nil
	case 1:
		return t.Second, nil
	case 2:
		return t.Third, nil
	default:
		return nil, indexError(index, t.Size())
	}
}

// Convert returns a new T3[any, any, any]; t is left as is.
func (t T3[Ta, Tb, Tc]) Convert(fn Converter) Tuple {
	return NewT3(
		fn(t.First, 0),
		fn(t.Second, 1),
		fn(t.Third, 2),
	)
}

func (t T3[Ta, Tb, Tc]) String() string {
	return format(t.First, t.Second, t.Third)
}

func Projection1[Ta, Tb, Tc any](tuples []T3[Ta, Tb, Tc]) []Ta {
	return project(tuples, func(t T3[Ta, Tb, Tc]) Ta { return t.First })
}

func Projection2[Ta, Tb, Tc any](tuples []T3[Ta, Tb, Tc]) []Tb {
	return project(tuples, func(t T3[Ta, Tb, Tc]) Tb { return t.Second })
}

func Projection3[Ta, Tb, Tc any](tuples []T3[Ta, Tb, Tc]) []Tc {
	return project(tuples, func(t T3[Ta, Tb, Tc]) Tc { return t.Third })
}
