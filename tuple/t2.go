package tuple

type T2[Ta, Tb any] struct {
	First  Ta
	Second Tb
}

func NewT2[Ta, Tb any](first Ta, second Tb) T2[Ta, Tb] {
	return T2[Ta, Tb]{First: first, Second: second}
}

func (t T2[Ta, Tb]) Values() (Ta, Tb) {
	return t.First, t.Second
}

func (t T2[Ta, Tb]) Size() int {
	return 2
}

func (t T2[Ta, Tb]) Get(index int) (any, error) {
	switch index {
	case 0:
		return t.First, nil
	case 1:
		return t.Second, nil
	default:
		return nil, indexError(index, t.Size())
	}
}

func (t T2[Ta, Tb]) Convert(fn Converter) Tuple {
	return NewT2(
		fn(t.First, 0),
		fn(t.Second, 1),
	)
}

func (t T2[Ta, Tb]) String() string {
	return format(t.First, t.Second)
}

func Projection1T2[Ta, Tb any](tuples []T2[Ta, Tb]) []Ta {
	return project(tuples, func(t T2[Ta, Tb]) Ta { return t.First })
}

func Projection2T2[Ta, Tb any](tuples []T2[Ta, Tb]) []Tb {
	return project(tuples, func(t T2[Ta, Tb]) Tb { return t.Second })
}
