package tuple

type T4[Ta, Tb, Tc, Td any] struct {
	First  Ta
	Second Tb
	Third  Tc
	Fourth Td
}

func NewT4[Ta, Tb, Tc, Td any](first Ta, second Tb, third Tc, fourth Td) T4[Ta, Tb, Tc, Td] {
	return T4[Ta, Tb, Tc, Td]{First: first, Second: second, Third: third, Fourth: fourth}
}

func (t T4[Ta, Tb, Tc, Td]) Values() (Ta, Tb, Tc, Td) {
	return t.First, t.Second, t.Third, t.Fourth
}

func (t T4[Ta, Tb, Tc, Td]) Size() int {
	return 4
}

func (t T4[Ta, Tb, Tc, Td]) Get(index int) (any, error) {
	switch index {
	case 0:
		return t.First, nil
	case 1:
		return t.Second, nil
	case 2:
		return t.Third, nil
	case 3:
		return t.Fourth, nil
	default:
		return nil, indexError(index, t.Size())
	}
}

func (t T4[Ta, Tb, Tc, Td]) Convert(fn Converter) Tuple {
	return NewT4(
		fn(t.First, 0),
		fn(t.Second, 1),
		fn(t.Third, 2),
		fn(t.Fourth, 3),
	)
}

func (t T4[Ta, Tb, Tc, Td]) String() string {
	return format(t.First, t.Second, t.Third, t.Fourth)
}

func Projection1T4[Ta, Tb, Tc, Td any](tuples []T4[Ta, Tb, Tc, Td]) []Ta {
	return project(tuples, func(t T4[Ta, Tb, Tc, Td]) Ta { return t.First })
}

func Projection2T4[Ta, Tb, Tc, Td any](tuples []T4[Ta, Tb, Tc, Td]) []Tb {
	return project(tuples, func(t T4[Ta, Tb, Tc, Td]) Tb { return t.Second })
}

func Projection3T4[Ta, Tb, Tc, Td any](tuples []T4[Ta, Tb, Tc, Td]) []Tc {
	return project(tuples, func(t T4[Ta, Tb, Tc, Td]) Tc { return t.Third })
}

func Projection4T4[Ta, Tb, Tc, Td any](tuples []T4[Ta, Tb, Tc, Td]) []Td {
	return project(tuples, func(t T4[Ta, Tb, Tc, Td]) Td { return t.Fourth })
}
