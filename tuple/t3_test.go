package tuple

import (
	"errors"
	"github.com/jaswdr/faker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_T3_Size(t *testing.T) {
	// arrange
	tp := NewT3(10, "hello", 3.5)

	// act
	size := tp.Size()

	// assert
	assert.Equal(t, 3, size)
}

func Test_T3_Get(t *testing.T) {
	// arrange
	tp := NewT3(10, "hello", 3.5)

	// act
	first, err0 := tp.Get(0)
	second, err1 := tp.Get(1)
	third, err2 := tp.Get(2)

	// assert
	require.NoError(t, err0)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, 10, first)
	assert.Equal(t, "hello", second)
	assert.Equal(t, 3.5, third)
}

func Test_T3_GetOutOfRange(t *testing.T) {
	tp := NewT3(10, "hello", 3.5)

	for _, index := range []int{-1, 3, 4, 100} {
		value, err := tp.Get(index)

		assert.Nil(t, value)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		var indexErr *IndexError
		require.True(t, errors.As(err, &indexErr))
		assert.Equal(t, index, indexErr.Index)
		assert.Contains(t, err.Error(), "between 0 and 2")
	}
}

func Test_T3_Equality(t *testing.T) {
	t.Run("equal", func(t *testing.T) {
		assert.True(t, NewT3(1, "a", true) == NewT3(1, "a", true))
		assert.True(t, Equal(NewT3(1, "a", true), NewT3(1, "a", true)))
	})
	t.Run("first differs", func(t *testing.T) {
		assert.False(t, NewT3(1, "a", true) == NewT3(2, "a", true))
		assert.False(t, Equal(NewT3(1, "a", true), NewT3(2, "a", true)))
	})
	t.Run("different arity", func(t *testing.T) {
		assert.False(t, Equal(NewT3(1, "a", true), NewT2(1, "a")))
	})
	t.Run("slices", func(t *testing.T) {
		assert.True(t, Equal(NewT3([]int{1}, "a", 0), NewT3([]int{1}, "a", 0)))
	})
}

func Test_T3_Convert(t *testing.T) {
	// arrange
	tp := NewT3(10, "hello", 3.5)

	// act
	converted := tp.Convert(func(value any, index int) any {
		return index
	})

	// assert
	assert.Equal(t, 3, converted.Size())
	assert.True(t, Equal(NewT3(0, 1, 2), converted))
	assert.Equal(t, NewT3[any, any, any](0, 1, 2), converted)
}

func Test_T3_ConvertCallOrder(t *testing.T) {
	// arrange
	tp := NewT3("a", "b", "c")
	var calls []any

	// act
	tp.Convert(func(value any, index int) any {
		calls = append(calls, value, index)
		return value
	})

	// assert
	assert.Equal(t, []any{"a", 0, "b", 1, "c", 2}, calls)
}

func Test_T3_ConvertIdentity(t *testing.T) {
	fake := faker.New()

	for i := 0; i < 20; i++ {
		tp := NewT3(fake.Int(), fake.Lorem().Word(), fake.Boolean().Bool())

		converted := tp.Convert(func(value any, index int) any {
			return value
		})

		assert.True(t, Equal(tp, converted))
	}
}

func Test_T3_ConvertLeavesOriginal(t *testing.T) {
	// arrange
	tp := NewT3(10, "hello", 3.5)

	// act
	tp.Convert(func(value any, index int) any {
		return nil
	})

	// assert
	assert.Equal(t, []any{10, "hello", 3.5}, Slice(tp))
	first, second, third := tp.Values()
	assert.Equal(t, 10, first)
	assert.Equal(t, "hello", second)
	assert.Equal(t, 3.5, third)
}

func Test_T3_String(t *testing.T) {
	assert.Equal(t, "(10, hello, 3.5)", NewT3(10, "hello", 3.5).String())
}

func Test_T3_Projections(t *testing.T) {
	// arrange
	tuples := []T3[int, string, bool]{
		NewT3(1, "x", true),
		NewT3(2, "y", false),
	}

	// act
	firsts := Projection1(tuples)
	seconds := Projection2(tuples)
	thirds := Projection3(tuples)

	// assert
	assert.Equal(t, []int{1, 2}, firsts)
	assert.Equal(t, []string{"x", "y"}, seconds)
	assert.Equal(t, []bool{true, false}, thirds)
}

func Test_T3_ProjectionsEmpty(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		out := Projection1([]T3[int, string, bool]{})
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
	t.Run("nil", func(t *testing.T) {
		out := Projection3[int, string, bool](nil)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}

func Test_T3_ProjectionsMatchGet(t *testing.T) {
	fake := faker.New()
	tuples := make([]T3[int, string, bool], 0, 50)
	for i := 0; i < 50; i++ {
		tuples = append(tuples, NewT3(fake.Int(), fake.Lorem().Word(), fake.Boolean().Bool()))
	}

	seconds := Projection2(tuples)

	require.Len(t, seconds, len(tuples))
	for i, tp := range tuples {
		v, err := tp.Get(1)
		require.NoError(t, err)
		assert.Equal(t, v, seconds[i])
	}
}
