package dynarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_Walk(t *testing.T) {
	v, err := Of(1, 2, 3, 4)
	require.NoError(t, err)

	var got []int
	for it := v.Begin(); it.NotEqual(v.End()); it.Inc() {
		got = append(got, *it.Deref())
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestIterator_MutatesThroughDeref(t *testing.T) {
	v, err := Of(1, 2, 3)
	require.NoError(t, err)

	for it := v.Begin(); it.NotEqual(v.End()); it.Inc() {
		*it.Deref() *= 10
	}
	assert.Equal(t, []int{10, 20, 30}, ints(v))
}

func TestIterator_PreAndPostIncrement(t *testing.T) {
	v, err := Of("a", "b", "c")
	require.NoError(t, err)

	it := v.Begin()
	prev := it.PostInc()
	assert.Equal(t, "a", *prev.Deref())
	assert.Equal(t, "b", *it.Deref())

	next := it.Inc()
	assert.Equal(t, "c", *next.Deref())
	assert.True(t, next.Equal(it))

	it.Inc()
	assert.True(t, it.Equal(v.End()))
}

func TestIterator_EmptyVector(t *testing.T) {
	v := New[int]()
	assert.True(t, v.Begin().Equal(v.End()))
	assert.True(t, v.CBegin().Equal(v.CEnd()))

	require.NoError(t, v.Reserve(4))
	assert.True(t, v.Begin().Equal(v.End()))
}

func TestIterator_Restartable(t *testing.T) {
	v, err := Of(5, 6)
	require.NoError(t, err)

	for range 3 {
		n := 0
		for it := v.CBegin(); it.NotEqual(v.CEnd()); it.Inc() {
			n++
		}
		assert.Equal(t, 2, n)
	}
}

func TestIterator_DifferentBuffersNotEqual(t *testing.T) {
	a, err := Of(1)
	require.NoError(t, err)
	b, err := Of(1)
	require.NoError(t, err)

	assert.False(t, a.Begin().Equal(b.Begin()))
}

func TestConstIterator(t *testing.T) {
	type pair struct{ k, v int }
	vec, err := Of(pair{1, 2}, pair{3, 4})
	require.NoError(t, err)

	it := vec.CBegin()
	p := it.Deref()
	p.v = 100
	assert.Equal(t, 2, vec.Get(0).v, "const iterators hand out copies")

	prev := it.PostInc()
	assert.Equal(t, 1, prev.Deref().k)
	assert.Equal(t, 3, it.Deref().k)
	it.Inc()
	assert.True(t, it.Equal(vec.CEnd()))
	assert.False(t, it.NotEqual(vec.CEnd()))
}

func TestAll(t *testing.T) {
	v, err := Of(1, 2, 3, 4)
	require.NoError(t, err)

	for i, p := range v.All() {
		*p += i
	}
	assert.Equal(t, []int{1, 3, 5, 7}, ints(v))

	var seen []int
	for i := range v.All() {
		if i == 2 {
			break
		}
		seen = append(seen, i)
	}
	assert.Equal(t, []int{0, 1}, seen)
}

func TestValues_EarlyStop(t *testing.T) {
	v, err := Of(1, 2, 3, 4)
	require.NoError(t, err)

	sum := 0
	for x := range v.Values() {
		if x > 2 {
			break
		}
		sum += x
	}
	assert.Equal(t, 3, sum)
}
