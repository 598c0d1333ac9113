package circ

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	c := New[int](3)
	assert.True(t, c.Empty())

	for i, want := range [][]int{{1}, {1, 2}, {1, 2, 3}, {2, 3, 4}, {3, 4, 5}} {
		c.Add(i + 1)
		assert.Equal(t, len(want), c.Len())
		assert.Equal(t, want, slices.Collect(c.All()))
	}

	last, ok := c.Last()
	assert.True(t, ok)
	assert.Equal(t, 5, last)

	saw := []int{}
	c.Each(func(v int) { saw = append(saw, v) })
	assert.Equal(t, []int{3, 4, 5}, saw)
}

func TestSizeOne(t *testing.T) {
	c := New[string](0)
	assert.Equal(t, 1, c.Cap())

	c.Add("a")
	c.Add("b")
	assert.Equal(t, []string{"b"}, slices.Collect(c.All()))
}

func TestReset(t *testing.T) {
	c := New[int](2)
	c.Add(1)
	c.Add(2)
	c.Add(3)
	c.Reset()

	assert.True(t, c.Empty())
	_, ok := c.Last()
	assert.False(t, ok)

	c.Add(7)
	assert.Equal(t, []int{7}, slices.Collect(c.All()))
}
