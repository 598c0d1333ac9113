package wiredlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[E comparable](t *testing.T, c *Cursor[E]) []E {
	t.Helper()
	var out []E
	for c.HasNext() {
		v, err := c.Next()
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestCursorWalk(t *testing.T) {
	l := words("a b c d")

	c := l.Cursor()
	assert.False(t, c.Reversed())
	assert.Equal(t, fields("a b c d"), drain(t, c))
	_, err := c.Next()
	assert.ErrorIs(t, err, ErrState)
	i, err := c.Index()
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	c = l.ReverseCursor()
	assert.True(t, c.Reversed())
	assert.Equal(t, fields("d c b a"), drain(t, c))
	i, _ = c.Index()
	assert.Equal(t, 0, i)

	e := New[string]()
	assert.False(t, e.Cursor().HasNext())
	assert.False(t, e.ReverseCursor().HasNext())
}

func TestCursorNotPositioned(t *testing.T) {
	c := words("a b").Cursor()

	_, err := c.Value()
	assert.ErrorIs(t, err, ErrState)
	assert.ErrorIs(t, c.Set("x"), ErrState)
	assert.ErrorIs(t, c.Remove(), ErrState)
	assert.ErrorIs(t, c.InsertAfter("x"), ErrState)
	_, err = c.Index()
	assert.ErrorIs(t, err, ErrState)

	v, err := c.Peek()
	require.NoError(t, err)
	assert.Equal(t, "a", v)
}

func TestCursorTurn(t *testing.T) {
	l := words("a b c d e")
	c := l.Cursor()

	for _, want := range fields("a b c") {
		v, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	require.NoError(t, c.Turn())
	assert.True(t, c.Reversed())

	for _, want := range fields("b a") {
		v, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	i, _ := c.Index()
	assert.Equal(t, 0, i)
	assert.False(t, c.HasNext())

	require.NoError(t, c.Turn())
	assert.Equal(t, fields("b c d e"), drain(t, c))
}

func TestCursorTurnOutsideList(t *testing.T) {
	c := words("a b").Cursor()
	require.NoError(t, c.Turn())
	assert.False(t, c.HasNext())
	require.NoError(t, c.Turn())
	assert.Equal(t, fields("a b"), drain(t, c))
}

func TestCursorPeek(t *testing.T) {
	c := words("a b").ReverseCursor()
	v, err := c.Peek()
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	c.Next()
	v, _ = c.Peek()
	assert.Equal(t, "a", v)

	c.Next()
	_, err = c.Peek()
	assert.ErrorIs(t, err, ErrState)
}

func TestCursorRemove(t *testing.T) {
	l := count(10)
	c := l.Cursor()
	for c.HasNext() {
		v, err := c.Next()
		require.NoError(t, err)
		if even(v) {
			require.NoError(t, c.Remove())
			continue
		}
		i, err := c.Index()
		require.NoError(t, err)
		assert.Equal(t, l.IndexOf(v), i)
	}
	checkLinks(t, l)
	assert.Equal(t, []int{1, 3, 5, 7, 9}, l.Slice())

	l = count(10)
	c = l.ReverseCursor()
	for c.HasNext() {
		v, _ := c.Next()
		if odd(v) {
			require.NoError(t, c.Remove())
			continue
		}
		i, _ := c.Index()
		assert.Equal(t, l.IndexOf(v), i)
	}
	checkLinks(t, l)
	assert.Equal(t, []int{0, 2, 4, 6, 8}, l.Slice())
}

func TestCursorRemoveAll(t *testing.T) {
	l := words("a b c")
	c := l.Cursor()
	for c.HasNext() {
		c.Next()
		require.NoError(t, c.Remove())
	}
	checkLinks(t, l)
	assert.True(t, l.Empty())

	l = words("a b c")
	c = l.ReverseCursor()
	for c.HasNext() {
		c.Next()
		require.NoError(t, c.Remove())
	}
	checkLinks(t, l)
	assert.True(t, l.Empty())
}

func TestCursorRemoveThenNext(t *testing.T) {
	l := words("a b c")
	c := l.Cursor()
	c.Next()
	c.Next()
	require.NoError(t, c.Remove())

	v, err := c.Value()
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	v, err = c.Next()
	require.NoError(t, err)
	assert.Equal(t, "c", v)
	i, _ := c.Index()
	assert.Equal(t, 1, i)
}

func TestCursorInsert(t *testing.T) {
	tests := []struct {
		name     string
		reverse  bool
		steps    int
		before   bool
		expected string
		index    int
		next     string
	}{
		{name: "forward before", steps: 2, before: true, expected: "a x b c", index: 2, next: "c"},
		{name: "forward after", steps: 2, expected: "a b x c", index: 1, next: "x"},
		{name: "forward before head", steps: 1, before: true, expected: "x a b c", index: 1, next: "b"},
		{name: "forward after tail", steps: 3, expected: "a b c x", index: 2, next: "x"},
		{name: "reverse before", reverse: true, steps: 2, before: true, expected: "a b x c", index: 1, next: "a"},
		{name: "reverse after", reverse: true, steps: 2, expected: "a x b c", index: 2, next: "x"},
		{name: "reverse after head", reverse: true, steps: 3, expected: "x a b c", index: 1, next: "x"},
		{name: "reverse before tail", reverse: true, steps: 1, before: true, expected: "a b c x", index: 2, next: "b"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := words("a b c")
			c := l.Cursor()
			if tc.reverse {
				c = l.ReverseCursor()
			}
			for i := 0; i < tc.steps; i++ {
				_, err := c.Next()
				require.NoError(t, err)
			}

			var err error
			if tc.before {
				err = c.InsertBefore("x")
			} else {
				err = c.InsertAfter("x")
			}
			require.NoError(t, err)
			checkLinks(t, l)
			assert.Equal(t, fields(tc.expected), l.Slice())

			i, err := c.Index()
			require.NoError(t, err)
			assert.Equal(t, tc.index, i)

			v, err := c.Next()
			require.NoError(t, err)
			assert.Equal(t, tc.next, v)
		})
	}
}

func TestCursorSet(t *testing.T) {
	l := words("a b c")
	c := l.Cursor()
	for c.HasNext() {
		v, _ := c.Next()
		require.NoError(t, c.Set(v+v))
	}
	assert.Equal(t, fields("aa bb cc"), l.Slice())

	// Set is not structural, so other cursors survive it.
	other := l.Cursor()
	_, err := l.Set(0, "z")
	require.NoError(t, err)
	_, err = other.Next()
	assert.NoError(t, err)
}

func TestCursorInvalidated(t *testing.T) {
	l := words("a b c")
	c := l.Cursor()
	c.Next()

	l.Append("d")

	assert.False(t, c.HasNext())
	_, err := c.Next()
	assert.ErrorIs(t, err, ErrState)
	_, err = c.Value()
	assert.ErrorIs(t, err, ErrState)
	_, err = c.Peek()
	assert.ErrorIs(t, err, ErrState)
	assert.ErrorIs(t, c.Turn(), ErrState)
	assert.ErrorIs(t, c.Remove(), ErrState)
	assert.ErrorIs(t, c.InsertBefore("x"), ErrState)
	assert.Equal(t, fields("a b c d"), l.Slice())
}

func TestCursorInvalidatesOthers(t *testing.T) {
	l := words("a b c")
	c1, c2 := l.Cursor(), l.Cursor()
	c1.Next()
	c2.Next()

	require.NoError(t, c1.InsertAfter("x"))
	_, err := c1.Next()
	assert.NoError(t, err)

	_, err = c2.Next()
	assert.ErrorIs(t, err, ErrState)
}
