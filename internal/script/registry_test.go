package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffwilliams/wiredlist"
)

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()
	r.Put("alpha", wiredlist.Of("a"))
	r.Put("beta", wiredlist.Of("b"))
	r.Put("bet", wiredlist.Of("c"))
	r.Put("gamma.0", wiredlist.Of("d"))

	tests := []struct {
		name     string
		expected string
		errors   bool
	}{
		{name: "alpha", expected: "alpha"},
		{name: "al", expected: "alpha"},
		{name: "bet", expected: "bet"},
		{name: "beta", expected: "beta"},
		{name: "be", errors: true},
		{name: "g", expected: "gamma.0"},
		{name: "delta", errors: true},
		{name: "", errors: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			full, err := r.Resolve(tc.name)
			if tc.errors {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, full)
		})
	}
}

func TestRegistryGetAndDelete(t *testing.T) {
	r := NewRegistry()
	r.Put("one", wiredlist.Of("x", "y"))

	l, err := r.Get("o")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, l.Slice())

	r.Put("one", wiredlist.Of("z"))
	l, _ = r.Get("one")
	assert.Equal(t, []string{"z"}, l.Slice())
	assert.Equal(t, 1, r.Len())

	assert.True(t, r.Delete("one"))
	assert.False(t, r.Delete("one"))
	_, err = r.Get("one")
	assert.Error(t, err)
}

func TestRegistryNamesAreSorted(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"c", "a.1", "b", "a.0", "a"} {
		r.Put(n, wiredlist.New[string]())
	}
	assert.Equal(t, []string{"a", "a.0", "a.1", "b", "c"}, r.Names())

	var seen []string
	r.Each(func(name string, l *wiredlist.List[string]) {
		seen = append(seen, name)
	})
	assert.Equal(t, r.Names(), seen)
}
