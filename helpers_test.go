package wiredlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkLinks verifies that l is a well formed chain: head and tail are
// unlinked at the outside, every next link is mirrored by a prev link, no node
// repeats and the node count matches size.
func checkLinks[E comparable](t *testing.T, l *List[E]) {
	t.Helper()

	if l.size == 0 {
		require.Nil(t, l.head, "empty list has a head")
		require.Nil(t, l.tail, "empty list has a tail")
		return
	}

	require.NotNil(t, l.head)
	require.NotNil(t, l.tail)
	require.Nil(t, l.head.prev, "head has a predecessor")
	require.Nil(t, l.tail.next, "tail has a successor")

	seen := make(map[*node[E]]bool, l.size)
	n := l.head
	for i := 0; i < l.size-1; i++ {
		require.False(t, seen[n], "node %d visited twice", i)
		seen[n] = true
		require.NotNil(t, n.next, "chain ends at %d of %d", i, l.size)
		require.Same(t, n, n.next.prev, "broken prev link after %d", i)
		n = n.next
	}
	require.Same(t, l.tail, n, "walking %d steps from head does not reach tail", l.size-1)
}

func words(s string) *List[string] {
	return Of(strings.Fields(s)...)
}

func fields(s string) []string {
	f := strings.Fields(s)
	if f == nil {
		return []string{}
	}
	return f
}

func count(n int) *List[int] {
	l := New[int]()
	for i := 0; i < n; i++ {
		l.Append(i)
	}
	return l
}

func nodes[E comparable](l *List[E]) []*node[E] {
	var ns []*node[E]
	for n := l.head; n != nil; n = n.next {
		ns = append(ns, n)
	}
	return ns
}
