package circ

import "iter"

// Circ is a fixed-size circular buffer. Once full, each Add evicts the oldest
// entry.
type Circ[V any] struct {
	entries      []V
	first, count int
}

func New[V any](max int) Circ[V] {
	if max < 1 {
		max = 1
	}

	return Circ[V]{
		entries: make([]V, max),
	}
}

func (c Circ[V]) Empty() bool {
	return c.count == 0
}

func (c Circ[V]) Len() int {
	return c.count
}

func (c Circ[V]) Cap() int {
	return len(c.entries)
}

func (c *Circ[V]) Add(v V) {
	if c.count == len(c.entries) {
		c.entries[c.first] = v
		c.first = c.mod(c.first + 1)
		return
	}
	c.entries[c.mod(c.first+c.count)] = v
	c.count++
}

// Reset drops every entry.
func (c *Circ[V]) Reset() {
	var zero V
	for i := range c.entries {
		c.entries[i] = zero
	}
	c.first, c.count = 0, 0
}

func (c Circ[V]) mod(index int) int {
	return index % len(c.entries)
}

// Each calls f on the entries from oldest to newest.
func (c Circ[V]) Each(f func(v V)) {
	for v := range c.All() {
		f(v)
	}
}

// All iterates over the entries from oldest to newest.
func (c Circ[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < c.count; i++ {
			if !yield(c.entries[c.mod(c.first+i)]) {
				return
			}
		}
	}
}

// Last returns the newest entry.
func (c Circ[V]) Last() (v V, ok bool) {
	if c.count == 0 {
		return
	}
	return c.entries[c.mod(c.first+c.count-1)], true
}
