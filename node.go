package wiredlist

import "iter"

type node[E comparable] struct {
	val        E
	prev, next *node[E]
}

// link makes b follow a. Either may be nil.
func link[E comparable](a, b *node[E]) {
	if a != nil {
		a.next = b
	}
	if b != nil {
		b.prev = a
	}
}

// chain is a run of linked nodes that belongs to no list. It is what detach
// produces and what attach consumes.
type chain[E comparable] struct {
	first, last *node[E]
	count       int
}

func (c chain[E]) empty() bool {
	return c.count == 0
}

func chainOf[E comparable](vals []E) (c chain[E]) {
	for _, v := range vals {
		c.push(&node[E]{val: v})
	}
	return
}

func chainFromSeq[E comparable](seq iter.Seq[E]) (c chain[E]) {
	for v := range seq {
		c.push(&node[E]{val: v})
	}
	return
}

// copyOf builds a new chain holding the values of count nodes starting at n.
func copyOf[E comparable](n *node[E], count int) (c chain[E]) {
	for i := 0; i < count; i++ {
		c.push(&node[E]{val: n.val})
		n = n.next
	}
	return
}

// push appends a single free node.
func (c *chain[E]) push(n *node[E]) {
	n.next = nil
	if c.count == 0 {
		n.prev = nil
		c.first = n
	} else {
		link(c.last, n)
	}
	c.last = n
	c.count++
}

// concat moves all of o onto the end of c.
func (c *chain[E]) concat(o chain[E]) {
	if o.empty() {
		return
	}
	if c.empty() {
		*c = o
		return
	}
	link(c.last, o.first)
	c.last = o.last
	c.count += o.count
}

// splitAt cuts c after its first k nodes. last must be the k-th node.
func (c chain[E]) splitAt(last *node[E], k int) (front, back chain[E]) {
	if k == 0 {
		return chain[E]{}, c
	}
	if k == c.count {
		return c, chain[E]{}
	}
	front = chain[E]{first: c.first, last: last, count: k}
	back = chain[E]{first: last.next, last: c.last, count: c.count - k}
	last.next = nil
	back.first.prev = nil
	return
}

// reverse flips every node's links in place.
func (c *chain[E]) reverse() {
	for n := c.first; n != nil; n = n.prev {
		n.prev, n.next = n.next, n.prev
	}
	c.first, c.last = c.last, c.first
}
