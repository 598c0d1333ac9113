package wiredlist

// The two primitives every structural operation is built from. detach lifts a
// run of nodes out of a list as a chain; attach threads a chain back in.
// Both keep head, tail and size consistent and bump the generation so that
// outstanding cursors notice.

// detach removes [from, to) and returns it as a chain. Equal bounds return an
// empty chain without touching the list.
func (l *List[E]) detach(from, to int) (chain[E], error) {
	n, err := l.checkRange(from, to)
	if err != nil || n == 0 {
		return chain[E]{}, err
	}
	first := l.nodeAt(from)
	last := l.seek(first, from, to-1)
	return l.unlink(first, last, n), nil
}

// unlink cuts the run first..last (count nodes) out of the list.
func (l *List[E]) unlink(first, last *node[E], count int) chain[E] {
	before, after := first.prev, last.next
	if before == nil {
		l.head = after
	}
	if after == nil {
		l.tail = before
	}
	link(before, after)
	first.prev = nil
	last.next = nil
	l.size -= count
	l.gen++
	return chain[E]{first: first, last: last, count: count}
}

// unlinkNode removes a single node.
func (l *List[E]) unlinkNode(n *node[E]) {
	l.unlink(n, n, 1)
}

// takeAll empties the list in O(1) and returns its nodes.
func (l *List[E]) takeAll() chain[E] {
	c := chain[E]{first: l.head, last: l.tail, count: l.size}
	l.head, l.tail, l.size = nil, nil, 0
	if c.count > 0 {
		l.gen++
	}
	return c
}

// attach threads c into the list so that its first node ends up at index at.
func (l *List[E]) attach(at int, c chain[E]) error {
	if err := l.checkInclusive(at); err != nil {
		return err
	}
	if c.empty() {
		return nil
	}
	if at == l.size {
		l.attachBetween(l.tail, nil, c)
		return nil
	}
	next := l.nodeAt(at)
	l.attachBetween(next.prev, next, c)
	return nil
}

// attachBetween links c between two adjacent nodes of the list. A nil prev
// means the head boundary, a nil next the tail boundary.
func (l *List[E]) attachBetween(prev, next *node[E], c chain[E]) {
	if c.empty() {
		return
	}
	link(prev, c.first)
	link(c.last, next)
	if prev == nil {
		l.head = c.first
	}
	if next == nil {
		l.tail = c.last
	}
	l.size += c.count
	l.gen++
}
