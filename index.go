package wiredlist

// nodeAt returns the node at index i, walking from whichever end is closer.
// i must be valid.
func (l *List[E]) nodeAt(i int) *node[E] {
	if i < l.size/2 {
		n := l.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := l.tail
	for j := l.size - 1; j > i; j-- {
		n = n.prev
	}
	return n
}

// seek returns the node at index j given that n sits at index i. It walks
// from n only when that is cheaper than starting over from an end.
func (l *List[E]) seek(n *node[E], i, j int) *node[E] {
	d := j - i
	if d < 0 {
		d = -d
	}
	if d > j || d > l.size-1-j {
		return l.nodeAt(j)
	}
	for ; i < j; i++ {
		n = n.next
	}
	for ; i > j; i-- {
		n = n.prev
	}
	return n
}

func (l *List[E]) checkIndex(i int) error {
	if i < 0 || i >= l.size {
		return rangeError("index %d, size %d", i, l.size)
	}
	return nil
}

func (l *List[E]) checkInclusive(i int) error {
	if i < 0 || i > l.size {
		return rangeError("position %d, size %d", i, l.size)
	}
	return nil
}

// checkRange validates the half-open range [from, to) and returns its length.
func (l *List[E]) checkRange(from, to int) (int, error) {
	if from < 0 || to > l.size || from > to {
		return 0, rangeError("range [%d, %d), size %d", from, to, l.size)
	}
	return to - from, nil
}

// node validates i and returns the node there.
func (l *List[E]) node(i int) (*node[E], error) {
	if err := l.checkIndex(i); err != nil {
		return nil, err
	}
	return l.nodeAt(i), nil
}
