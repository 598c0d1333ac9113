package wiredlist

// Cut removes [from, to) and returns it as a new list.
func (l *List[E]) Cut(from, to int) (*List[E], error) {
	c, err := l.detach(from, to)
	if err != nil {
		return nil, err
	}
	return fromChain(c), nil
}

// Split removes everything from index at onwards and returns it as a new
// list.
func (l *List[E]) Split(at int) (*List[E], error) {
	return l.Cut(at, l.size)
}

// Paste moves all of other into l so that other's first element ends up at
// index at. other is left empty.
func (l *List[E]) Paste(other *List[E], at int) error {
	return l.Embed(at, other)
}

// Embed moves all of src into l at index at, leaving src empty.
func (l *List[E]) Embed(at int, src *List[E]) error {
	if src == l {
		return structuralError("embed list into itself")
	}
	if err := l.checkInclusive(at); err != nil {
		return err
	}
	if src.size == 0 {
		return nil
	}
	dbg("embed %d elements at %d of %d\n", src.size, at, l.size)
	return l.attach(at, src.takeAll())
}

// EmbedRange moves [from, to) of src into l at index at.
func (l *List[E]) EmbedRange(at int, src *List[E], from, to int) error {
	if src == l {
		return structuralError("embed range of list into itself")
	}
	if err := l.checkInclusive(at); err != nil {
		return err
	}
	n, err := src.checkRange(from, to)
	if err != nil || n == 0 {
		return err
	}
	dbg("embed [%d, %d) at %d\n", from, to, at)
	c, _ := src.detach(from, to)
	return l.attach(at, c)
}

// Exchange swaps [i1, i2) of l with [j1, j2) of other. The ranges may differ
// in length. other may be l itself provided the ranges do not overlap;
// ranges that merely touch are swapped like any other pair.
func (l *List[E]) Exchange(i1, i2 int, other *List[E], j1, j2 int) error {
	n1, err := l.checkRange(i1, i2)
	if err != nil {
		return err
	}
	n2, err := other.checkRange(j1, j2)
	if err != nil {
		return err
	}
	if other == l {
		return l.exchangeWithin(i1, i2, j1, j2)
	}
	if n1 == 0 && n2 == 0 {
		return nil
	}
	dbg("exchange [%d, %d) with [%d, %d) of other list\n", i1, i2, j1, j2)
	mine, _ := l.detach(i1, i2)
	theirs, _ := other.detach(j1, j2)
	l.attach(i1, theirs)
	other.attach(j1, mine)
	return nil
}

func (l *List[E]) exchangeWithin(i1, i2, j1, j2 int) error {
	if i1 > j1 || (i1 == j1 && i2 > j2) {
		i1, i2, j1, j2 = j1, j2, i1, i2
	}
	// [i1, i2) now starts no later than [j1, j2). An empty range counts as
	// the single position it names.
	n1, n2 := i2-i1, j2-j1
	if n1 == 0 && n2 == 0 {
		return nil
	}
	if j1 < i2 {
		return structuralError("exchange of overlapping ranges [%d, %d) and [%d, %d)", i1, i2, j1, j2)
	}
	// Take the later range first so the earlier one keeps its indexes.
	later, _ := l.detach(j1, j2)
	earlier, _ := l.detach(i1, i2)
	l.attach(i1, later)
	l.attach(j1-n1+n2, earlier)
	return nil
}

// Rewire replaces [from, to) of l with all of src, leaving src empty. The
// replaced elements are dropped.
func (l *List[E]) Rewire(from, to int, src *List[E]) error {
	if src == l {
		return structuralError("rewire list into itself")
	}
	if _, err := l.checkRange(from, to); err != nil {
		return err
	}
	dbg("rewire [%d, %d) with %d elements\n", from, to, src.size)
	l.detach(from, to)
	return l.attach(from, src.takeAll())
}

// Move relocates [from, to) so that it starts at dest. dest counts positions
// in the list as it is with the range taken out, so it runs from 0 to
// Len()-(to-from).
func (l *List[E]) Move(from, to, dest int) error {
	n, err := l.checkRange(from, to)
	if err != nil {
		return err
	}
	if dest < 0 || dest > l.size-n {
		return rangeError("move destination %d, %d elements remain", dest, l.size-n)
	}
	if n == 0 || dest == from {
		return nil
	}
	c, _ := l.detach(from, to)
	return l.attach(dest, c)
}

// Join concatenates lists into a new list, emptying each of them.
func Join[E comparable](lists ...*List[E]) *List[E] {
	var c chain[E]
	for _, o := range lists {
		if o != nil {
			c.concat(o.takeAll())
		}
	}
	return fromChain(c)
}

// Partition breaks l into consecutive lists of size elements; the last may be
// shorter. l is left empty.
func (l *List[E]) Partition(size int) ([]*List[E], error) {
	if size <= 0 {
		return nil, rangeError("partition size %d", size)
	}
	parts := make([]*List[E], 0, (l.size+size-1)/size)
	for l.size > size {
		last := l.nodeAt(size - 1)
		parts = append(parts, fromChain(l.unlink(l.head, last, size)))
	}
	if l.size > 0 {
		parts = append(parts, fromChain(l.takeAll()))
	}
	return parts, nil
}

// Divide breaks l into at most n lists of near-equal size, the last one
// possibly shorter.
func (l *List[E]) Divide(n int) ([]*List[E], error) {
	if n <= 0 {
		return nil, rangeError("divide into %d parts", n)
	}
	size := (l.size + n - 1) / n
	if size == 0 {
		return nil, nil
	}
	return l.Partition(size)
}

// Shrink keeps only [from, to) and drops the rest.
func (l *List[E]) Shrink(from, to int) error {
	n, err := l.checkRange(from, to)
	if err != nil {
		return err
	}
	if n == l.size {
		return nil
	}
	kept, _ := l.detach(from, to)
	l.takeAll()
	return l.attach(0, kept)
}

// Reverse reverses the list in place. Nodes keep their values; only their
// links are flipped.
func (l *List[E]) Reverse() *List[E] {
	if l.size < 2 {
		return l
	}
	c := l.takeAll()
	c.reverse()
	l.attachBetween(nil, nil, c)
	return l
}

// ReverseRange reverses the order of the elements in [from, to).
func (l *List[E]) ReverseRange(from, to int) error {
	n, err := l.checkRange(from, to)
	if err != nil || n < 2 {
		return err
	}
	c, _ := l.detach(from, to)
	c.reverse()
	return l.attach(from, c)
}

// LChop removes the longest prefix whose elements all satisfy pred and
// returns it as a new list.
func (l *List[E]) LChop(pred func(E) bool) *List[E] {
	c := l.takeAll()
	var last *node[E]
	k := 0
	for n := c.first; n != nil && pred(n.val); n = n.next {
		last = n
		k++
	}
	front, back := c.splitAt(last, k)
	l.attachBetween(nil, l.head, back)
	return fromChain(front)
}

// RChop removes the longest suffix whose elements all satisfy pred and
// returns it as a new list.
func (l *List[E]) RChop(pred func(E) bool) *List[E] {
	c := l.takeAll()
	var cut *node[E]
	k := 0
	for n := c.last; n != nil && pred(n.val); n = n.prev {
		cut = n
		k++
	}
	var front, back chain[E]
	switch {
	case k == 0:
		front = c
	case k == c.count:
		back = c
	default:
		front, back = c.splitAt(cut.prev, c.count-k)
	}
	l.attachBetween(nil, l.head, front)
	return fromChain(back)
}

// RemoveIf removes every element satisfying pred and returns how many were
// removed.
func (l *List[E]) RemoveIf(pred func(E) bool) int {
	c := l.takeAll()
	var kept chain[E]
	removed := 0
	for n := c.first; n != nil; {
		next := n.next
		if pred(n.val) {
			removed++
		} else {
			kept.push(n)
		}
		n = next
	}
	l.attachBetween(nil, l.head, kept)
	return removed
}
