package wiredlist

// classify detaches every node of l and sorts it into one bucket per
// predicate plus a final bucket for nodes no predicate accepts. Each node goes
// to the first predicate that accepts it; later predicates are not asked.
// Relative order is kept within every bucket.
func (l *List[E]) classify(preds []func(E) bool) []chain[E] {
	buckets := make([]chain[E], len(preds)+1)
	c := l.takeAll()
	for n := c.first; n != nil; {
		next := n.next
		b := len(preds)
		for i, p := range preds {
			if p(n.val) {
				b = i
				break
			}
		}
		buckets[b].push(n)
		n = next
	}
	return buckets
}

// distinct drops every node whose value already occurred earlier in c.
func distinct[E comparable](c chain[E]) (out chain[E]) {
	seen := make(map[E]struct{}, c.count)
	for n := c.first; n != nil; {
		next := n.next
		if _, dup := seen[n.val]; !dup {
			seen[n.val] = struct{}{}
			out.push(n)
		}
		n = next
	}
	return
}

// Defragment regroups the elements in place: first those accepted by
// preds[0], then those accepted by preds[1], and so on, followed by the
// elements no predicate accepts. Each element is tested against the
// predicates in order until one accepts it. Order within a group is kept.
// With dedup set only the first occurrence of each value survives within a
// group.
func (l *List[E]) Defragment(dedup bool, preds ...func(E) bool) {
	buckets := l.classify(preds)
	var c chain[E]
	for _, b := range buckets {
		if dedup {
			b = distinct(b)
		}
		c.concat(b)
	}
	dbg("defragment %d elements into %d groups\n", c.count, len(buckets))
	l.attachBetween(l.tail, nil, c)
}

// Group moves the elements out of l into one new list per predicate, plus a
// final list for the elements no predicate accepts. Classification is the
// same as for Defragment. l is left empty.
func (l *List[E]) Group(preds ...func(E) bool) []*List[E] {
	buckets := l.classify(preds)
	groups := make([]*List[E], len(buckets))
	for i, b := range buckets {
		groups[i] = fromChain(b)
	}
	dbg("group into %d lists\n", len(groups))
	return groups
}
