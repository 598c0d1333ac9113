// Package wiredlist implements a doubly-linked list that is built for moving
// runs of elements around: cutting, pasting, exchanging and regrouping them
// within one list or between lists, by relinking nodes rather than copying
// values.
//
// A List is not safe for concurrent use. Any structural change invalidates
// every Cursor over the list except the one that made the change; an
// invalidated cursor reports ErrState.
package wiredlist

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"iter"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// List is a doubly-linked list of comparable elements. The zero value is an
// empty list ready to use.
type List[E comparable] struct {
	head, tail *node[E]
	size       int
	// gen changes on every structural mutation.
	gen uint64
}

// New returns an empty list.
func New[E comparable]() *List[E] {
	return &List[E]{}
}

// Of returns a list holding elems in order.
func Of[E comparable](elems ...E) *List[E] {
	return fromChain(chainOf(elems))
}

// FromSeq returns a list holding the values produced by seq.
func FromSeq[E comparable](seq iter.Seq[E]) *List[E] {
	return fromChain(chainFromSeq(seq))
}

func fromChain[E comparable](c chain[E]) *List[E] {
	return &List[E]{head: c.first, tail: c.last, size: c.count}
}

// Len returns the number of elements.
func (l *List[E]) Len() int {
	return l.size
}

// Empty reports whether the list has no elements.
func (l *List[E]) Empty() bool {
	return l.size == 0
}

// Get returns the element at index i.
func (l *List[E]) Get(i int) (v E, err error) {
	n, err := l.node(i)
	if err != nil {
		return
	}
	return n.val, nil
}

// Set replaces the element at index i and returns the previous one. It is not
// a structural change.
func (l *List[E]) Set(i int, v E) (old E, err error) {
	n, err := l.node(i)
	if err != nil {
		return
	}
	old, n.val = n.val, v
	return
}

// SetIf replaces the element at index i with v if cond holds for the current
// element. The current element is returned either way.
func (l *List[E]) SetIf(i int, cond func(E) bool, v E) (old E, err error) {
	n, err := l.node(i)
	if err != nil {
		return
	}
	old = n.val
	if cond(old) {
		n.val = v
	}
	return
}

func (l *List[E]) First() (v E, err error) {
	if l.size == 0 {
		err = rangeError("first of empty list")
		return
	}
	return l.head.val, nil
}

func (l *List[E]) Last() (v E, err error) {
	if l.size == 0 {
		err = rangeError("last of empty list")
		return
	}
	return l.tail.val, nil
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *List[E]) IndexOf(v E) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.val == v {
			return i
		}
		i++
	}
	return -1
}

// LastIndexOf returns the index of the last element equal to v, or -1.
func (l *List[E]) LastIndexOf(v E) int {
	i := l.size - 1
	for n := l.tail; n != nil; n = n.prev {
		if n.val == v {
			return i
		}
		i--
	}
	return -1
}

func (l *List[E]) Contains(v E) bool {
	return l.IndexOf(v) != -1
}

// ContainsAll reports whether every one of vals is in the list.
func (l *List[E]) ContainsAll(vals ...E) bool {
	if len(vals) == 0 {
		return true
	}
	present := make(map[E]struct{}, l.size)
	for n := l.head; n != nil; n = n.next {
		present[n.val] = struct{}{}
	}
	for _, v := range vals {
		if _, ok := present[v]; !ok {
			return false
		}
	}
	return true
}

// All returns an iterator over index/value pairs from head to tail.
func (l *List[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.val) {
				return
			}
			i++
		}
	}
}

// Values returns an iterator over the elements from head to tail.
func (l *List[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs from tail to head.
func (l *List[E]) Backward() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		i := l.size - 1
		for n := l.tail; n != nil; n = n.prev {
			if !yield(i, n.val) {
				return
			}
			i--
		}
	}
}

// Slice copies the elements into a new slice.
func (l *List[E]) Slice() []E {
	s := make([]E, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		s = append(s, n.val)
	}
	return s
}

// Equal reports whether both lists hold equal elements in the same order.
func (l *List[E]) Equal(o *List[E]) bool {
	if l == o {
		return true
	}
	if o == nil || l.size != o.size {
		return false
	}
	for a, b := l.head, o.head; a != nil; a, b = a.next, b.next {
		if a.val != b.val {
			return false
		}
	}
	return true
}

// Hash returns a hash of the element sequence. Lists that are Equal hash to
// the same value under the same seed.
func (l *List[E]) Hash(seed maphash.Seed) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for n := l.head; n != nil; n = n.next {
		binary.LittleEndian.PutUint64(buf[:], maphash.Comparable(seed, n.val))
		d.Write(buf[:])
	}
	return d.Sum64()
}

func (l *List[E]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, n.val)
	}
	b.WriteByte(']')
	return b.String()
}

// Append adds vals to the end of the list.
func (l *List[E]) Append(vals ...E) *List[E] {
	l.attachBetween(l.tail, nil, chainOf(vals))
	return l
}

// Prepend adds vals to the front of the list, keeping their order.
func (l *List[E]) Prepend(vals ...E) *List[E] {
	l.attachBetween(nil, l.head, chainOf(vals))
	return l
}

// Insert adds vals so that the first of them ends up at index at.
func (l *List[E]) Insert(at int, vals ...E) error {
	if err := l.checkInclusive(at); err != nil {
		return err
	}
	return l.attach(at, chainOf(vals))
}

// RemoveAt removes and returns the element at index i.
func (l *List[E]) RemoveAt(i int) (v E, err error) {
	n, err := l.node(i)
	if err != nil {
		return
	}
	l.unlinkNode(n)
	return n.val, nil
}

// Remove removes the first element equal to v and reports whether there was
// one.
func (l *List[E]) Remove(v E) bool {
	for n := l.head; n != nil; n = n.next {
		if n.val == v {
			l.unlinkNode(n)
			return true
		}
	}
	return false
}

// PopFront removes and returns the first element.
func (l *List[E]) PopFront() (v E, err error) {
	if l.size == 0 {
		err = rangeError("pop from empty list")
		return
	}
	n := l.head
	l.unlinkNode(n)
	return n.val, nil
}

// PopBack removes and returns the last element.
func (l *List[E]) PopBack() (v E, err error) {
	if l.size == 0 {
		err = rangeError("pop from empty list")
		return
	}
	n := l.tail
	l.unlinkNode(n)
	return n.val, nil
}

// ReplaceAll replaces every element with the result of op applied to it.
func (l *List[E]) ReplaceAll(op func(E) E) {
	for n := l.head; n != nil; n = n.next {
		n.val = op(n.val)
	}
}

// Replace substitutes vals for the elements in [from, to). When the lengths
// match the values are overwritten in place and no node is relinked.
func (l *List[E]) Replace(from, to int, vals ...E) error {
	n, err := l.checkRange(from, to)
	if err != nil {
		return err
	}
	if n == len(vals) {
		if n == 0 {
			return nil
		}
		x := l.nodeAt(from)
		for _, v := range vals {
			x.val = v
			x = x.next
		}
		return nil
	}
	if _, err := l.detach(from, to); err != nil {
		return err
	}
	return l.attach(from, chainOf(vals))
}

// Copy returns a new list holding the same elements.
func (l *List[E]) Copy() *List[E] {
	return fromChain(copyOf(l.head, l.size))
}

// CopyRange returns a new list holding the elements in [from, to). The
// receiver is unchanged.
func (l *List[E]) CopyRange(from, to int) (*List[E], error) {
	n, err := l.checkRange(from, to)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return New[E](), nil
	}
	return fromChain(copyOf(l.nodeAt(from), n)), nil
}

// Clear removes all elements.
func (l *List[E]) Clear() {
	l.takeAll()
}
