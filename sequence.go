package wiredlist

import "iter"

// Sequence is the read-only surface shared by List and any other
// implementation of the same contract, such as an array-backed list. Code that
// only reads should accept a Sequence.
type Sequence[E comparable] interface {
	Len() int
	Get(i int) (E, error)
	IndexOf(v E) int
	Contains(v E) bool
	Values() iter.Seq[E]
	Backward() iter.Seq2[int, E]
	Slice() []E
}

var _ Sequence[int] = (*List[int])(nil)
