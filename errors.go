package wiredlist

import "github.com/pkg/errors"

var (
	// ErrRange is returned when an index or bound lies outside the list, or
	// when a range is inverted.
	ErrRange = errors.New("index out of range")

	// ErrStructural is returned when an operation would link a node into two
	// places at once: splicing a list into itself, or exchanging overlapping
	// ranges of one list.
	ErrStructural = errors.New("list cannot be spliced into itself")

	// ErrState is returned by a Cursor that is exhausted, not yet positioned,
	// or invalidated by a mutation that did not go through it.
	ErrState = errors.New("invalid cursor state")
)

func rangeError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrRange, format, args...)
}

func structuralError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrStructural, format, args...)
}

func stateError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrState, format, args...)
}
