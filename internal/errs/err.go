package errs

import (
	"fmt"
	"strings"
)

// Errors collects problems that are reported together.
type Errors []error

func New() Errors {
	return Errors([]error{})
}

func (e Errors) Error() string {
	if e == nil {
		return ""
	}

	s := make([]string, 0, len(e))
	for _, err := range e {
		s = append(s, err.Error())
	}
	return strings.Join(s, "\n")
}

// Unwrap lets errors.Is and errors.As see every collected error.
func (e Errors) Unwrap() []error {
	return e
}

// Add appends err unless it is nil. Nested Errors are flattened.
func (e *Errors) Add(err error) {
	switch v := err.(type) {
	case nil:
	case Errors:
		*e = append(*e, v...)
	default:
		*e = append(*e, err)
	}
}

func (e *Errors) Addf(format string, args ...interface{}) {
	e.Add(fmt.Errorf(format, args...))
}

func (e Errors) NilIfEmpty() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
