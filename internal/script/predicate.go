package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sarpdag/boyermoore"
)

// Predicate selects list elements.
type Predicate func(s string) bool

// ParsePredicate compiles a predicate of the form kind:argument:
//
//	any             every element
//	eq:s            equal to s
//	prefix:s        starts with s
//	suffix:s        ends with s
//	contains:s      has s as a substring
//	regex:re        matches the regular expression re
//	len:n           is n bytes long
//	not:pred        pred does not hold
func ParsePredicate(s string) (Predicate, error) {
	if s == "any" {
		return func(string) bool { return true }, nil
	}

	kind, arg, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("predicate %q has no kind", s)
	}

	switch kind {
	case "eq":
		return func(v string) bool { return v == arg }, nil
	case "prefix":
		return func(v string) bool { return strings.HasPrefix(v, arg) }, nil
	case "suffix":
		return func(v string) bool { return strings.HasSuffix(v, arg) }, nil
	case "contains":
		if arg == "" {
			return func(string) bool { return true }, nil
		}
		needle := []byte(arg)
		return func(v string) bool {
			return len(v) >= len(needle) && boyermoore.Index([]byte(v), needle) >= 0
		}, nil
	case "regex":
		re, err := regexp.Compile(arg)
		if err != nil {
			return nil, fmt.Errorf("predicate %q: %w", s, err)
		}
		return re.MatchString, nil
	case "len":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("predicate %q: length must be a non-negative integer", s)
		}
		return func(v string) bool { return len(v) == n }, nil
	case "not":
		p, err := ParsePredicate(arg)
		if err != nil {
			return nil, err
		}
		return func(v string) bool { return !p(v) }, nil
	}
	return nil, fmt.Errorf("predicate %q has unknown kind %q", s, kind)
}

// ParsePredicates compiles each of s.
func ParsePredicates(s []string) ([]Predicate, error) {
	preds := make([]Predicate, len(s))
	for i, p := range s {
		var err error
		if preds[i], err = ParsePredicate(p); err != nil {
			return nil, err
		}
	}
	return preds, nil
}

// all returns a predicate that holds when every one of preds does.
func all(preds []Predicate) func(string) bool {
	return func(v string) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

func funcs(preds []Predicate) []func(string) bool {
	f := make([]func(string) bool, len(preds))
	for i, p := range preds {
		f[i] = p
	}
	return f
}
