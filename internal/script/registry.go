package script

import (
	"fmt"
	"strings"

	"github.com/armon/go-radix"
	"github.com/jeffwilliams/wiredlist"
)

// Registry holds the named lists a script works on. A name may be given by
// any prefix that matches exactly one registered name.
type Registry struct {
	tree *radix.Tree
}

func NewRegistry() *Registry {
	return &Registry{
		tree: radix.New(),
	}
}

func (r *Registry) Len() int {
	return r.tree.Len()
}

// Put registers l under name, replacing any list already there.
func (r *Registry) Put(name string, l *wiredlist.List[string]) {
	r.tree.Insert(name, l)
}

// Resolve returns the full name that name refers to.
func (r *Registry) Resolve(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty list name")
	}
	if _, ok := r.tree.Get(name); ok {
		return name, nil
	}

	var matches []string
	r.tree.WalkPrefix(name, func(s string, v interface{}) bool {
		matches = append(matches, s)
		return len(matches) > 1
	})

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no list named %q", name)
	case 1:
		return matches[0], nil
	}
	return "", fmt.Errorf("list name %q is ambiguous: matches %s", name, strings.Join(matches, ", "))
}

// Get returns the list name refers to.
func (r *Registry) Get(name string) (*wiredlist.List[string], error) {
	full, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	v, _ := r.tree.Get(full)
	return v.(*wiredlist.List[string]), nil
}

// Delete removes the list registered under exactly name.
func (r *Registry) Delete(name string) bool {
	_, ok := r.tree.Delete(name)
	return ok
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.tree.Len())
	r.tree.Walk(func(s string, v interface{}) bool {
		names = append(names, s)
		return false
	})
	return names
}

// Each calls fn for every list in lexical order of name.
func (r *Registry) Each(fn func(name string, l *wiredlist.List[string])) {
	r.tree.Walk(func(s string, v interface{}) bool {
		fn(s, v.(*wiredlist.List[string]))
		return false
	})
}
