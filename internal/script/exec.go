package script

import (
	"fmt"
	"strings"

	"github.com/jeffwilliams/wiredlist"
)

// StepError reports the step that failed.
type StepError struct {
	Index int
	Step  Step
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index+1, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Runner applies steps to a set of named lists.
type Runner struct {
	lists   *Registry
	observe func(i int, st Step, lists *Registry)
}

// NewRunner returns a runner whose registry holds the lists declared in s.
func NewRunner(s *Script) *Runner {
	r := &Runner{lists: NewRegistry()}
	for _, name := range s.ListNames() {
		r.lists.Put(name, wiredlist.Of(s.Lists[name]...))
	}
	return r
}

func (r *Runner) Lists() *Registry {
	return r.lists
}

// Observe sets a function that is called after every successful step.
func (r *Runner) Observe(f func(i int, st Step, lists *Registry)) {
	r.observe = f
}

// Run applies steps in order and stops at the first one that fails. The
// lists keep the changes of the steps that succeeded.
func (r *Runner) Run(steps []Step) error {
	for i, st := range steps {
		dbg("step %d: %s", i+1, st)
		if err := r.Apply(st); err != nil {
			return &StepError{Index: i, Step: st, Err: err}
		}
		if r.observe != nil {
			r.observe(i, st, r.lists)
		}
	}
	return nil
}

// Apply runs a single step.
func (r *Runner) Apply(st Step) error {
	if err := checkNeeds(st); err != nil {
		return err
	}

	var l *wiredlist.List[string]
	if st.List != "" {
		var err error
		if l, err = r.lists.Get(st.List); err != nil {
			return err
		}
	}
	return ops[st.Op].run(r, st, l)
}

func (r *Runner) put(name string, l *wiredlist.List[string]) {
	dbg("%s = %v", name, l)
	r.lists.Put(name, l)
}

// putNumbered stores lists as name.0, name.1, ... after dropping any lists
// left under those names by an earlier step.
func (r *Runner) putNumbered(name string, lists []*wiredlist.List[string]) {
	for _, n := range r.lists.Names() {
		if base, _, ok := cutNumber(n); ok && base == name {
			r.lists.Delete(n)
		}
	}
	for i, l := range lists {
		r.put(fmt.Sprintf("%s.%d", name, i), l)
	}
}

// Snapshot is the contents of every list after a step.
type Snapshot struct {
	Step  int
	Op    string
	Lists []NamedList
}

type NamedList struct {
	Name   string
	Values []string
}

// Take records the current contents of every list.
func Take(i int, st Step, lists *Registry) Snapshot {
	s := Snapshot{Step: i + 1, Op: st.Op}
	lists.Each(func(name string, l *wiredlist.List[string]) {
		s.Lists = append(s.Lists, NamedList{name, l.Slice()})
	})
	return s
}

func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "step %d: %s\n", s.Step, s.Op)
	for _, l := range s.Lists {
		fmt.Fprintf(&b, "  %s: [%s]\n", l.Name, strings.Join(l.Values, " "))
	}
	return b.String()
}
