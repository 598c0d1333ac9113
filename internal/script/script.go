// Package script reads and runs splice scripts: TOML files that declare named
// lists of strings and a sequence of steps that cut, paste, exchange and
// regroup them.
package script

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ddkwork/golibrary/mylog"
	"github.com/pelletier/go-toml"

	"github.com/jeffwilliams/wiredlist/internal/errs"
)

type Script struct {
	Lists map[string][]string `toml:"lists"`
	Steps []Step              `toml:"step"`
}

// Step is one operation. Which fields are used depends on Op.
type Step struct {
	Op        string   `toml:"op"`
	List      string   `toml:"list"`
	Other     string   `toml:"other"`
	Into      string   `toml:"into"`
	Sources   []string `toml:"sources"`
	From      *int     `toml:"from"`
	To        *int     `toml:"to"`
	At        *int     `toml:"at"`
	Dest      *int     `toml:"dest"`
	OtherFrom *int     `toml:"other-from"`
	OtherTo   *int     `toml:"other-to"`
	Size      *int     `toml:"size"`
	Values    []string `toml:"values"`
	Match     []string `toml:"match"`
	Distinct  bool     `toml:"distinct"`
}

func (s Step) String() string {
	var b strings.Builder
	b.WriteString(s.Op)
	if s.List != "" {
		fmt.Fprintf(&b, " %s", s.List)
	}
	if s.From != nil && s.To != nil {
		fmt.Fprintf(&b, "[%d:%d]", *s.From, *s.To)
	}
	if s.Other != "" {
		fmt.Fprintf(&b, " %s", s.Other)
	}
	if s.OtherFrom != nil && s.OtherTo != nil {
		fmt.Fprintf(&b, "[%d:%d]", *s.OtherFrom, *s.OtherTo)
	}
	if s.At != nil {
		fmt.Fprintf(&b, " at %d", *s.At)
	}
	if s.Dest != nil {
		fmt.Fprintf(&b, " to %d", *s.Dest)
	}
	if s.Into != "" {
		fmt.Fprintf(&b, " -> %s", s.Into)
	}
	return b.String()
}

// Load decodes a script. Unknown keys are an error.
func Load(r io.Reader) (*Script, error) {
	var s Script
	dec := toml.NewDecoder(r)
	dec.Strict(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding script: %w", err)
	}
	return &s, nil
}

func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { mylog.CheckIgnore(f.Close()) }()

	return Load(f)
}

// ListNames returns the names of the declared lists in lexical order.
func (s *Script) ListNames() []string {
	names := make([]string, 0, len(s.Lists))
	for k := range s.Lists {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Validate checks every step without running any of them and reports all the
// problems it finds together.
func (s *Script) Validate() error {
	e := errs.New()

	known := NewRegistry()
	for name := range s.Lists {
		if name == "" {
			e.Addf("lists: empty list name")
			continue
		}
		known.Put(name, nil)
	}
	// Names of the form prefix.N created by partition, divide and group.
	numbered := map[string]bool{}

	exists := func(i int, field, name string) {
		if name == "" {
			return
		}
		if base, _, ok := cutNumber(name); ok && numbered[base] {
			return
		}
		if _, err := known.Resolve(name); err != nil {
			e.Addf("step %d (%s): %s: %v", i+1, field, name, err)
		}
	}

	for i, st := range s.Steps {
		o, ok := ops[st.Op]
		if !ok {
			e.Addf("step %d: unknown op %q", i+1, st.Op)
			continue
		}

		for _, f := range o.needs {
			if !st.has(f) {
				e.Addf("step %d (%s): missing %s", i+1, st.Op, f)
			}
		}

		exists(i, "list", st.List)
		exists(i, "other", st.Other)
		for _, src := range st.Sources {
			exists(i, "sources", src)
		}

		if _, err := ParsePredicates(st.Match); err != nil {
			e.Addf("step %d (%s): %v", i+1, st.Op, err)
		}
		if st.Size != nil && *st.Size <= 0 {
			e.Addf("step %d (%s): size must be positive", i+1, st.Op)
		}

		if st.Into != "" {
			if o.numbered {
				numbered[st.Into] = true
			} else {
				known.Put(st.Into, nil)
			}
		}
	}

	return e.NilIfEmpty()
}

// cutNumber splits name.N into name and N.
func cutNumber(name string) (base string, n int, ok bool) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return
	}
	n, err := strconv.Atoi(name[i+1:])
	if err != nil || n < 0 {
		return
	}
	return name[:i], n, true
}
