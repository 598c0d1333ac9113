package script

import (
	"fmt"
	"sort"

	"github.com/jeffwilliams/wiredlist"
)

type field string

const (
	fList      field = "list"
	fOther     field = "other"
	fInto      field = "into"
	fSources   field = "sources"
	fFrom      field = "from"
	fTo        field = "to"
	fAt        field = "at"
	fDest      field = "dest"
	fOtherFrom field = "other-from"
	fOtherTo   field = "other-to"
	fSize      field = "size"
	fValues    field = "values"
	fMatch     field = "match"
)

func (s Step) has(f field) bool {
	switch f {
	case fList:
		return s.List != ""
	case fOther:
		return s.Other != ""
	case fInto:
		return s.Into != ""
	case fSources:
		return len(s.Sources) > 0
	case fFrom:
		return s.From != nil
	case fTo:
		return s.To != nil
	case fAt:
		return s.At != nil
	case fDest:
		return s.Dest != nil
	case fOtherFrom:
		return s.OtherFrom != nil
	case fOtherTo:
		return s.OtherTo != nil
	case fSize:
		return s.Size != nil
	case fValues:
		return s.Values != nil
	case fMatch:
		return len(s.Match) > 0
	}
	return false
}

type op struct {
	needs []field
	// numbered ops store several results as into.0, into.1, ...
	numbered bool
	run      func(r *Runner, st Step, l *wiredlist.List[string]) error
}

var ops map[string]op

func init() {
	ops = map[string]op{
		"append": {
			needs: []field{fList, fValues},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				l.Append(st.Values...)
				return nil
			},
		},
		"prepend": {
			needs: []field{fList, fValues},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				l.Prepend(st.Values...)
				return nil
			},
		},
		"insert": {
			needs: []field{fList, fAt, fValues},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				return l.Insert(*st.At, st.Values...)
			},
		},
		"cut": {
			needs: []field{fList, fFrom, fTo, fInto},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				c, err := l.Cut(*st.From, *st.To)
				if err != nil {
					return err
				}
				r.put(st.Into, c)
				return nil
			},
		},
		"copy": {
			needs: []field{fList, fFrom, fTo, fInto},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				c, err := l.CopyRange(*st.From, *st.To)
				if err != nil {
					return err
				}
				r.put(st.Into, c)
				return nil
			},
		},
		"paste": {
			needs: []field{fList, fOther, fAt},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				o, err := r.lists.Get(st.Other)
				if err != nil {
					return err
				}
				return l.Paste(o, *st.At)
			},
		},
		"embed": {
			needs: []field{fList, fOther, fAt},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				o, err := r.lists.Get(st.Other)
				if err != nil {
					return err
				}
				return l.Embed(*st.At, o)
			},
		},
		"embed-range": {
			needs: []field{fList, fOther, fAt, fOtherFrom, fOtherTo},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				o, err := r.lists.Get(st.Other)
				if err != nil {
					return err
				}
				return l.EmbedRange(*st.At, o, *st.OtherFrom, *st.OtherTo)
			},
		},
		"exchange": {
			needs: []field{fList, fFrom, fTo, fOther, fOtherFrom, fOtherTo},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				o, err := r.lists.Get(st.Other)
				if err != nil {
					return err
				}
				return l.Exchange(*st.From, *st.To, o, *st.OtherFrom, *st.OtherTo)
			},
		},
		"rewire": {
			needs: []field{fList, fFrom, fTo, fOther},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				o, err := r.lists.Get(st.Other)
				if err != nil {
					return err
				}
				return l.Rewire(*st.From, *st.To, o)
			},
		},
		"move": {
			needs: []field{fList, fFrom, fTo, fDest},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				return l.Move(*st.From, *st.To, *st.Dest)
			},
		},
		"join": {
			needs: []field{fSources, fInto},
			run: func(r *Runner, st Step, _ *wiredlist.List[string]) error {
				srcs := make([]*wiredlist.List[string], len(st.Sources))
				for i, name := range st.Sources {
					var err error
					if srcs[i], err = r.lists.Get(name); err != nil {
						return err
					}
				}
				r.put(st.Into, wiredlist.Join(srcs...))
				return nil
			},
		},
		"split": {
			needs: []field{fList, fAt, fInto},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				s, err := l.Split(*st.At)
				if err != nil {
					return err
				}
				r.put(st.Into, s)
				return nil
			},
		},
		"partition": {
			needs:    []field{fList, fSize, fInto},
			numbered: true,
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				parts, err := l.Partition(*st.Size)
				if err != nil {
					return err
				}
				r.putNumbered(st.Into, parts)
				return nil
			},
		},
		"divide": {
			needs:    []field{fList, fSize, fInto},
			numbered: true,
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				parts, err := l.Divide(*st.Size)
				if err != nil {
					return err
				}
				r.putNumbered(st.Into, parts)
				return nil
			},
		},
		"shrink": {
			needs: []field{fList, fFrom, fTo},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				return l.Shrink(*st.From, *st.To)
			},
		},
		"reverse": {
			needs: []field{fList},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				l.Reverse()
				return nil
			},
		},
		"reverse-range": {
			needs: []field{fList, fFrom, fTo},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				return l.ReverseRange(*st.From, *st.To)
			},
		},
		"defragment": {
			needs: []field{fList},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				preds, err := ParsePredicates(st.Match)
				if err != nil {
					return err
				}
				l.Defragment(st.Distinct, funcs(preds)...)
				return nil
			},
		},
		"group": {
			needs:    []field{fList, fMatch, fInto},
			numbered: true,
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				preds, err := ParsePredicates(st.Match)
				if err != nil {
					return err
				}
				r.putNumbered(st.Into, l.Group(funcs(preds)...))
				return nil
			},
		},
		"lchop": {
			needs: []field{fList, fMatch},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				return r.chop(st, l.LChop)
			},
		},
		"rchop": {
			needs: []field{fList, fMatch},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				return r.chop(st, l.RChop)
			},
		},
		"remove-if": {
			needs: []field{fList, fMatch},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				preds, err := ParsePredicates(st.Match)
				if err != nil {
					return err
				}
				n := l.RemoveIf(all(preds))
				dbg("remove-if: removed %d from %s", n, st.List)
				return nil
			},
		},
		"clear": {
			needs: []field{fList},
			run: func(r *Runner, st Step, l *wiredlist.List[string]) error {
				l.Clear()
				return nil
			},
		},
	}
}

func (r *Runner) chop(st Step, chop func(func(string) bool) *wiredlist.List[string]) error {
	preds, err := ParsePredicates(st.Match)
	if err != nil {
		return err
	}
	c := chop(all(preds))
	if st.Into != "" {
		r.put(st.Into, c)
	}
	return nil
}

// Ops returns the names of the supported operations, sorted.
func Ops() []string {
	names := make([]string, 0, len(ops))
	for k := range ops {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func checkNeeds(st Step) error {
	o, ok := ops[st.Op]
	if !ok {
		return fmt.Errorf("unknown op %q", st.Op)
	}
	for _, f := range o.needs {
		if !st.has(f) {
			return fmt.Errorf("%s: missing %s", st.Op, f)
		}
	}
	return nil
}
