package debug

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jeffwilliams/wiredlist"
)

// DebugLog keeps the most recent messages of each category in memory.
type DebugLog struct {
	entries map[string]*wiredlist.List[*entry]
	max     int
	lock    sync.Mutex
}

type entry struct {
	when     time.Time
	category string
	message  string
}

func New(maxEntries int) *DebugLog {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &DebugLog{max: maxEntries}
}

func (l *DebugLog) Addf(category, message string, args ...interface{}) {
	l.Add(category, fmt.Sprintf(message, args...))
}

func (l *DebugLog) Add(category, message string) {
	l.lock.Lock()
	defer l.lock.Unlock()

	c := l.listForCategory(category)
	c.Append(&entry{time.Now(), category, message})
	for c.Len() > l.max {
		c.PopFront()
	}
}

// SetMax changes how many entries each category keeps, dropping the oldest
// entries of categories that are over the new limit.
func (l *DebugLog) SetMax(maxEntries int) {
	if maxEntries < 1 {
		maxEntries = 1
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	l.max = maxEntries
	for _, c := range l.entries {
		for c.Len() > l.max {
			c.PopFront()
		}
	}
}

func (l *DebugLog) listForCategory(category string) *wiredlist.List[*entry] {
	if l.entries == nil {
		l.entries = make(map[string]*wiredlist.List[*entry])
	}
	c, ok := l.entries[category]
	if !ok {
		c = wiredlist.New[*entry]()
		l.entries[category] = c
	}
	return c
}

// Categories returns the names of the categories that have entries, sorted.
func (l *DebugLog) Categories() []string {
	l.lock.Lock()
	defer l.lock.Unlock()

	c := make([]string, 0, len(l.entries))
	for k := range l.entries {
		c = append(c, k)
	}
	sort.Strings(c)
	return c
}

// Len returns the number of entries held for category.
func (l *DebugLog) Len(category string) int {
	l.lock.Lock()
	defer l.lock.Unlock()

	if c, ok := l.entries[category]; ok {
		return c.Len()
	}
	return 0
}

// String merges the entries of the given categories, or of all categories,
// into one multi-line log ordered by time. The first entry of each category
// is marked:
//
//	2022-05-21T12:43:12.123 <category><first> Message
func (l *DebugLog) String(categories ...string) string {
	l.lock.Lock()
	defer l.lock.Unlock()

	if len(categories) == 0 {
		for k := range l.entries {
			categories = append(categories, k)
		}
		sort.Strings(categories)
	}

	var heads []*head
	for _, cat := range categories {
		if c, ok := l.entries[cat]; ok && !c.Empty() {
			heads = append(heads, newHead(c))
		}
	}

	var buf bytes.Buffer
	for {
		e, first := popLowest(heads)
		if e == nil {
			break
		}

		s := format(e, first)
		buf.WriteString(s)
		if !strings.HasSuffix(s, "\n") {
			buf.WriteRune('\n')
		}
	}
	return buf.String()
}

// head is the unconsumed front of one category during a merge.
type head struct {
	cur     *wiredlist.Cursor[*entry]
	next    *entry
	started bool
}

func newHead(c *wiredlist.List[*entry]) *head {
	h := &head{cur: c.Cursor()}
	h.advance()
	return h
}

func (h *head) advance() {
	h.next = nil
	if h.cur.HasNext() {
		h.next, _ = h.cur.Next()
	}
}

func popLowest(heads []*head) (smallest *entry, isFirstInList bool) {
	var from *head
	for _, h := range heads {
		if h.next == nil {
			continue
		}
		if smallest == nil || h.next.when.Before(smallest.when) {
			smallest = h.next
			from = h
		}
	}

	if from != nil {
		isFirstInList = !from.started
		from.started = true
		from.advance()
	}
	return
}

func format(e *entry, first bool) string {
	f := ""
	if first {
		f = "<first>"
	}
	return fmt.Sprintf("%s <%s>%s %s", e.when.Format("2006-01-02T15:04:05.000"), e.category, f, e.message)
}
