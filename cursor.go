package wiredlist

// Cursor walks a List in either direction and can edit it on the way. A new
// cursor sits just outside the list, so the first call to Next yields the
// first element in its direction.
//
// A cursor stays valid as long as every structural change to the list goes
// through it. After any other insertion, removal or splice all of its methods
// return ErrState.
type Cursor[E comparable] struct {
	list    *List[E]
	cur     *node[E]
	index   int
	reverse bool
	gen     uint64
}

// Cursor returns a cursor that walks from head to tail.
func (l *List[E]) Cursor() *Cursor[E] {
	return &Cursor[E]{list: l, index: -1, gen: l.gen}
}

// ReverseCursor returns a cursor that walks from tail to head.
func (l *List[E]) ReverseCursor() *Cursor[E] {
	return &Cursor[E]{list: l, index: l.size, reverse: true, gen: l.gen}
}

func (c *Cursor[E]) check() error {
	if c.gen != c.list.gen {
		return stateError("list changed outside the cursor")
	}
	return nil
}

func (c *Cursor[E]) positioned() error {
	if err := c.check(); err != nil {
		return err
	}
	if c.cur == nil {
		return stateError("cursor is not on an element")
	}
	return nil
}

// ahead returns the node the next advance would move to.
func (c *Cursor[E]) ahead() *node[E] {
	l := c.list
	if c.cur == nil {
		switch {
		case !c.reverse && c.index < 0:
			return l.head
		case c.reverse && c.index >= l.size:
			return l.tail
		}
		return nil
	}
	if c.reverse {
		return c.cur.prev
	}
	return c.cur.next
}

// Reversed reports whether the cursor currently walks from tail to head.
func (c *Cursor[E]) Reversed() bool {
	return c.reverse
}

// HasNext reports whether Next would yield an element. It is false for an
// invalidated cursor.
func (c *Cursor[E]) HasNext() bool {
	return c.check() == nil && c.ahead() != nil
}

// Next moves to the following element in the cursor's direction and returns
// it.
func (c *Cursor[E]) Next() (v E, err error) {
	if err = c.check(); err != nil {
		return
	}
	n := c.ahead()
	if n == nil {
		err = stateError("cursor exhausted")
		return
	}
	c.cur = n
	if c.reverse {
		c.index--
	} else {
		c.index++
	}
	return n.val, nil
}

// Value returns the element under the cursor.
func (c *Cursor[E]) Value() (v E, err error) {
	if err = c.positioned(); err != nil {
		return
	}
	return c.cur.val, nil
}

// Peek returns the element Next would yield without moving.
func (c *Cursor[E]) Peek() (v E, err error) {
	if err = c.check(); err != nil {
		return
	}
	n := c.ahead()
	if n == nil {
		err = stateError("cursor exhausted")
		return
	}
	return n.val, nil
}

// Set replaces the element under the cursor.
func (c *Cursor[E]) Set(v E) error {
	if err := c.positioned(); err != nil {
		return err
	}
	c.cur.val = v
	return nil
}

// Index returns the position of the element under the cursor.
func (c *Cursor[E]) Index() (int, error) {
	if err := c.positioned(); err != nil {
		return -1, err
	}
	return c.index, nil
}

// Turn reverses the cursor's direction without moving it. The next advance
// revisits the elements already passed, nearest first.
func (c *Cursor[E]) Turn() error {
	if err := c.check(); err != nil {
		return err
	}
	c.reverse = !c.reverse
	return nil
}

// InsertBefore inserts v just before the element under the cursor, "before"
// meaning earlier in the cursor's direction. The cursor stays on its element.
func (c *Cursor[E]) InsertBefore(v E) error {
	if err := c.positioned(); err != nil {
		return err
	}
	if c.reverse {
		c.insert(c.cur, c.cur.next, v)
	} else {
		c.insert(c.cur.prev, c.cur, v)
		c.index++
	}
	return nil
}

// InsertAfter inserts v just after the element under the cursor in the
// cursor's direction, so that it is the next element Next yields.
func (c *Cursor[E]) InsertAfter(v E) error {
	if err := c.positioned(); err != nil {
		return err
	}
	if c.reverse {
		c.insert(c.cur.prev, c.cur, v)
		c.index++
	} else {
		c.insert(c.cur, c.cur.next, v)
	}
	return nil
}

func (c *Cursor[E]) insert(prev, next *node[E], v E) {
	n := &node[E]{val: v}
	c.list.attachBetween(prev, next, chain[E]{first: n, last: n, count: 1})
	c.gen = c.list.gen
}

// Remove deletes the element under the cursor. The cursor falls back onto the
// element it passed before, so the next call to Next yields the element that
// followed the removed one. Removing the first element in the cursor's
// direction leaves the cursor outside the list as if it were new.
func (c *Cursor[E]) Remove() error {
	if err := c.positioned(); err != nil {
		return err
	}
	l := c.list
	gone := c.cur
	if c.reverse {
		c.cur = gone.next
		// The element after gone keeps gone's index once gone is unlinked.
	} else {
		c.cur = gone.prev
		c.index--
	}
	l.unlinkNode(gone)
	if c.reverse && c.cur == nil {
		c.index = l.size
	}
	c.gen = l.gen
	return nil
}
