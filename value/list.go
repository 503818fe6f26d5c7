package value

import (
	"github.com/recgenlabs/recgen"
)

// List is a borrowed view over a foreign ordered list. It owns no foreign
// memory: every access re-queries the foreign side, so the view reflects
// the live value and stays valid exactly as long as its Source.
type List struct {
	src recgen.Source
	h   recgen.ValueHandle
}

// Len queries the foreign element count. It is not cached.
func (l List) Len() int {
	return l.src.ListLen(l.h)
}

// Get decodes the element at index i. It returns false when the index is
// out of range (the foreign side answers null) or the element fails to
// decode; callers needing to tell those apart must bound i by Len first.
func (l List) Get(i int) (Value, bool) {
	eh := l.src.ListElem(l.h, i)
	if eh == 0 {
		return Value{}, false
	}
	v, err := Decode(l.src, eh)
	if err != nil {
		return Value{}, false
	}
	return v, true
}

// GetUnchecked decodes element i without the foreign null probe. Callers
// must have validated i against Len.
func (l List) GetUnchecked(i int) (Value, bool) {
	v, err := Decode(l.src, l.src.ListElem(l.h, i))
	if err != nil {
		return Value{}, false
	}
	return v, true
}

// Iter returns a lazy iterator over the elements in index order.
func (l List) Iter() *ListIter {
	return &ListIter{list: l}
}

// ListIter yields decoded list elements one at a time. Elements are decoded
// on each Next call; nothing is materialized ahead of the cursor.
type ListIter struct {
	list  List
	index int
}

// Next returns the next element, or false once the index passes the end.
func (it *ListIter) Next() (Value, bool) {
	v, ok := it.list.Get(it.index)
	if !ok {
		return Value{}, false
	}
	it.index++
	return v, true
}
