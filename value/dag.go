package value

import (
	"github.com/recgenlabs/recgen"
)

// Dag is a borrowed view over a foreign operator node with an ordered list
// of optionally named argument values. Like List it owns no foreign memory
// and re-queries the foreign side per access.
type Dag struct {
	src recgen.Source
	h   recgen.ValueHandle
}

// ArgCount queries the foreign argument count. It is not cached.
func (d Dag) ArgCount() int {
	return d.src.DagArgCount(d.h)
}

// Name returns the name of argument i, or false for a positional argument
// or an out-of-range index. Invalid UTF-8 in a name is substituted.
func (d Dag) Name(i int) (string, bool) {
	b := d.src.DagArgName(d.h, i)
	if b == nil {
		return "", false
	}
	return lossyString(b), true
}

// Get decodes the value of argument i. Bounds semantics match List.Get.
func (d Dag) Get(i int) (Value, bool) {
	ah := d.src.DagArg(d.h, i)
	if ah == 0 {
		return Value{}, false
	}
	v, err := Decode(d.src, ah)
	if err != nil {
		return Value{}, false
	}
	return v, true
}

// GetUnchecked decodes argument i without the foreign null probe. Callers
// must have validated i against ArgCount.
func (d Dag) GetUnchecked(i int) (Value, bool) {
	v, err := Decode(d.src, d.src.DagArg(d.h, i))
	if err != nil {
		return Value{}, false
	}
	return v, true
}

// Iter returns a lazy iterator over the named arguments in index order.
func (d Dag) Iter() *DagIter {
	return &DagIter{dag: d}
}

// DagIter yields (name, value) pairs for the dag's named arguments in
// their original order. Unnamed arguments have no pair form and are
// skipped; they remain reachable through Get and Name directly. Iteration
// ends when the index passes the last argument.
type DagIter struct {
	dag   Dag
	index int
}

// Next returns the next named argument pair, or false at the end.
func (it *DagIter) Next() (string, Value, bool) {
	for {
		i := it.index
		v, ok := it.dag.Get(i)
		if !ok {
			return "", Value{}, false
		}
		it.index++
		if name, named := it.dag.Name(i); named {
			return name, v, true
		}
	}
}
