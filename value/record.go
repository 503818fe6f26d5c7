package value

import (
	"github.com/recgenlabs/recgen"
	"github.com/recgenlabs/recgen/errors"
)

// Record is a reference to a named foreign record definition. It holds the
// record handle and resolves names and field values on demand through the
// Source; field values decode with Decode like any other handle.
type Record struct {
	src recgen.Source
	h   recgen.RecordHandle
}

// NewRecord wraps a foreign record handle. Callers normally reach records
// by decoding a record-typed value; the constructor exists for bindings
// that enumerate the database directly.
func NewRecord(src recgen.Source, h recgen.RecordHandle) Record {
	return Record{src: src, h: h}
}

// Handle returns the underlying foreign record handle.
func (r Record) Handle() recgen.RecordHandle {
	return r.h
}

// Name returns the record's name. Invalid UTF-8 is substituted.
func (r Record) Name() string {
	return lossyString(r.src.RecordName(r.h))
}

// NumFields queries the foreign field count.
func (r Record) NumFields() int {
	return r.src.RecordNumFields(r.h)
}

// FieldName returns the name of field i, or false when out of range.
func (r Record) FieldName(i int) (string, bool) {
	b := r.src.RecordFieldName(r.h, i)
	if b == nil {
		return "", false
	}
	return lossyString(b), true
}

// Field decodes the value of field i. It returns false when the index is
// out of range or the field fails to decode.
func (r Record) Field(i int) (Value, bool) {
	vh := r.src.RecordFieldValue(r.h, i)
	if vh == 0 {
		return Value{}, false
	}
	v, err := Decode(r.src, vh)
	if err != nil {
		return Value{}, false
	}
	return v, true
}

// Get looks a field up by name and decodes its value. An absent field
// yields a not_found error; a present field that fails to decode returns
// the decode error unchanged.
func (r Record) Get(name string) (Value, error) {
	vh := r.src.RecordGet(r.h, []byte(name))
	if vh == 0 {
		return Value{}, errors.NotFound(errors.PhaseRecord, "field", name)
	}
	return Decode(r.src, vh)
}

// Fields returns a lazy iterator over (name, value) pairs in field order.
func (r Record) Fields() *FieldIter {
	return &FieldIter{rec: r}
}

// FieldIter yields a record's fields one at a time, decoding each value on
// demand. Iteration ends at the first index past the last field or at the
// first field that fails to decode.
type FieldIter struct {
	rec   Record
	index int
}

// Next returns the next (name, value) pair, or false at the end.
func (it *FieldIter) Next() (string, Value, bool) {
	i := it.index
	v, ok := it.rec.Field(i)
	if !ok {
		return "", Value{}, false
	}
	it.index++
	name, _ := it.rec.FieldName(i)
	return name, v, true
}
