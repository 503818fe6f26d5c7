package memdb

import (
	"bytes"

	"github.com/recgenlabs/recgen"
)

// DB is an in-memory record database implementing recgen.Source. It stands
// in for the foreign compiler's database in tests and tooling: handles are
// dense slot indices (handle = index + 1, 0 invalid) and the graph is
// append-only, matching a foreign compilation session that owns every
// record for its lifetime.
type DB struct {
	values  []vnode
	records []rnode
	byName  map[string]recgen.RecordHandle

	bitBufsIssued int
	bitBufsFreed  int
	strBufsIssued int
	strBufsFreed  int
}

type vnode struct {
	tag  recgen.TypeTag
	bit  int8
	bits []int8
	num  int64
	str  []byte
	rec  recgen.RecordHandle
	list []recgen.ValueHandle
	dag  []DagArg
}

type rnode struct {
	name   []byte
	fields []field
}

type field struct {
	name  []byte
	value recgen.ValueHandle
}

// DagArg is one argument of a dag value. An empty Name marks a positional
// argument.
type DagArg struct {
	Name  string
	Value recgen.ValueHandle
}

// New creates an empty database.
func New() *DB {
	return &DB{
		values: make([]vnode, 0, 64),
		byName: make(map[string]recgen.RecordHandle),
	}
}

func (db *DB) add(n vnode) recgen.ValueHandle {
	db.values = append(db.values, n)
	return recgen.ValueHandle(len(db.values))
}

// Bit stores a bit-typed value. The raw integer is kept as given, so tests
// can plant out-of-range values the way a corrupted foreign side would.
func (db *DB) Bit(v int8) recgen.ValueHandle {
	return db.add(vnode{tag: recgen.TagBit, bit: v})
}

// Bits stores a bit-vector value.
func (db *DB) Bits(vs ...int8) recgen.ValueHandle {
	return db.add(vnode{tag: recgen.TagBits, bits: vs})
}

// Int stores an integer value.
func (db *DB) Int(n int64) recgen.ValueHandle {
	return db.add(vnode{tag: recgen.TagInt, num: n})
}

// Str stores a string value.
func (db *DB) Str(s string) recgen.ValueHandle {
	return db.add(vnode{tag: recgen.TagString, str: []byte(s)})
}

// Code stores a code value.
func (db *DB) Code(s string) recgen.ValueHandle {
	return db.add(vnode{tag: recgen.TagCode, str: []byte(s)})
}

// RawStr stores a string value with arbitrary bytes, which need not be
// valid UTF-8.
func (db *DB) RawStr(b []byte) recgen.ValueHandle {
	return db.add(vnode{tag: recgen.TagString, str: bytes.Clone(b)})
}

// List stores a list value over previously added element handles.
func (db *DB) List(elems ...recgen.ValueHandle) recgen.ValueHandle {
	return db.add(vnode{tag: recgen.TagList, list: elems})
}

// Dag stores a dag value over previously added argument handles.
func (db *DB) Dag(args ...DagArg) recgen.ValueHandle {
	return db.add(vnode{tag: recgen.TagDag, dag: args})
}

// Unknown stores a value with a tag this library does not recognize,
// standing in for a type added by a future foreign version.
func (db *DB) Unknown() recgen.ValueHandle {
	return db.add(vnode{tag: recgen.TypeTag(250)})
}

// NewRecord creates an empty named record and registers it for lookup.
func (db *DB) NewRecord(name string) recgen.RecordHandle {
	db.records = append(db.records, rnode{name: []byte(name)})
	h := recgen.RecordHandle(len(db.records))
	db.byName[name] = h
	return h
}

// AddField appends a named field to a record.
func (db *DB) AddField(r recgen.RecordHandle, name string, v recgen.ValueHandle) {
	if rn := db.record(r); rn != nil {
		rn.fields = append(rn.fields, field{name: []byte(name), value: v})
	}
}

// RecordRef stores a record-typed value pointing at r.
func (db *DB) RecordRef(r recgen.RecordHandle) recgen.ValueHandle {
	return db.add(vnode{tag: recgen.TagRecord, rec: r})
}

// Lookup resolves a record by name.
func (db *DB) Lookup(name string) (recgen.RecordHandle, bool) {
	h, ok := db.byName[name]
	return h, ok
}

// NumRecords returns the number of records in the database.
func (db *DB) NumRecords() int {
	return len(db.records)
}

// Records returns all record handles in creation order.
func (db *DB) Records() []recgen.RecordHandle {
	out := make([]recgen.RecordHandle, len(db.records))
	for i := range out {
		out[i] = recgen.RecordHandle(i + 1)
	}
	return out
}

func (db *DB) value(h recgen.ValueHandle) *vnode {
	if h == 0 || int(h) > len(db.values) {
		return nil
	}
	return &db.values[h-1]
}

func (db *DB) record(h recgen.RecordHandle) *rnode {
	if h == 0 || int(h) > len(db.records) {
		return nil
	}
	return &db.records[h-1]
}

// recgen.Source implementation. Invalid handles answer with null results
// (tag 0, handle 0, nil buffers), the way the foreign C layer does.

func (db *DB) TypeTag(h recgen.ValueHandle) recgen.TypeTag {
	n := db.value(h)
	if n == nil {
		return 0
	}
	return n.tag
}

func (db *DB) BitValue(h recgen.ValueHandle) int8 {
	n := db.value(h)
	if n == nil || n.tag != recgen.TagBit {
		return -1
	}
	return n.bit
}

func (db *DB) BitsValue(h recgen.ValueHandle) (recgen.BitBuffer, int) {
	n := db.value(h)
	if n == nil || n.tag != recgen.TagBits {
		return nil, 0
	}
	db.bitBufsIssued++
	buf := &bitBuffer{db: db, data: make([]int8, len(n.bits))}
	copy(buf.data, n.bits)
	return buf, len(buf.data)
}

func (db *DB) IntValue(h recgen.ValueHandle) int64 {
	n := db.value(h)
	if n == nil || n.tag != recgen.TagInt {
		return 0
	}
	return n.num
}

func (db *DB) StringValue(h recgen.ValueHandle) recgen.StringBuffer {
	n := db.value(h)
	if n == nil || (n.tag != recgen.TagString && n.tag != recgen.TagCode) {
		return nil
	}
	db.strBufsIssued++
	return &stringBuffer{db: db, data: bytes.Clone(n.str)}
}

func (db *DB) RecordValue(h recgen.ValueHandle) recgen.RecordHandle {
	n := db.value(h)
	if n == nil || n.tag != recgen.TagRecord {
		return 0
	}
	return n.rec
}

func (db *DB) ListLen(h recgen.ValueHandle) int {
	n := db.value(h)
	if n == nil || n.tag != recgen.TagList {
		return 0
	}
	return len(n.list)
}

func (db *DB) ListElem(h recgen.ValueHandle, i int) recgen.ValueHandle {
	n := db.value(h)
	if n == nil || n.tag != recgen.TagList || i < 0 || i >= len(n.list) {
		return 0
	}
	return n.list[i]
}

func (db *DB) DagArgCount(h recgen.ValueHandle) int {
	n := db.value(h)
	if n == nil || n.tag != recgen.TagDag {
		return 0
	}
	return len(n.dag)
}

func (db *DB) DagArgName(h recgen.ValueHandle, i int) []byte {
	n := db.value(h)
	if n == nil || n.tag != recgen.TagDag || i < 0 || i >= len(n.dag) {
		return nil
	}
	if n.dag[i].Name == "" {
		return nil
	}
	return []byte(n.dag[i].Name)
}

func (db *DB) DagArg(h recgen.ValueHandle, i int) recgen.ValueHandle {
	n := db.value(h)
	if n == nil || n.tag != recgen.TagDag || i < 0 || i >= len(n.dag) {
		return 0
	}
	return n.dag[i].Value
}

func (db *DB) RecordName(h recgen.RecordHandle) []byte {
	rn := db.record(h)
	if rn == nil {
		return nil
	}
	return rn.name
}

func (db *DB) RecordNumFields(h recgen.RecordHandle) int {
	rn := db.record(h)
	if rn == nil {
		return 0
	}
	return len(rn.fields)
}

func (db *DB) RecordFieldName(h recgen.RecordHandle, i int) []byte {
	rn := db.record(h)
	if rn == nil || i < 0 || i >= len(rn.fields) {
		return nil
	}
	return rn.fields[i].name
}

func (db *DB) RecordFieldValue(h recgen.RecordHandle, i int) recgen.ValueHandle {
	rn := db.record(h)
	if rn == nil || i < 0 || i >= len(rn.fields) {
		return 0
	}
	return rn.fields[i].value
}

func (db *DB) RecordGet(h recgen.RecordHandle, name []byte) recgen.ValueHandle {
	rn := db.record(h)
	if rn == nil {
		return 0
	}
	for _, f := range rn.fields {
		if bytes.Equal(f.name, name) {
			return f.value
		}
	}
	return 0
}
