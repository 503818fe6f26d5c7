package recgen

// ValueHandle is an opaque reference to a typed value inside the foreign
// record database. Handle 0 is reserved and always invalid, mirroring a
// null pointer on the foreign side.
type ValueHandle uint32

// RecordHandle is an opaque reference to a record definition inside the
// foreign record database. Handle 0 is reserved and always invalid.
type RecordHandle uint32

// TypeTag is the runtime type tag the foreign side reports for a value.
// Tags added by future foreign versions decode as unknown, never as errors.
type TypeTag uint8

const (
	TagBit TypeTag = iota + 1
	TagBits
	TagCode
	TagInt
	TagString
	TagList
	TagDag
	TagRecord
)

// BitBuffer is a transient foreign allocation holding the unpacked elements
// of a bit vector. The holder must call Free exactly once after copying the
// contents out; the buffer is invalid afterwards.
type BitBuffer interface {
	At(i int) int8
	Free()
}

// StringBuffer is a newly allocated foreign byte buffer carrying string
// data. Ownership transfers to the caller, which must call Free exactly
// once; Bytes is invalid afterwards.
type StringBuffer interface {
	Bytes() []byte
	Free()
}

// Source is the capability set the foreign record system exposes. All calls
// are synchronous and non-reentrant; the foreign side owns every record for
// the lifetime of its compilation session, so handles stay valid for as long
// as the Source itself does.
//
// Absence and failure are signaled in-band: handle 0, nil buffers, and nil
// byte slices play the role of null results on the foreign side.
type Source interface {
	// TypeTag reports the runtime type tag of a value.
	TypeTag(h ValueHandle) TypeTag

	// BitValue reads the raw integer behind a bit-typed value. The foreign
	// side writes whatever it holds; range validation is the decoder's job.
	BitValue(h ValueHandle) int8

	// BitsValue returns a transient buffer of bit elements and its length.
	// A nil buffer or zero length signals a foreign-side failure.
	BitsValue(h ValueHandle) (BitBuffer, int)

	// IntValue reads a 64-bit integer value.
	IntValue(h ValueHandle) int64

	// StringValue returns a newly allocated buffer holding string bytes.
	// The caller takes ownership. Nil signals failure.
	StringValue(h ValueHandle) StringBuffer

	// RecordValue resolves a record-typed value to its record handle.
	RecordValue(h ValueHandle) RecordHandle

	// ListLen reports the element count of a list-typed value.
	ListLen(h ValueHandle) int

	// ListElem returns the element at index i, or 0 when out of range.
	ListElem(h ValueHandle, i int) ValueHandle

	// DagArgCount reports the argument count of a dag-typed value.
	DagArgCount(h ValueHandle) int

	// DagArgName returns the borrowed name bytes of argument i, or nil for
	// an unnamed argument or an out-of-range index.
	DagArgName(h ValueHandle, i int) []byte

	// DagArg returns the value of argument i, or 0 when out of range.
	DagArg(h ValueHandle, i int) ValueHandle

	// RecordName returns the borrowed name bytes of a record.
	RecordName(h RecordHandle) []byte

	// RecordNumFields reports the field count of a record.
	RecordNumFields(h RecordHandle) int

	// RecordFieldName returns the borrowed name bytes of field i, or nil
	// when out of range.
	RecordFieldName(h RecordHandle, i int) []byte

	// RecordFieldValue returns the value of field i, or 0 when out of range.
	RecordFieldValue(h RecordHandle, i int) ValueHandle

	// RecordGet looks a field up by name, returning 0 when absent.
	RecordGet(h RecordHandle, name []byte) ValueHandle
}
