package value

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

// Value is the owned, closed-variant representation of one decoded foreign
// value. Exactly one variant is active, determined by the foreign-reported
// type tag at decode time; values are immutable once decoded. The zero
// Value is the invalid variant.
//
// Scalar variants (bit, bits, int, string, code) own their payload outright.
// Composite variants (list, dag) and record references hold borrowed views
// into the foreign graph and stay valid only as long as the Source that
// produced them.
type Value struct {
	kind Kind
	bit  int8
	bits []int8
	num  int64
	str  string
	list List
	dag  Dag
	rec  Record
}

// Kind returns the active variant.
func (v Value) Kind() Kind {
	return v.kind
}

// Bit returns the bit payload when the bit variant is active.
func (v Value) Bit() (int8, bool) {
	if v.kind != KindBit {
		return 0, false
	}
	return v.bit, true
}

// Bits returns the bit vector payload when the bits variant is active.
// The slice is owned by the Value; callers must not modify it.
func (v Value) Bits() ([]int8, bool) {
	if v.kind != KindBits {
		return nil, false
	}
	return v.bits, true
}

// Int returns the integer payload when the int variant is active.
func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.num, true
}

// Str returns the string payload when the string variant is active.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Code returns the string payload when the code variant is active.
func (v Value) Code() (string, bool) {
	if v.kind != KindCode {
		return "", false
	}
	return v.str, true
}

// AsList returns the list view when the list variant is active.
func (v Value) AsList() (List, bool) {
	if v.kind != KindList {
		return List{}, false
	}
	return v.list, true
}

// AsDag returns the dag view when the dag variant is active.
func (v Value) AsDag() (Dag, bool) {
	if v.kind != KindDag {
		return Dag{}, false
	}
	return v.dag, true
}

// AsRecord returns the record reference when the record variant is active.
func (v Value) AsRecord() (Record, bool) {
	if v.kind != KindRecord {
		return Record{}, false
	}
	return v.rec, true
}

// String renders a short diagnostic form of the value. Composite variants
// query the foreign side for their live length.
func (v Value) String() string {
	switch v.kind {
	case KindBit:
		return fmt.Sprintf("bit(%d)", v.bit)
	case KindBits:
		var b strings.Builder
		b.WriteString("bits[")
		for i, bit := range v.bits {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", bit)
		}
		b.WriteByte(']')
		return b.String()
	case KindInt:
		return fmt.Sprintf("int(%d)", v.num)
	case KindString:
		return fmt.Sprintf("string(%q)", v.str)
	case KindCode:
		return fmt.Sprintf("code(%q)", v.str)
	case KindList:
		return fmt.Sprintf("list(len=%d)", v.list.Len())
	case KindDag:
		return fmt.Sprintf("dag(args=%d)", v.dag.ArgCount())
	case KindRecord:
		return fmt.Sprintf("record(%s)", v.rec.Name())
	default:
		return "invalid"
	}
}

// MarshalJSON renders the value for diagnostics. Composite views are
// materialized by re-decoding their elements; the foreign graph is not
// mutated.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.export())
}

func (v Value) export() any {
	switch v.kind {
	case KindBit:
		return map[string]any{"kind": "bit", "value": v.bit}
	case KindBits:
		return map[string]any{"kind": "bits", "value": v.bits}
	case KindInt:
		return map[string]any{"kind": "int", "value": v.num}
	case KindString:
		return map[string]any{"kind": "string", "value": v.str}
	case KindCode:
		return map[string]any{"kind": "code", "value": v.str}
	case KindList:
		elems := []any{}
		for it := v.list.Iter(); ; {
			elem, ok := it.Next()
			if !ok {
				break
			}
			elems = append(elems, elem.export())
		}
		return map[string]any{"kind": "list", "elems": elems}
	case KindDag:
		args := []any{}
		for i := 0; i < v.dag.ArgCount(); i++ {
			arg := map[string]any{}
			if name, ok := v.dag.Name(i); ok {
				arg["name"] = name
			}
			if av, ok := v.dag.Get(i); ok {
				arg["value"] = av.export()
			}
			args = append(args, arg)
		}
		return map[string]any{"kind": "dag", "args": args}
	case KindRecord:
		return map[string]any{"kind": "record", "name": v.rec.Name()}
	default:
		return map[string]any{"kind": "invalid"}
	}
}

// lossyString converts foreign bytes to a Go string, substituting invalid
// UTF-8 sequences with U+FFFD. Valid input converts without copying twice.
func lossyString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), "�")
}
