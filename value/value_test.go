package value

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/recgenlabs/recgen"
	"github.com/recgenlabs/recgen/memdb"
)

func TestValue_String(t *testing.T) {
	db := memdb.New()

	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"bit", mustDecode(t, db, db.Bit(1)), "bit(1)"},
		{"bits", mustDecode(t, db, db.Bits(1, 0, 1)), "bits[1 0 1]"},
		{"int", mustDecode(t, db, db.Int(-7)), "int(-7)"},
		{"string", mustDecode(t, db, db.Str("hi")), `string("hi")`},
		{"code", mustDecode(t, db, db.Code("x")), `code("x")`},
		{"list", mustDecode(t, db, db.List(db.Int(1), db.Int(2))), "list(len=2)"},
		{"invalid", mustDecode(t, db, db.Unknown()), "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValue_ZeroIsInvalid(t *testing.T) {
	var v Value
	if v.Kind() != KindInvalid {
		t.Errorf("zero Value kind: expected invalid, got %s", v.Kind())
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	db := memdb.New()
	dh := db.Dag(
		memdb.DagArg{Name: "lhs", Value: db.Int(5)},
		memdb.DagArg{Value: db.List(db.Bit(1), db.Str("a"))},
	)

	v := mustDecode(t, db, dh)
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	for _, s := range []string{`"kind":"dag"`, `"name":"lhs"`, `"kind":"list"`, `"kind":"bit"`} {
		if !strings.Contains(string(data), s) {
			t.Errorf("JSON %s does not contain %s", data, s)
		}
	}

	// Diagnostic marshaling must not leak transient buffers either.
	if db.OutstandingBuffers() != 0 {
		t.Errorf("leaked %d buffers during marshal", db.OutstandingBuffers())
	}
}

func TestKind_String(t *testing.T) {
	if KindBits.String() != "bits" {
		t.Errorf("KindBits: %q", KindBits.String())
	}
	if Kind(200).String() != "unknown" {
		t.Errorf("out-of-range kind: %q", Kind(200).String())
	}
	if !KindList.IsComposite() || !KindDag.IsComposite() {
		t.Error("list and dag are composite")
	}
	if KindInt.IsComposite() {
		t.Error("int is not composite")
	}
}

func mustDecode(t *testing.T, db *memdb.DB, h recgen.ValueHandle) Value {
	t.Helper()
	v, err := Decode(db, h)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return v
}
