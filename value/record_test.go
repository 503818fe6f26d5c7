package value

import (
	stderrors "errors"
	"testing"

	"github.com/recgenlabs/recgen/errors"
	"github.com/recgenlabs/recgen/memdb"
)

func testRecord(db *memdb.DB) Record {
	rh := db.NewRecord("Inst")
	db.AddField(rh, "opcode", db.Int(13))
	db.AddField(rh, "mask", db.Bits(1, 0, 1))
	db.AddField(rh, "mnemonic", db.Str("add"))
	return Record{src: db, h: rh}
}

func TestRecord_Name(t *testing.T) {
	db := memdb.New()
	rec := testRecord(db)

	if rec.Name() != "Inst" {
		t.Errorf("expected Inst, got %q", rec.Name())
	}
}

func TestRecord_Fields(t *testing.T) {
	db := memdb.New()
	rec := testRecord(db)

	if rec.NumFields() != 3 {
		t.Fatalf("expected 3 fields, got %d", rec.NumFields())
	}

	var names []string
	for it := rec.Fields(); ; {
		name, _, ok := it.Next()
		if !ok {
			break
		}
		names = append(names, name)
	}

	want := []string{"opcode", "mask", "mnemonic"}
	if len(names) != len(want) {
		t.Fatalf("expected %d pairs, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("field %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}

func TestRecord_FieldIndexed(t *testing.T) {
	db := memdb.New()
	rec := testRecord(db)

	name, ok := rec.FieldName(0)
	if !ok || name != "opcode" {
		t.Errorf("FieldName(0): expected opcode, got %q (ok=%v)", name, ok)
	}
	v, ok := rec.Field(0)
	if !ok {
		t.Fatal("Field(0) failed")
	}
	if n, _ := v.Int(); n != 13 {
		t.Errorf("expected 13, got %d", n)
	}

	if _, ok := rec.FieldName(3); ok {
		t.Error("FieldName past end should fail")
	}
	if _, ok := rec.Field(3); ok {
		t.Error("Field past end should fail")
	}
}

func TestRecord_Get(t *testing.T) {
	db := memdb.New()
	rec := testRecord(db)

	v, err := rec.Get("mnemonic")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s, _ := v.Str(); s != "add" {
		t.Errorf("expected add, got %q", s)
	}

	_, err = rec.Get("missing")
	if err == nil {
		t.Fatal("expected error for absent field")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseRecord, Kind: errors.KindNotFound}) {
		t.Errorf("expected not_found error, got %v", err)
	}
}

func TestRecord_GetPropagatesDecodeError(t *testing.T) {
	db := memdb.New()
	rh := db.NewRecord("Bad")
	db.AddField(rh, "flag", db.Bit(7))
	rec := Record{src: db, h: rh}

	_, err := rec.Get("flag")
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindBitRange}) {
		t.Errorf("expected bit_range error, got %v", err)
	}
}

func TestRecord_ViaDecode(t *testing.T) {
	db := memdb.New()
	base := db.NewRecord("Base")
	db.AddField(base, "width", db.Int(32))

	derived := db.NewRecord("Derived")
	db.AddField(derived, "parent", db.RecordRef(base))

	rec := Record{src: db, h: derived}
	v, err := rec.Get("parent")
	if err != nil {
		t.Fatalf("Get parent failed: %v", err)
	}
	parent, ok := v.AsRecord()
	if !ok {
		t.Fatalf("expected record, got %s", v.Kind())
	}
	if parent.Name() != "Base" {
		t.Errorf("expected Base, got %q", parent.Name())
	}
	w, err := parent.Get("width")
	if err != nil {
		t.Fatalf("Get width failed: %v", err)
	}
	if n, _ := w.Int(); n != 32 {
		t.Errorf("expected 32, got %d", n)
	}
}
