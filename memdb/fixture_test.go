package memdb

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/recgenlabs/recgen/errors"
)

const jsonFixture = `{
  "records": [
    {
      "name": "Add",
      "fields": [
        {"name": "opcode", "value": {"int": 13}},
        {"name": "mask", "value": {"bits": [1, 0, 1]}},
        {"name": "mnemonic", "value": {"string": "add"}},
        {"name": "body", "value": {"code": "a + b"}},
        {"name": "flag", "value": {"bit": 1}},
        {"name": "operands", "value": {"list": [{"int": 1}, {"int": 2}]}},
        {"name": "pattern", "value": {"dag": [
          {"name": "lhs", "value": {"int": 5}},
          {"value": {"int": 6}}
        ]}},
        {"name": "base", "value": {"record": "Base"}}
      ]
    },
    {"name": "Base", "fields": [{"name": "width", "value": {"int": 32}}]}
  ]
}`

const yamlFixture = `
records:
  - name: Add
    fields:
      - name: opcode
        value: { int: 13 }
      - name: mask
        value: { bits: [1, 0, 1] }
      - name: mnemonic
        value: { string: add }
      - name: body
        value: { code: a + b }
      - name: flag
        value: { bit: 1 }
      - name: operands
        value:
          list:
            - { int: 1 }
            - { int: 2 }
      - name: pattern
        value:
          dag:
            - name: lhs
              value: { int: 5 }
            - value: { int: 6 }
      - name: base
        value: { record: Base }
  - name: Base
    fields:
      - name: width
        value: { int: 32 }
`

func checkFixtureDB(t *testing.T, db *DB) {
	t.Helper()

	if db.NumRecords() != 2 {
		t.Fatalf("expected 2 records, got %d", db.NumRecords())
	}
	add, ok := db.Lookup("Add")
	if !ok {
		t.Fatal("record Add missing")
	}
	if db.RecordNumFields(add) != 8 {
		t.Fatalf("expected 8 fields, got %d", db.RecordNumFields(add))
	}

	if vh := db.RecordGet(add, []byte("opcode")); db.IntValue(vh) != 13 {
		t.Error("opcode: wrong value")
	}
	if vh := db.RecordGet(add, []byte("operands")); db.ListLen(vh) != 2 {
		t.Error("operands: wrong length")
	}
	pattern := db.RecordGet(add, []byte("pattern"))
	if db.DagArgCount(pattern) != 2 {
		t.Error("pattern: wrong arg count")
	}
	if db.DagArgName(pattern, 1) != nil {
		t.Error("pattern arg 1 should be unnamed")
	}
	base := db.RecordGet(add, []byte("base"))
	rh := db.RecordValue(base)
	if string(db.RecordName(rh)) != "Base" {
		t.Errorf("base record: %q", db.RecordName(rh))
	}
}

func TestParseFixture_JSON(t *testing.T) {
	db, err := ParseFixture([]byte(jsonFixture), FormatJSON)
	if err != nil {
		t.Fatalf("ParseFixture failed: %v", err)
	}
	checkFixtureDB(t, db)
}

func TestParseFixture_YAML(t *testing.T) {
	db, err := ParseFixture([]byte(yamlFixture), FormatYAML)
	if err != nil {
		t.Fatalf("ParseFixture failed: %v", err)
	}
	checkFixtureDB(t, db)
}

func TestParseFixture_ForwardRecordRef(t *testing.T) {
	// Add references Base, declared later in the file; the two-pass build
	// must resolve it.
	db, err := ParseFixture([]byte(jsonFixture), FormatJSON)
	if err != nil {
		t.Fatalf("ParseFixture failed: %v", err)
	}
	if _, ok := db.Lookup("Base"); !ok {
		t.Fatal("forward-referenced record missing")
	}
}

func TestParseFixture_TwoVariants(t *testing.T) {
	_, err := ParseFixture([]byte(`{"records":[{"name":"X","fields":[
		{"name":"f","value":{"int": 1, "string": "s"}}]}]}`), FormatJSON)
	if err == nil {
		t.Fatal("expected error for two variants on one node")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindInvalidData}) {
		t.Errorf("expected invalid_data error, got %v", err)
	}
}

func TestParseFixture_UnknownRecordRef(t *testing.T) {
	_, err := ParseFixture([]byte(`{"records":[{"name":"X","fields":[
		{"name":"f","value":{"record": "Nope"}}]}]}`), FormatJSON)
	if err == nil {
		t.Fatal("expected error for unknown record reference")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindNotFound}) {
		t.Errorf("expected not_found error, got %v", err)
	}
}

func TestParseFixture_BadSyntax(t *testing.T) {
	if _, err := ParseFixture([]byte("{"), FormatJSON); err == nil {
		t.Error("expected JSON syntax error")
	}
	if _, err := ParseFixture([]byte(":\t:"), FormatYAML); err == nil {
		t.Error("expected YAML syntax error")
	}
}

func TestLoadFixture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.json")
	if err := os.WriteFile(path, []byte(jsonFixture), 0o644); err != nil {
		t.Fatal(err)
	}

	db, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture failed: %v", err)
	}
	checkFixtureDB(t, db)
}

func TestLoadFixture_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.toml")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFixture(path)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindUnsupported}) {
		t.Errorf("expected unsupported error, got %v", err)
	}
}

func TestLoadFixture_Missing(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
