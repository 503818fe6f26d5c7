package memdb

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/recgenlabs/recgen"
	"github.com/recgenlabs/recgen/errors"
)

// Format selects the fixture encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// Fixture file shapes. A value node must set exactly one variant key.

type fixtureFile struct {
	Records []fixtureRecord `json:"records" yaml:"records"`
}

type fixtureRecord struct {
	Name   string         `json:"name" yaml:"name"`
	Fields []fixtureField `json:"fields" yaml:"fields"`
}

type fixtureField struct {
	Name  string       `json:"name" yaml:"name"`
	Value fixtureValue `json:"value" yaml:"value"`
}

type fixtureValue struct {
	Bit     *int8          `json:"bit,omitempty" yaml:"bit,omitempty"`
	Bits    []int8         `json:"bits,omitempty" yaml:"bits,omitempty"`
	Int     *int64         `json:"int,omitempty" yaml:"int,omitempty"`
	Str     *string        `json:"string,omitempty" yaml:"string,omitempty"`
	Code    *string        `json:"code,omitempty" yaml:"code,omitempty"`
	List    []fixtureValue `json:"list,omitempty" yaml:"list,omitempty"`
	Dag     []fixtureArg   `json:"dag,omitempty" yaml:"dag,omitempty"`
	Record  *string        `json:"record,omitempty" yaml:"record,omitempty"`
	Unknown bool           `json:"unknown,omitempty" yaml:"unknown,omitempty"`
}

type fixtureArg struct {
	Name  string       `json:"name,omitempty" yaml:"name,omitempty"`
	Value fixtureValue `json:"value" yaml:"value"`
}

// LoadFixture reads a fixture file and builds a database from it. The
// format is chosen by extension: .json, or .yaml/.yml.
func LoadFixture(path string) (*DB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "read fixture")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseFixture(data, FormatJSON)
	case ".yaml", ".yml":
		return ParseFixture(data, FormatYAML)
	default:
		return nil, errors.Unsupported(errors.PhaseLoad, "fixture extension "+filepath.Ext(path))
	}
}

// ParseFixture builds a database from fixture data. Records are created in
// file order before any field is populated, so record references may point
// forward.
func ParseFixture(data []byte, format Format) (*DB, error) {
	var file fixtureFile
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "parse JSON fixture")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "parse YAML fixture")
		}
	default:
		return nil, errors.Unsupported(errors.PhaseLoad, "fixture format")
	}

	db := New()
	for _, rec := range file.Records {
		db.NewRecord(rec.Name)
	}

	for _, rec := range file.Records {
		rh, _ := db.Lookup(rec.Name)
		for _, f := range rec.Fields {
			vh, err := buildValue(db, f.Value, []string{rec.Name, f.Name})
			if err != nil {
				return nil, err
			}
			db.AddField(rh, f.Name, vh)
		}
	}

	Logger().Debug("fixture loaded",
		zap.Int("records", len(db.records)),
		zap.Int("values", len(db.values)))

	return db, nil
}

func buildValue(db *DB, fv fixtureValue, path []string) (recgen.ValueHandle, error) {
	variants := 0
	if fv.Bit != nil {
		variants++
	}
	if fv.Bits != nil {
		variants++
	}
	if fv.Int != nil {
		variants++
	}
	if fv.Str != nil {
		variants++
	}
	if fv.Code != nil {
		variants++
	}
	if fv.List != nil {
		variants++
	}
	if fv.Dag != nil {
		variants++
	}
	if fv.Record != nil {
		variants++
	}
	if fv.Unknown {
		variants++
	}
	if variants != 1 {
		return 0, errors.InvalidData(errors.PhaseLoad, path,
			"value node must set exactly one variant, has "+strconv.Itoa(variants))
	}

	switch {
	case fv.Bit != nil:
		return db.Bit(*fv.Bit), nil
	case fv.Bits != nil:
		return db.Bits(fv.Bits...), nil
	case fv.Int != nil:
		return db.Int(*fv.Int), nil
	case fv.Str != nil:
		return db.Str(*fv.Str), nil
	case fv.Code != nil:
		return db.Code(*fv.Code), nil
	case fv.List != nil:
		elems := make([]recgen.ValueHandle, len(fv.List))
		for i, ev := range fv.List {
			eh, err := buildValue(db, ev, append(path, "["+strconv.Itoa(i)+"]"))
			if err != nil {
				return 0, err
			}
			elems[i] = eh
		}
		return db.List(elems...), nil
	case fv.Dag != nil:
		args := make([]DagArg, len(fv.Dag))
		for i, arg := range fv.Dag {
			ah, err := buildValue(db, arg.Value, append(path, "["+strconv.Itoa(i)+"]"))
			if err != nil {
				return 0, err
			}
			args[i] = DagArg{Name: arg.Name, Value: ah}
		}
		return db.Dag(args...), nil
	case fv.Record != nil:
		rh, ok := db.Lookup(*fv.Record)
		if !ok {
			return 0, errors.NotFound(errors.PhaseLoad, "record", *fv.Record)
		}
		return db.RecordRef(rh), nil
	default:
		return db.Unknown(), nil
	}
}
