package value

import (
	"github.com/recgenlabs/recgen"
	"github.com/recgenlabs/recgen/errors"
)

// Decode translates one foreign value handle into an owned Value. The
// foreign side is queried for the handle's runtime tag and the matching
// variant is produced:
//
//   - bit values outside {0, 1} fail with a bit_range error, never clamped
//   - bit vectors are copied element by element into an owned slice; the
//     transient foreign buffer is released exactly once on every path, and
//     an empty or null buffer fails with a null_pointer error
//   - strings and code blocks transfer ownership of a foreign buffer which
//     is likewise released exactly once; invalid UTF-8 is substituted
//   - lists and dags are wrapped in lazy views, nothing is traversed
//   - record values resolve to a record reference
//   - unrecognized tags decode to the invalid variant, never an error, so
//     tags added by future foreign versions pass through harmlessly
//
// Decode never caches and never writes to the foreign side.
func Decode(src recgen.Source, h recgen.ValueHandle) (Value, error) {
	switch src.TypeTag(h) {
	case recgen.TagBit:
		raw := src.BitValue(h)
		if raw != 0 && raw != 1 {
			return Value{}, errors.BitRange(nil, raw)
		}
		return Value{kind: KindBit, bit: raw}, nil

	case recgen.TagBits:
		return decodeBits(src, h)

	case recgen.TagInt:
		return Value{kind: KindInt, num: src.IntValue(h)}, nil

	case recgen.TagString:
		s, err := decodeString(src, h)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindString, str: s}, nil

	case recgen.TagCode:
		s, err := decodeString(src, h)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindCode, str: s}, nil

	case recgen.TagList:
		return Value{kind: KindList, list: List{src: src, h: h}}, nil

	case recgen.TagDag:
		return Value{kind: KindDag, dag: Dag{src: src, h: h}}, nil

	case recgen.TagRecord:
		rec := Record{src: src, h: src.RecordValue(h)}
		return Value{kind: KindRecord, rec: rec}, nil

	default:
		return Value{}, nil
	}
}

func decodeBits(src recgen.Source, h recgen.ValueHandle) (Value, error) {
	buf, n := src.BitsValue(h)
	if buf == nil {
		return Value{}, errors.NullPointer(nil, "bit array buffer is null")
	}
	defer buf.Free()

	if n == 0 {
		return Value{}, errors.NullPointer(nil, "bit array is empty")
	}

	bits := make([]int8, n)
	for i := range bits {
		bits[i] = buf.At(i)
	}
	return Value{kind: KindBits, bits: bits}, nil
}

func decodeString(src recgen.Source, h recgen.ValueHandle) (string, error) {
	buf := src.StringValue(h)
	if buf == nil {
		return "", errors.NullPointer(nil, "string buffer is null")
	}
	defer buf.Free()

	return lossyString(buf.Bytes()), nil
}
