package value

import (
	"github.com/recgenlabs/recgen/errors"
)

// Shape is the set of concrete Go shapes a Value can narrow into.
type Shape interface {
	int8 | []int8 | int64 | string | List | Dag | Record
}

// As narrows v into the concrete shape T. It succeeds only when the active
// variant matches T exactly, except that string accepts both the string and
// code variants since both carry character data. On mismatch the returned
// type_mismatch error carries the rejected value for diagnostics.
func As[T Shape](v Value) (T, error) {
	var out T
	var ok bool
	var want string

	switch p := any(&out).(type) {
	case *int8:
		want = "bit"
		*p, ok = v.Bit()
	case *[]int8:
		want = "bits"
		*p, ok = v.Bits()
	case *int64:
		want = "int"
		*p, ok = v.Int()
	case *string:
		want = "string"
		if *p, ok = v.Str(); !ok {
			*p, ok = v.Code()
		}
	case *List:
		want = "list"
		*p, ok = v.AsList()
	case *Dag:
		want = "dag"
		*p, ok = v.AsDag()
	case *Record:
		want = "record"
		*p, ok = v.AsRecord()
	}

	if !ok {
		var zero T
		return zero, errors.TypeMismatch(v.kind.String(), want, v)
	}
	return out, nil
}
