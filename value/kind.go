package value

// Kind identifies the active variant of a decoded Value. It is fixed at
// decode time from the foreign runtime tag and never changes afterwards.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBit
	KindBits
	KindCode
	KindInt
	KindString
	KindList
	KindDag
	KindRecord
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBit:     "bit",
	KindBits:    "bits",
	KindCode:    "code",
	KindInt:     "int",
	KindString:  "string",
	KindList:    "list",
	KindDag:     "dag",
	KindRecord:  "record",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsComposite reports whether the kind is a lazily traversed view rather
// than an owned scalar.
func (k Kind) IsComposite() bool {
	return k == KindList || k == KindDag
}
