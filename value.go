package lilliput

// Kind identifies a value's variant. Int covers both Int and Uint, Float
// covers both widths.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindBytes
	KindString
	KindSeq
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindSeq:
		return "seq"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// Value is the closed union of everything the format can represent:
// Null, Bool, Int, Uint, Float32, Float64, Bytes, String, Seq and *Map.
// The format is closed by design, so no other implementations exist.
//
// Numeric identity crosses representation: Equal and Compare treat Int(5)
// and Uint(5) as the same value, and Float32 and Float64 carrying the same
// number likewise. Map keys follow the same identity.
type Value interface {
	Kind() Kind
	isValue()
}

// Null is the absent value.
type Null struct{}

// Bool is a boolean value.
type Bool bool

// Int is a signed integer value. Decoding yields Int only for negative
// values; non-negative integers decode as Uint regardless of how they were
// produced, since the wire form does not distinguish them.
type Int int64

// Uint is an unsigned integer value.
type Uint uint64

// Float32 is a 32-bit floating-point value.
type Float32 float32

// Float64 is a 64-bit floating-point value.
type Float64 float64

// Bytes is a raw octet sequence.
type Bytes []byte

// String is a UTF-8 string. Go permits constructing one from invalid
// UTF-8; encoding rejects such values with ErrInvalidUTF8.
type String string

// Seq is an ordered sequence of values.
type Seq []Value

func (Null) Kind() Kind    { return KindNull }
func (Bool) Kind() Kind    { return KindBool }
func (Int) Kind() Kind     { return KindInt }
func (Uint) Kind() Kind    { return KindInt }
func (Float32) Kind() Kind { return KindFloat }
func (Float64) Kind() Kind { return KindFloat }
func (Bytes) Kind() Kind   { return KindBytes }
func (String) Kind() Kind  { return KindString }
func (Seq) Kind() Kind     { return KindSeq }
func (*Map) Kind() Kind    { return KindMap }

func (Null) isValue()    {}
func (Bool) isValue()    {}
func (Int) isValue()     {}
func (Uint) isValue()    {}
func (Float32) isValue() {}
func (Float64) isValue() {}
func (Bytes) isValue()   {}
func (String) isValue()  {}
func (Seq) isValue()     {}
func (*Map) isValue()    {}

// intParts splits an integer value into the wire representation: a sign
// and a magnitude, where a negative value v has magnitude -1-v. The
// mapping covers the full 64-bit signed and unsigned ranges.
func (v Int) intParts() (neg bool, mag uint64) {
	if v < 0 {
		return true, uint64(^v)
	}
	return false, uint64(v)
}

func (v Uint) intParts() (neg bool, mag uint64) { return false, uint64(v) }
