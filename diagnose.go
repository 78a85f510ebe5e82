package lilliput

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
)

// Diagnose decodes data and renders it in diagnostic notation, a JSON-like
// text form for humans: null, true, 42, "text", h'6a6b', [1, 2], {"a": 1}.
// Map entries appear in wire order. The output is for inspection only and
// is not a parseable interchange format.
func Diagnose(data []byte) (string, error) {
	v, err := DecodeWithOptions(data, DecodeOptions{PreserveOrder: true})
	if err != nil {
		return "", err
	}
	return diagnostic(v), nil
}

func diagnostic(v Value) string {
	var b strings.Builder
	writeDiagnostic(&b, v)
	return b.String()
}

func writeDiagnostic(b *strings.Builder, v Value) {
	switch x := v.(type) {
	case nil, Null:
		b.WriteString("null")
	case Bool:
		if x {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Int:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case Uint:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case Float32:
		writeDiagnosticFloat(b, float64(x), 32)
	case Float64:
		writeDiagnosticFloat(b, float64(x), 64)
	case Bytes:
		b.WriteString("h'")
		b.WriteString(hex.EncodeToString(x))
		b.WriteString("'")
	case String:
		b.WriteString(strconv.Quote(string(x)))
	case Seq:
		b.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				b.WriteString(", ")
			}
			writeDiagnostic(b, e)
		}
		b.WriteByte(']')
	case *Map:
		b.WriteByte('{')
		first := true
		x.Range(func(k, e Value) bool {
			if !first {
				b.WriteString(", ")
			}
			first = false
			writeDiagnostic(b, k)
			b.WriteString(": ")
			writeDiagnostic(b, e)
			return true
		})
		b.WriteByte('}')
	}
}

func writeDiagnosticFloat(b *strings.Builder, f float64, bits int) {
	switch {
	case math.IsNaN(f):
		b.WriteString("NaN")
	case math.IsInf(f, 1):
		b.WriteString("Infinity")
	case math.IsInf(f, -1):
		b.WriteString("-Infinity")
	default:
		s := strconv.FormatFloat(f, 'g', -1, bits)
		b.WriteString(s)
		// Keep floats visually distinct from integers.
		if !strings.ContainsAny(s, ".eE") {
			b.WriteString(".0")
		}
	}
}

func (Null) String() string      { return "null" }
func (v Bool) String() string    { return diagnostic(v) }
func (v Int) String() string     { return diagnostic(v) }
func (v Uint) String() string    { return diagnostic(v) }
func (v Float32) String() string { return diagnostic(v) }
func (v Float64) String() string { return diagnostic(v) }
func (v Bytes) String() string   { return diagnostic(v) }
func (v String) String() string  { return diagnostic(v) }
func (v Seq) String() string     { return diagnostic(v) }
func (m *Map) String() string    { return diagnostic(m) }
