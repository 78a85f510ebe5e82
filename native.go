package lilliput

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FromNative converts a plain Go value into a Value tree. It accepts the
// types produced by encoding/json plus the obvious Go scalars: nil, bool,
// the fixed-width integer types, float32/float64, string, []byte, []any,
// map[string]any and map[any]any. Values pass through unchanged.
func FromNative(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(x), nil
	case int8:
		return Int(x), nil
	case int16:
		return Int(x), nil
	case int32:
		return Int(x), nil
	case int64:
		return Int(x), nil
	case uint:
		return Uint(x), nil
	case uint8:
		return Uint(x), nil
	case uint16:
		return Uint(x), nil
	case uint32:
		return Uint(x), nil
	case uint64:
		return Uint(x), nil
	case float32:
		return Float32(x), nil
	case float64:
		return Float64(x), nil
	case string:
		return String(x), nil
	case []byte:
		return Bytes(x), nil
	case json.Number:
		return numberValue(x)
	case []Value:
		return Seq(x), nil
	case []any:
		out := make(Seq, 0, len(x))
		for i, e := range x {
			ev, err := FromNative(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out = append(out, ev)
		}
		return out, nil
	case map[string]any:
		m := NewMap()
		for k, e := range x {
			ev, err := FromNative(e)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			if err := m.Set(String(k), ev); err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
		}
		return m, nil
	case map[any]any:
		m := NewMap()
		for k, e := range x {
			kv, err := FromNative(k)
			if err != nil {
				return nil, fmt.Errorf("map key: %w", err)
			}
			ev, err := FromNative(e)
			if err != nil {
				return nil, fmt.Errorf("key %v: %w", k, err)
			}
			if err := m.Set(kv, ev); err != nil {
				return nil, fmt.Errorf("map key: %w", err)
			}
		}
		return m, nil
	default:
		return nil, fmt.Errorf("lilliput: cannot convert %T", v)
	}
}

// numberValue keeps json.Number integers exact and falls back to float64
// only when the literal carries a fraction or exponent.
func numberValue(n json.Number) (Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return Int(i), nil
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return Uint(u), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("lilliput: bad number %q: %w", s, err)
	}
	return Float64(f), nil
}

// ToNative converts a Value tree into plain Go values: nil, bool, int64,
// uint64, float32, float64, string, []byte, []any and map[string]any.
// Non-string map keys are rendered in diagnostic notation so the result
// always fits map[string]any.
func ToNative(v Value) any {
	switch x := v.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(x)
	case Int:
		return int64(x)
	case Uint:
		return uint64(x)
	case Float32:
		return float32(x)
	case Float64:
		return float64(x)
	case String:
		return string(x)
	case Bytes:
		return []byte(x)
	case Seq:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = ToNative(e)
		}
		return out
	case *Map:
		out := make(map[string]any, x.Len())
		x.Range(func(k, e Value) bool {
			name, ok := k.(String)
			if ok {
				out[string(name)] = ToNative(e)
			} else {
				out[diagnostic(k)] = ToNative(e)
			}
			return true
		})
		return out
	default:
		return nil
	}
}
