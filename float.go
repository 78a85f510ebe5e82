package lilliput

import "math"

// Canonical quiet NaN bit patterns. Every NaN is rewritten to one of these
// on encode, so re-encoding a decoded NaN is byte-identical to encoding a
// fresh one and all NaNs collapse to a single map key.
const (
	canonicalNaN64 = 0x7ff8000000000000
	canonicalNaN32 = 0x7fc00000
)

func canonicalBits64(f float64) uint64 {
	if f != f {
		return canonicalNaN64
	}
	return math.Float64bits(f)
}

func canonicalBits32(f float32) uint32 {
	if f != f {
		return canonicalNaN32
	}
	return math.Float32bits(f)
}

// floatOrderKey maps a float64 onto a uint64 whose natural ordering is the
// value total order:
//
//	-Inf < negative finite < -0.0 < +0.0 < positive finite < +Inf < NaN
//
// Non-negative values get their sign bit flipped; negative values get all
// bits flipped, which reverses their bit-pattern ordering. NaN sits above
// everything as the maximum key.
func floatOrderKey(f float64) uint64 {
	if f != f {
		return math.MaxUint64
	}
	u := math.Float64bits(f)
	return u ^ (1<<63 | uint64(int64(u)>>63))
}

// packFloat32 reports whether f survives a round trip through float32
// bit-exactly, and returns the narrowed value. NaN packs to the canonical
// 32-bit NaN.
func packFloat32(f float64) (float32, bool) {
	if f != f {
		return math.Float32frombits(canonicalNaN32), true
	}
	n := float32(f)
	if float64(n) == f {
		return n, true
	}
	return 0, false
}

// floatIdentity64 is the cross-width numeric identity of a float value:
// the canonical float64 bits of the (exactly promoted) value. Two floats
// are the same map key exactly when their identities match, which keeps
// -0.0 and +0.0 distinct and merges all NaNs.
func floatIdentity64(v Value) uint64 {
	switch f := v.(type) {
	case Float32:
		return canonicalBits64(float64(f))
	case Float64:
		return canonicalBits64(float64(f))
	}
	return 0
}
