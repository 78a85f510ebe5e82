package lilliput

import (
	"bytes"
	"cmp"
	"slices"
	"strings"
)

// Equal reports whether two values are the same under the format's
// identity: numeric across integer signedness and float width, all NaNs
// equal, -0.0 distinct from +0.0, maps equal on membership regardless of
// order mode. A nil Value counts as Null.
func Equal(a, b Value) bool {
	if a == nil {
		a = Null{}
	}
	if b == nil {
		b = Null{}
	}
	ka, kb := a.Kind(), b.Kind()
	if ka != kb {
		return false
	}
	switch ka {
	case KindNull:
		return true
	case KindBool:
		return a.(Bool) == b.(Bool)
	case KindInt:
		negA, magA := intPartsOf(a)
		negB, magB := intPartsOf(b)
		return negA == negB && magA == magB
	case KindFloat:
		return floatIdentity64(a) == floatIdentity64(b)
	case KindBytes:
		return bytes.Equal(a.(Bytes), b.(Bytes))
	case KindString:
		return a.(String) == b.(String)
	case KindSeq:
		sa, sb := a.(Seq), b.(Seq)
		if len(sa) != len(sb) {
			return false
		}
		for i := range sa {
			if !Equal(sa[i], sb[i]) {
				return false
			}
		}
		return true
	case KindMap:
		ma, mb := a.(*Map), b.(*Map)
		if ma.Len() != mb.Len() {
			return false
		}
		// Walk both entry sets in the key total order. Entries within one
		// map are unique, so equal sorted walks mean equal membership.
		ea, eb := ma.sortedEntries(), mb.sortedEntries()
		for i := range ea {
			if !Equal(ea[i].Key, eb[i].Key) || !Equal(ea[i].Value, eb[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// Compare defines a deterministic total order over all values, used for
// sorted (canonical) map encoding and usable for key comparison. Kinds
// order as Null < Bool < Int < Float < Bytes < String < Seq < Map; floats
// follow the total order -Inf < negative < -0.0 < +0.0 < positive < +Inf
// < NaN; integers order numerically across signedness; sequences and maps
// order lexicographically (maps over their sorted entries). Compare
// returns 0 exactly when Equal returns true.
func Compare(a, b Value) int {
	if a == nil {
		a = Null{}
	}
	if b == nil {
		b = Null{}
	}
	ka, kb := a.Kind(), b.Kind()
	if ka != kb {
		return cmp.Compare(ka, kb)
	}
	switch ka {
	case KindNull:
		return 0
	case KindBool:
		x, y := a.(Bool), b.(Bool)
		if x == y {
			return 0
		}
		if !x {
			return -1
		}
		return 1
	case KindInt:
		return compareInts(a, b)
	case KindFloat:
		return cmp.Compare(orderKeyOf(a), orderKeyOf(b))
	case KindBytes:
		return bytes.Compare(a.(Bytes), b.(Bytes))
	case KindString:
		return strings.Compare(string(a.(String)), string(b.(String)))
	case KindSeq:
		sa, sb := a.(Seq), b.(Seq)
		for i := 0; i < len(sa) && i < len(sb); i++ {
			if c := Compare(sa[i], sb[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(sa), len(sb))
	case KindMap:
		ea, eb := a.(*Map).sortedEntries(), b.(*Map).sortedEntries()
		for i := 0; i < len(ea) && i < len(eb); i++ {
			if c := Compare(ea[i].Key, eb[i].Key); c != 0 {
				return c
			}
			if c := Compare(ea[i].Value, eb[i].Value); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(ea), len(eb))
	}
	return 0
}

func intPartsOf(v Value) (neg bool, mag uint64) {
	switch v := v.(type) {
	case Int:
		return v.intParts()
	case Uint:
		return v.intParts()
	}
	return false, 0
}

func compareInts(a, b Value) int {
	negA, magA := intPartsOf(a)
	negB, magB := intPartsOf(b)
	if negA != negB {
		if negA {
			return -1
		}
		return 1
	}
	if negA {
		// Larger magnitude means further below zero.
		return cmp.Compare(magB, magA)
	}
	return cmp.Compare(magA, magB)
}

func orderKeyOf(v Value) uint64 {
	switch f := v.(type) {
	case Float32:
		return floatOrderKey(float64(f))
	case Float64:
		return floatOrderKey(float64(f))
	}
	return 0
}

// sortedEntries returns the entries ordered by the key total order.
func (m *Map) sortedEntries() []MapEntry {
	if m.Len() == 0 {
		return nil
	}
	es := slices.Clone(m.entries)
	slices.SortFunc(es, func(a, b MapEntry) int {
		return Compare(a.Key, b.Key)
	})
	return es
}
