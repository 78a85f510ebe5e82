package lilliput

import "unicode/utf8"

// Map is a collection of unique keys to values. It comes in two modes,
// selected at construction and fixed for the map's lifetime:
//
//   - insertion-ordered: iteration follows first-insertion order, and
//     overwriting a key keeps its original position;
//   - unordered: iteration order is unspecified, membership is
//     deterministic. Unordered maps encode with entries sorted by the key
//     total order, so their encoding is canonical.
//
// Both modes insert and look up in O(1) amortized. Key identity is
// numeric where the kinds allow it: Int(5) and Uint(5) collide, as do a
// Float32 and Float64 carrying the same number. All NaN keys are one key;
// -0.0 and +0.0 are distinct.
type Map struct {
	entries []MapEntry
	index   map[keyID]int
	ordered bool
}

// MapEntry is one key-value pair of a Map.
type MapEntry struct {
	Key   Value
	Value Value
}

// NewMap returns an empty unordered map.
func NewMap() *Map {
	return &Map{index: make(map[keyID]int)}
}

// NewOrderedMap returns an empty insertion-ordered map.
func NewOrderedMap() *Map {
	return &Map{index: make(map[keyID]int), ordered: true}
}

func newMapSized(ordered bool, n int) *Map {
	return &Map{
		entries: make([]MapEntry, 0, n),
		index:   make(map[keyID]int, n),
		ordered: ordered,
	}
}

// Ordered reports whether the map preserves insertion order.
func (m *Map) Ordered() bool { return m != nil && m.ordered }

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Set inserts or overwrites the value under k. Overwriting keeps the key's
// first-insertion position. The key must be acyclic; a key containing an
// invalid UTF-8 string is rejected.
func (m *Map) Set(k, v Value) error {
	return m.set(k, v, keyIdentityOptions, false)
}

// setStrict is Set but fails with ErrDuplicateKey when k is present.
func (m *Map) setStrict(k, v Value) error {
	return m.set(k, v, keyIdentityOptions, true)
}

func (m *Map) set(k, v Value, idOpts EncodeOptions, strict bool) error {
	id, err := keyIDOf(k, idOpts)
	if err != nil {
		return err
	}
	if m.index == nil {
		m.index = make(map[keyID]int)
	}
	if i, ok := m.index[id]; ok {
		if strict {
			return ErrDuplicateKey
		}
		m.entries[i].Value = v
		return nil
	}
	m.index[id] = len(m.entries)
	m.entries = append(m.entries, MapEntry{Key: k, Value: v})
	return nil
}

// Get returns the value under k. Keys that cannot be identified (cyclic or
// carrying invalid UTF-8) are never present.
func (m *Map) Get(k Value) (Value, bool) {
	if m == nil {
		return nil, false
	}
	id, err := keyIDOf(k, keyIdentityOptions)
	if err != nil {
		return nil, false
	}
	i, ok := m.index[id]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Has reports whether k is present.
func (m *Map) Has(k Value) bool {
	_, ok := m.Get(k)
	return ok
}

// Entries returns the entries in insertion order. The slice is the map's
// own storage; treat it as read-only.
func (m *Map) Entries() []MapEntry {
	if m == nil {
		return nil
	}
	return m.entries
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *Map) Range(fn func(k, v Value) bool) {
	if m == nil {
		return
	}
	for _, e := range m.entries {
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

// keyID is a comparable identity for a map key. Scalars identify inline;
// sequence and map keys identify by their canonical encoding.
type keyID struct {
	kind Kind
	neg  bool
	num  uint64
	str  string
}

// keyIdentityOptions is the canonical layout with the depth bound left in
// place: identifying a cyclic key fails instead of recursing forever.
var keyIdentityOptions = EncodeOptions{FloatMode: FloatModePack, SortMapKeys: true}

func keyIDOf(k Value, idOpts EncodeOptions) (keyID, error) {
	switch k := k.(type) {
	case nil, Null:
		return keyID{kind: KindNull}, nil
	case Bool:
		id := keyID{kind: KindBool}
		if k {
			id.num = 1
		}
		return id, nil
	case Int:
		neg, mag := k.intParts()
		return keyID{kind: KindInt, neg: neg, num: mag}, nil
	case Uint:
		return keyID{kind: KindInt, num: uint64(k)}, nil
	case Float32, Float64:
		return keyID{kind: KindFloat, num: floatIdentity64(k)}, nil
	case Bytes:
		return keyID{kind: KindBytes, str: string(k)}, nil
	case String:
		if !utf8.ValidString(string(k)) {
			return keyID{}, ErrInvalidUTF8
		}
		return keyID{kind: KindString, str: string(k)}, nil
	default:
		enc, err := EncodeWithOptions(k, idOpts)
		if err != nil {
			return keyID{}, err
		}
		return keyID{kind: k.Kind(), str: string(enc)}, nil
	}
}
