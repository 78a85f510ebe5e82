package lilliput

// Encode returns the encoding of v with default options.
func Encode(v Value) ([]byte, error) {
	return EncodeWithOptions(v, EncodeOptions{})
}

// EncodeWithOptions returns the encoding of v.
func EncodeWithOptions(v Value, opts EncodeOptions) ([]byte, error) {
	e := NewEncoder(opts)
	if err := e.EncodeValue(v); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// Append appends the encoding of v to dst and returns the extended slice.
func Append(dst []byte, v Value) ([]byte, error) {
	return AppendWithOptions(dst, v, EncodeOptions{})
}

// AppendWithOptions appends the encoding of v to dst. On error dst is
// returned unchanged.
func AppendWithOptions(dst []byte, v Value, opts EncodeOptions) ([]byte, error) {
	e := Encoder{buf: dst, opts: opts, maxDepth: resolveMaxDepth(opts.MaxDepth)}
	if err := e.EncodeValue(v); err != nil {
		return dst, err
	}
	return e.buf, nil
}

// Decode reads exactly one value from data. Input remaining after the
// value fails with ErrTrailingBytes; use DecodePrefix for concatenated
// values.
func Decode(data []byte) (Value, error) {
	return DecodeWithOptions(data, DecodeOptions{})
}

// DecodeWithOptions reads exactly one value from data.
func DecodeWithOptions(data []byte, opts DecodeOptions) (Value, error) {
	d := NewDecoder(data, opts)
	v, err := d.DecodeValue()
	if err != nil {
		return nil, err
	}
	if d.More() {
		return nil, d.errAt(d.pos, ErrTrailingBytes)
	}
	return v, nil
}

// DecodePrefix reads the first value from data and returns the remaining
// bytes. Values are self-describing, so concatenated encodings decode
// independently by threading the rest through repeated calls.
func DecodePrefix(data []byte) (Value, []byte, error) {
	return DecodePrefixWithOptions(data, DecodeOptions{})
}

// DecodePrefixWithOptions reads the first value from data and returns the
// remaining bytes.
func DecodePrefixWithOptions(data []byte, opts DecodeOptions) (Value, []byte, error) {
	d := NewDecoder(data, opts)
	v, err := d.DecodeValue()
	if err != nil {
		return nil, nil, err
	}
	return v, data[d.pos:], nil
}

// canonicalOptions is the layout used for canonical encodings: smallest
// scalar forms, sorted map entries, no depth bound (inputs are trees the
// caller already built or decoded).
var canonicalOptions = EncodeOptions{
	FloatMode:   FloatModePack,
	SortMapKeys: true,
	MaxDepth:    MaxDepthUnbounded,
}

// Canonicalize re-encodes one value into canonical form: packed integers,
// floats narrowed where the narrowing is exact, canonical NaN, map entries
// sorted by the key total order. Equal values canonicalize to identical
// bytes, which makes the result suitable for fingerprinting and
// content-addressed storage.
func Canonicalize(data []byte) ([]byte, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return EncodeWithOptions(v, canonicalOptions)
}
