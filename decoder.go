package lilliput

import "fmt"

// Decoder reads values from a caller-supplied byte slice, tracking its
// position for error reporting and for concatenated-value streams. It
// exposes both the whole-value path (DecodeValue) and the streaming
// primitives (PeekKind, typed scalar reads, container header reads, Skip)
// that let a caller walk input without building a Value tree.
//
// All failures are typed: the input never causes a panic or an
// out-of-bounds access, only a DecodeError. After an error the cursor
// position is unspecified and the Decoder should be discarded.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	data     []byte
	pos      int
	depth    int
	maxDepth int
	opts     DecodeOptions
}

// NewDecoder returns a Decoder over data. The Decoder does not copy data;
// decoded Bytes and String values do not alias it.
func NewDecoder(data []byte, opts DecodeOptions) *Decoder {
	return &Decoder{data: data, opts: opts, maxDepth: resolveMaxDepth(opts.MaxDepth)}
}

// Pos returns the number of input bytes consumed so far.
func (d *Decoder) Pos() int { return d.pos }

// More reports whether unconsumed input remains.
func (d *Decoder) More() bool { return d.pos < len(d.data) }

// PeekKind classifies the next value from its tag byte without consuming
// anything. Reserved tag bytes report ErrUnknownTag; width bits inside an
// otherwise valid tag are only checked when the value is read.
func (d *Decoder) PeekKind() (Kind, error) {
	if d.pos >= len(d.data) {
		return KindInvalid, d.errAt(d.pos, ErrUnexpectedEOF)
	}
	b := d.data[d.pos]
	k := markerOf(b).kind()
	if k == KindInvalid {
		return KindInvalid, d.tagErr(d.pos, b)
	}
	return k, nil
}

// DecodeValue reads one value, recursing through containers under the
// depth bound.
func (d *Decoder) DecodeValue() (Value, error) {
	h, err := d.readHeader()
	if err != nil {
		return nil, err
	}
	return d.decodeValueOf(h)
}

func (d *Decoder) decodeValueOf(h header) (Value, error) {
	switch h.kind {
	case KindNull:
		return Null{}, nil
	case KindBool:
		return Bool(h.boolVal), nil
	case KindInt:
		return d.decodeIntValue(h)
	case KindFloat:
		return d.decodeFloatValue(h)
	case KindBytes:
		return d.decodeBytesValue(h)
	case KindString:
		return d.decodeStringValue(h)
	case KindSeq:
		return d.decodeSeqValue(h)
	case KindMap:
		return d.decodeMapValue(h)
	}
	return nil, d.tagErr(h.off, d.data[h.off])
}

// DecodeNull reads a null value.
func (d *Decoder) DecodeNull() error {
	_, err := d.expect(KindNull)
	return err
}

// DecodeBool reads a boolean value.
func (d *Decoder) DecodeBool() (bool, error) {
	h, err := d.expect(KindBool)
	if err != nil {
		return false, err
	}
	return h.boolVal, nil
}

// expect reads a header and checks its kind.
func (d *Decoder) expect(k Kind) (header, error) {
	off := d.pos
	h, err := d.readHeader()
	if err != nil {
		return header{}, err
	}
	if h.kind != k {
		return header{}, d.errAt(off, fmt.Errorf("%w: want %s, have %s", ErrKindMismatch, k, h.kind))
	}
	return h, nil
}

// enter checks and consumes one level of the depth budget.
func (d *Decoder) enter(off int) error {
	if d.depth >= d.maxDepth {
		return d.errAt(off, ErrDepthExceeded)
	}
	d.depth++
	return nil
}

func (d *Decoder) leave() { d.depth-- }

func (d *Decoder) remaining() int { return len(d.data) - d.pos }

func (d *Decoder) readByte() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, d.errAt(d.pos, ErrUnexpectedEOF)
	}
	b := d.data[d.pos]
	d.pos++
	return b, nil
}

// readN returns the next n input bytes without copying. Callers that keep
// the data must clone it.
func (d *Decoder) readN(n int) ([]byte, error) {
	if n > d.remaining() {
		return nil, d.errAt(d.pos, ErrUnexpectedEOF)
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// readUintBE reads a big-endian unsigned integer of the given byte width.
func (d *Decoder) readUintBE(width int) (uint64, error) {
	b, err := d.readN(width)
	if err != nil {
		return 0, err
	}
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v, nil
}

func (d *Decoder) errAt(off int, err error) error {
	return &DecodeError{Offset: off, Err: err}
}

func (d *Decoder) tagErr(off int, b byte) error {
	return &DecodeError{Offset: off, Byte: b, Err: ErrUnknownTag}
}
