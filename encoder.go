package lilliput

import "fmt"

// Encoder writes values into an in-memory sink, either growable or fixed
// capacity. It exposes both the whole-value path (EncodeValue) and the
// streaming primitives (scalar writes plus BeginSeq/EndSeq, BeginMap/EndMap)
// that let a caller produce containers without materializing a Value tree.
//
// Streaming container writes are checked: each Begin declares the element
// count, every written child consumes from it, and End fails with
// ErrContainerMismatch unless the declared count was met exactly.
//
// An Encoder is not safe for concurrent use. Encoding never fails on
// capacity with a growable sink; a fixed sink fails with ErrBufferCapacity.
type Encoder struct {
	buf      []byte
	fixed    bool
	opts     EncodeOptions
	maxDepth int
	frames   []frame
}

// frame tracks one open container during streaming writes.
type frame struct {
	remaining int // elements (seq) or entries (map) still expected
	isMap     bool
	halfEntry bool // map: key written, value pending
}

// NewEncoder returns an Encoder with a growable sink.
func NewEncoder(opts EncodeOptions) *Encoder {
	return &Encoder{opts: opts, maxDepth: resolveMaxDepth(opts.MaxDepth)}
}

// NewFixedEncoder returns an Encoder that writes into buf's backing array
// and never grows it. Writes beyond cap(buf) fail with ErrBufferCapacity;
// the encode path itself performs no allocation.
func NewFixedEncoder(buf []byte, opts EncodeOptions) *Encoder {
	return &Encoder{
		buf:      buf[:0],
		fixed:    true,
		opts:     opts,
		maxDepth: resolveMaxDepth(opts.MaxDepth),
	}
}

// Bytes returns the encoded output so far. The slice aliases the
// Encoder's storage and is valid until the next write or Reset.
func (e *Encoder) Bytes() []byte { return e.buf }

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int { return len(e.buf) }

// Reset discards output and open containers, retaining the sink and
// options for reuse.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
	e.frames = e.frames[:0]
}

// EncodeValue writes one value, recursing through containers. A nil Value
// encodes as Null.
func (e *Encoder) EncodeValue(v Value) error {
	switch v := v.(type) {
	case nil, Null:
		return e.EncodeNull()
	case Bool:
		return e.EncodeBool(bool(v))
	case Int:
		neg, mag := v.intParts()
		return e.encodeInt(neg, mag)
	case Uint:
		return e.encodeInt(false, uint64(v))
	case Float32:
		return e.EncodeFloat32(float32(v))
	case Float64:
		return e.EncodeFloat64(float64(v))
	case Bytes:
		return e.EncodeBytes(v)
	case String:
		return e.EncodeString(string(v))
	case Seq:
		return e.encodeSeq(v)
	case *Map:
		return e.encodeMap(v)
	default:
		return &EncodeError{Offset: len(e.buf), Err: fmt.Errorf("lilliput: unsupported value type %T", v)}
	}
}

// EncodeNull writes a null value.
func (e *Encoder) EncodeNull() error {
	if err := e.beforeChild(); err != nil {
		return err
	}
	if err := e.writeByte(tagNull); err != nil {
		return err
	}
	e.afterChild()
	return nil
}

// EncodeBool writes a boolean value.
func (e *Encoder) EncodeBool(v bool) error {
	if err := e.beforeChild(); err != nil {
		return err
	}
	tag := byte(tagBool)
	if v {
		tag |= boolValueBit
	}
	if err := e.writeByte(tag); err != nil {
		return err
	}
	e.afterChild()
	return nil
}

// BeginSeq opens a sequence of exactly n elements.
func (e *Encoder) BeginSeq(n int) error { return e.beginContainer(n, false) }

// BeginMap opens a map of exactly n entries; each entry is one key write
// followed by one value write.
func (e *Encoder) BeginMap(n int) error { return e.beginContainer(n, true) }

// EndSeq closes the innermost container, which must be a sequence with
// all declared elements written.
func (e *Encoder) EndSeq() error { return e.endContainer(false) }

// EndMap closes the innermost container, which must be a map with all
// declared entries written.
func (e *Encoder) EndMap() error { return e.endContainer(true) }

func (e *Encoder) beginContainer(n int, isMap bool) error {
	if n < 0 {
		return e.stateErr()
	}
	if err := e.beforeChild(); err != nil {
		return err
	}
	if len(e.frames) >= e.maxDepth {
		return &EncodeError{Offset: len(e.buf), Err: ErrDepthExceeded}
	}
	var err error
	if isMap {
		err = e.writeMapHeader(n)
	} else {
		err = e.writeSeqHeader(n)
	}
	if err != nil {
		return err
	}
	e.frames = append(e.frames, frame{remaining: n, isMap: isMap})
	return nil
}

func (e *Encoder) endContainer(isMap bool) error {
	if len(e.frames) == 0 {
		return e.stateErr()
	}
	f := e.frames[len(e.frames)-1]
	if f.isMap != isMap || f.remaining != 0 || f.halfEntry {
		return e.stateErr()
	}
	e.frames = e.frames[:len(e.frames)-1]
	e.afterChild()
	return nil
}

// beforeChild verifies the innermost open container accepts another write.
func (e *Encoder) beforeChild() error {
	if len(e.frames) == 0 {
		return nil
	}
	f := &e.frames[len(e.frames)-1]
	if f.remaining == 0 && !f.halfEntry {
		return e.stateErr()
	}
	return nil
}

// afterChild records one completed child write on the innermost container.
func (e *Encoder) afterChild() {
	if len(e.frames) == 0 {
		return
	}
	f := &e.frames[len(e.frames)-1]
	if f.isMap {
		if f.halfEntry {
			f.halfEntry = false
			f.remaining--
		} else {
			f.halfEntry = true
		}
	} else {
		f.remaining--
	}
}

func (e *Encoder) stateErr() error {
	return &EncodeError{Offset: len(e.buf), Err: ErrContainerMismatch}
}

func (e *Encoder) writeByte(b byte) error {
	if e.fixed && len(e.buf) >= cap(e.buf) {
		return &EncodeError{Offset: len(e.buf), Err: ErrBufferCapacity}
	}
	e.buf = append(e.buf, b)
	return nil
}

func (e *Encoder) write(p []byte) error {
	if e.fixed && len(e.buf)+len(p) > cap(e.buf) {
		return &EncodeError{Offset: len(e.buf), Err: ErrBufferCapacity}
	}
	e.buf = append(e.buf, p...)
	return nil
}

func (e *Encoder) writeString(s string) error {
	if e.fixed && len(e.buf)+len(s) > cap(e.buf) {
		return &EncodeError{Offset: len(e.buf), Err: ErrBufferCapacity}
	}
	e.buf = append(e.buf, s...)
	return nil
}

// writeUint writes v big-endian in the given byte width.
func (e *Encoder) writeUint(v uint64, width int) error {
	var s [8]byte
	for i := 0; i < width; i++ {
		s[i] = byte(v >> (8 * (width - 1 - i)))
	}
	return e.write(s[:width])
}
