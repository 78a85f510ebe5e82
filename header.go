package lilliput

// header is one decoded value descriptor: the tag byte plus, for extended
// variable-size forms, the trailing length field. After readHeader the
// cursor sits on the value payload.
type header struct {
	kind    Kind
	off     int    // offset of the tag byte
	boolVal bool   // bool: the value
	neg     bool   // int: negative domain
	compact bool   // int: magnitude carried inline
	mag     uint64 // int: inline magnitude
	width   int    // int extended: magnitude width; float: payload width
	length  int    // string/bytes: payload bytes; seq/map: element count
}

// readHeader consumes one descriptor. Every byte maps to exactly one
// (tag, length) reading or to ErrUnknownTag; forms with nonzero reserved
// bits are rejected rather than silently tolerated.
func (d *Decoder) readHeader() (header, error) {
	off := d.pos
	b, err := d.readByte()
	if err != nil {
		return header{}, err
	}
	h := header{off: off}
	switch markerOf(b) {
	case markerNull:
		h.kind = KindNull

	case markerBool:
		h.kind = KindBool
		h.boolVal = b&boolValueBit != 0

	case markerInt:
		h.kind = KindInt
		h.neg = b&intSignBit != 0
		if b&intCompactBit != 0 {
			h.compact = true
			h.mag = uint64(b & intMagMask)
		} else {
			if b&intMagMask&^intWidthMask != 0 {
				return header{}, d.tagErr(off, b)
			}
			h.width = 1 << (b & intWidthMask)
		}

	case markerFloat:
		h.kind = KindFloat
		switch b & floatWidthMask {
		case 0x02:
			h.width = 4
		case 0x03:
			h.width = 8
		default:
			return header{}, d.tagErr(off, b)
		}

	case markerBytes:
		h.kind = KindBytes
		h.length, err = d.readLength(1 << (b & bytesWidthMask))
		if err != nil {
			return header{}, err
		}

	case markerString:
		h.kind = KindString
		if b&strCompactBit != 0 {
			h.length = int(b & strLenMask)
		} else {
			if b&strLenMask&^strWidthMask != 0 {
				return header{}, d.tagErr(off, b)
			}
			h.length, err = d.readLength(1 << (b & strWidthMask))
			if err != nil {
				return header{}, err
			}
		}

	case markerSeq:
		h.kind = KindSeq
		if b&seqCompactBit != 0 {
			h.length = int(b & seqCountMask)
		} else {
			if b&seqCountMask&^seqWidthMask != 0 {
				return header{}, d.tagErr(off, b)
			}
			h.length, err = d.readLength(1 << (b & seqWidthMask))
			if err != nil {
				return header{}, err
			}
		}

	case markerMap:
		h.kind = KindMap
		if b&mapCompactBit != 0 {
			h.length = int(b & mapCountMask)
		} else {
			if b&mapCountMask&^mapWidthMask != 0 {
				return header{}, d.tagErr(off, b)
			}
			h.length, err = d.readLength(1 << (b & mapWidthMask))
			if err != nil {
				return header{}, err
			}
		}

	default: // markerReserved
		return header{}, d.tagErr(off, b)
	}
	return h, nil
}

// readLength reads a big-endian length field and range-checks it against
// the platform int.
func (d *Decoder) readLength(width int) (int, error) {
	off := d.pos
	v, err := d.readUintBE(width)
	if err != nil {
		return 0, err
	}
	if v > uint64(maxPlatformInt) {
		return 0, d.errAt(off, ErrLengthOverflow)
	}
	return int(v), nil
}

const maxPlatformInt = int(^uint(0) >> 1)
