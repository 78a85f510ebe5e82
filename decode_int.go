package lilliput

import "math"

func (d *Decoder) decodeIntValue(h header) (Value, error) {
	mag, err := d.intMag(h)
	if err != nil {
		return nil, err
	}
	if h.neg {
		if mag > math.MaxInt64 {
			return nil, d.errAt(h.off, ErrIntegerOverflow)
		}
		return Int(-1 - int64(mag)), nil
	}
	return Uint(mag), nil
}

// intMag resolves an integer header to its magnitude, reading the
// extended payload when the tag did not carry it inline.
func (d *Decoder) intMag(h header) (uint64, error) {
	if h.compact {
		return h.mag, nil
	}
	return d.readUintBE(h.width)
}

// DecodeInt64 reads an integer that fits int64.
func (d *Decoder) DecodeInt64() (int64, error) {
	h, err := d.expect(KindInt)
	if err != nil {
		return 0, err
	}
	mag, err := d.intMag(h)
	if err != nil {
		return 0, err
	}
	if mag > math.MaxInt64 {
		return 0, d.errAt(h.off, ErrIntegerOverflow)
	}
	if h.neg {
		return -1 - int64(mag), nil
	}
	return int64(mag), nil
}

// DecodeUint64 reads a non-negative integer.
func (d *Decoder) DecodeUint64() (uint64, error) {
	h, err := d.expect(KindInt)
	if err != nil {
		return 0, err
	}
	mag, err := d.intMag(h)
	if err != nil {
		return 0, err
	}
	if h.neg {
		return 0, d.errAt(h.off, ErrIntegerOverflow)
	}
	return mag, nil
}
