package lilliput

import (
	"fmt"
	"math"
)

func (d *Decoder) decodeFloatValue(h header) (Value, error) {
	bits, err := d.readUintBE(h.width)
	if err != nil {
		return nil, err
	}
	if h.width == 4 {
		return Float32(math.Float32frombits(uint32(bits))), nil
	}
	return Float64(math.Float64frombits(bits)), nil
}

// DecodeFloat64 reads a float of either width, promoting the 4-byte form.
func (d *Decoder) DecodeFloat64() (float64, error) {
	h, err := d.expect(KindFloat)
	if err != nil {
		return 0, err
	}
	bits, err := d.readUintBE(h.width)
	if err != nil {
		return 0, err
	}
	if h.width == 4 {
		return float64(math.Float32frombits(uint32(bits))), nil
	}
	return math.Float64frombits(bits), nil
}

// DecodeFloat32 reads a 4-byte float. An 8-byte payload is a mismatch;
// use DecodeFloat64 to accept both widths.
func (d *Decoder) DecodeFloat32() (float32, error) {
	h, err := d.expect(KindFloat)
	if err != nil {
		return 0, err
	}
	if h.width != 4 {
		return 0, d.errAt(h.off, fmt.Errorf("%w: want 32-bit float, have 64-bit", ErrKindMismatch))
	}
	bits, err := d.readUintBE(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(bits)), nil
}
