package lilliput

import "unicode/utf8"

func (d *Decoder) decodeStringValue(h header) (Value, error) {
	s, err := d.stringPayload(h)
	if err != nil {
		return nil, err
	}
	return String(s), nil
}

func (d *Decoder) stringPayload(h header) (string, error) {
	off := d.pos
	b, err := d.readN(h.length)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", d.errAt(off, ErrInvalidUTF8)
	}
	return string(b), nil
}

// DecodeString reads a string value.
func (d *Decoder) DecodeString() (string, error) {
	h, err := d.expect(KindString)
	if err != nil {
		return "", err
	}
	return d.stringPayload(h)
}
