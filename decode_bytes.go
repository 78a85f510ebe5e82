package lilliput

import "bytes"

func (d *Decoder) decodeBytesValue(h header) (Value, error) {
	b, err := d.bytesPayload(h)
	if err != nil {
		return nil, err
	}
	return Bytes(b), nil
}

func (d *Decoder) bytesPayload(h header) ([]byte, error) {
	b, err := d.readN(h.length)
	if err != nil {
		return nil, err
	}
	// Decoded values own their memory; never alias the input buffer.
	return bytes.Clone(b), nil
}

// DecodeBytes reads a bytes value into a fresh slice.
func (d *Decoder) DecodeBytes() ([]byte, error) {
	h, err := d.expect(KindBytes)
	if err != nil {
		return nil, err
	}
	return d.bytesPayload(h)
}
