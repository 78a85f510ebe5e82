package lilliput

func (d *Decoder) decodeSeqValue(h header) (Value, error) {
	if err := d.enter(h.off); err != nil {
		return nil, err
	}
	defer d.leave()
	n := h.length
	// Each element takes at least one byte, so a count beyond the
	// remaining input is truncation. This also bounds the preallocation.
	if n > d.remaining() {
		return nil, d.errAt(d.pos, ErrUnexpectedEOF)
	}
	s := make(Seq, 0, n)
	for i := 0; i < n; i++ {
		v, err := d.DecodeValue()
		if err != nil {
			return nil, err
		}
		s = append(s, v)
	}
	return s, nil
}

// DecodeSeqHeader reads a sequence header and returns its element count.
// The caller then reads exactly that many values.
func (d *Decoder) DecodeSeqHeader() (int, error) {
	h, err := d.expect(KindSeq)
	if err != nil {
		return 0, err
	}
	if h.length > d.remaining() {
		return 0, d.errAt(d.pos, ErrUnexpectedEOF)
	}
	return h.length, nil
}
