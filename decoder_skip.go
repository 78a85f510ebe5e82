package lilliput

// Skip consumes exactly one value without materializing it. It walks
// headers iteratively with a pending-value counter instead of recursing,
// so arbitrarily deep input cannot exhaust the stack and the depth bound
// does not apply. Payloads are not validated beyond their framing; in
// particular, skipped strings are not UTF-8 checked.
func (d *Decoder) Skip() error {
	pending := 1
	for pending > 0 {
		h, err := d.readHeader()
		if err != nil {
			return err
		}
		switch h.kind {
		case KindInt:
			if !h.compact {
				if _, err := d.readN(h.width); err != nil {
					return err
				}
			}
		case KindFloat:
			if _, err := d.readN(h.width); err != nil {
				return err
			}
		case KindBytes, KindString:
			if _, err := d.readN(h.length); err != nil {
				return err
			}
		case KindSeq:
			if h.length > d.remaining() {
				return d.errAt(d.pos, ErrUnexpectedEOF)
			}
			pending += h.length
		case KindMap:
			if h.length > d.remaining()/2 {
				return d.errAt(d.pos, ErrUnexpectedEOF)
			}
			pending += 2 * h.length
		}
		pending--
	}
	return nil
}
