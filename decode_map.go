package lilliput

func (d *Decoder) decodeMapValue(h header) (Value, error) {
	if err := d.enter(h.off); err != nil {
		return nil, err
	}
	defer d.leave()
	n := h.length
	// An entry takes at least two bytes (key and value tags).
	if n > d.remaining()/2 {
		return nil, d.errAt(d.pos, ErrUnexpectedEOF)
	}
	// Container keys identify by their encoding; give that encode the
	// decoder's own depth bound so any key read here is insertable.
	idOpts := keyIdentityOptions
	idOpts.MaxDepth = d.maxDepth

	m := newMapSized(d.opts.PreserveOrder, n)
	for i := 0; i < n; i++ {
		keyOff := d.pos
		k, err := d.DecodeValue()
		if err != nil {
			return nil, err
		}
		v, err := d.DecodeValue()
		if err != nil {
			return nil, err
		}
		if err := m.set(k, v, idOpts, d.opts.StrictDuplicateKeys); err != nil {
			return nil, d.errAt(keyOff, err)
		}
	}
	return m, nil
}

// DecodeMapHeader reads a map header and returns its entry count. The
// caller then reads that many key-value pairs.
func (d *Decoder) DecodeMapHeader() (int, error) {
	h, err := d.expect(KindMap)
	if err != nil {
		return 0, err
	}
	if h.length > d.remaining()/2 {
		return 0, d.errAt(d.pos, ErrUnexpectedEOF)
	}
	return h.length, nil
}
