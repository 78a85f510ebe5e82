package lilliput

// EncodeFloat64 writes a 64-bit float. NaN payload bits are canonicalized.
// With FloatModePack the value is demoted to the 4-byte form when the
// narrowing is bit-exact.
func (e *Encoder) EncodeFloat64(v float64) error {
	if e.opts.FloatMode == FloatModePack {
		if n, ok := packFloat32(v); ok {
			return e.EncodeFloat32(n)
		}
	}
	if err := e.beforeChild(); err != nil {
		return err
	}
	if err := e.writeByte(tagFloat | 0x03); err != nil {
		return err
	}
	if err := e.writeUint(canonicalBits64(v), 8); err != nil {
		return err
	}
	e.afterChild()
	return nil
}

// EncodeFloat32 writes a 32-bit float. NaN payload bits are canonicalized.
func (e *Encoder) EncodeFloat32(v float32) error {
	if err := e.beforeChild(); err != nil {
		return err
	}
	if err := e.writeByte(tagFloat | 0x02); err != nil {
		return err
	}
	if err := e.writeUint(uint64(canonicalBits32(v)), 4); err != nil {
		return err
	}
	e.afterChild()
	return nil
}
