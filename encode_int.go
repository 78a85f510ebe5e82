package lilliput

// EncodeInt64 writes a signed integer.
func (e *Encoder) EncodeInt64(v int64) error {
	neg, mag := Int(v).intParts()
	return e.encodeInt(neg, mag)
}

// EncodeUint64 writes an unsigned integer.
func (e *Encoder) EncodeUint64(v uint64) error {
	return e.encodeInt(false, v)
}

// encodeInt writes an integer from its sign and magnitude, where a
// negative value v carries magnitude -1-v. With IntModePacked, magnitudes
// up to 31 fold into the tag byte; anything larger takes the extended
// form at the smallest width that fits.
func (e *Encoder) encodeInt(neg bool, mag uint64) error {
	if err := e.beforeChild(); err != nil {
		return err
	}
	tag := byte(tagInt)
	if neg {
		tag |= intSignBit
	}
	if e.opts.IntMode == IntModePacked && mag <= maxCompactIntMag {
		if err := e.writeByte(tag | intCompactBit | byte(mag)); err != nil {
			return err
		}
		e.afterChild()
		return nil
	}
	w := 3
	if e.opts.IntMode == IntModePacked {
		w = widthExp(mag)
	}
	if err := e.writeByte(tag | byte(w)); err != nil {
		return err
	}
	if err := e.writeUint(mag, 1<<w); err != nil {
		return err
	}
	e.afterChild()
	return nil
}
