package lilliput

// EncodeBytes writes a raw octet sequence. Bytes always carry an explicit
// length field; only its width varies.
func (e *Encoder) EncodeBytes(p []byte) error {
	if err := e.beforeChild(); err != nil {
		return err
	}
	w := widthExp(uint64(len(p)))
	if err := e.writeByte(tagBytes | byte(w)); err != nil {
		return err
	}
	if err := e.writeUint(uint64(len(p)), 1<<w); err != nil {
		return err
	}
	if err := e.write(p); err != nil {
		return err
	}
	e.afterChild()
	return nil
}
