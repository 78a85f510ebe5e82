package lilliput

import "unicode/utf8"

// EncodeString writes a string. The payload must be valid UTF-8; byte
// lengths up to 31 fold into the tag byte.
func (e *Encoder) EncodeString(s string) error {
	if !utf8.ValidString(s) {
		return &EncodeError{Offset: len(e.buf), Err: ErrInvalidUTF8}
	}
	if err := e.beforeChild(); err != nil {
		return err
	}
	n := len(s)
	if n <= maxCompactStrLen {
		if err := e.writeByte(tagString | strCompactBit | byte(n)); err != nil {
			return err
		}
	} else {
		w := widthExp(uint64(n))
		if err := e.writeByte(tagString | byte(w)); err != nil {
			return err
		}
		if err := e.writeUint(uint64(n), 1<<w); err != nil {
			return err
		}
	}
	if err := e.writeString(s); err != nil {
		return err
	}
	e.afterChild()
	return nil
}
