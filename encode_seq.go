package lilliput

func (e *Encoder) writeSeqHeader(n int) error {
	if n <= maxCompactSeqLen {
		return e.writeByte(tagSeq | seqCompactBit | byte(n))
	}
	w := widthExp(uint64(n))
	if err := e.writeByte(tagSeq | byte(w)); err != nil {
		return err
	}
	return e.writeUint(uint64(n), 1<<w)
}

func (e *Encoder) encodeSeq(s Seq) error {
	if err := e.BeginSeq(len(s)); err != nil {
		return err
	}
	for _, el := range s {
		if err := e.EncodeValue(el); err != nil {
			return err
		}
	}
	return e.EndSeq()
}
