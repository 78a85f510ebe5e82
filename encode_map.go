package lilliput

func (e *Encoder) writeMapHeader(n int) error {
	if n <= maxCompactMapLen {
		return e.writeByte(tagMap | mapCompactBit | byte(n))
	}
	w := widthExp(uint64(n))
	if err := e.writeByte(tagMap | byte(w)); err != nil {
		return err
	}
	return e.writeUint(uint64(n), 1<<w)
}

// encodeMap writes a map's entries. Insertion-ordered maps keep their
// entry order unless SortMapKeys is set; unordered maps always encode
// sorted by the key total order so equal maps encode identically.
func (e *Encoder) encodeMap(m *Map) error {
	entries := m.Entries()
	if !m.Ordered() || e.opts.SortMapKeys {
		entries = m.sortedEntries()
	}
	if err := e.BeginMap(len(entries)); err != nil {
		return err
	}
	for _, en := range entries {
		if err := e.EncodeValue(en.Key); err != nil {
			return err
		}
		if err := e.EncodeValue(en.Value); err != nil {
			return err
		}
	}
	return e.EndMap()
}
