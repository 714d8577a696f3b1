package writer

// MemWriter captures documents in memory.
type MemWriter struct {
	Buf []byte
}

// WriteDoc replaces Buf with a copy of data.
func (w *MemWriter) WriteDoc(data []byte) error {
	w.Buf = append(w.Buf[:0], data...)
	return nil
}
