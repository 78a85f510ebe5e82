package lilliput

import (
	"bytes"
	"errors"
	"io"
)

// StreamEncoder writes consecutive values to an io.Writer. Values are
// self-describing, so the stream needs no framing between them.
type StreamEncoder struct {
	w   io.Writer
	enc *Encoder
}

// NewStreamEncoder returns a StreamEncoder writing to w.
func NewStreamEncoder(w io.Writer, opts EncodeOptions) *StreamEncoder {
	return &StreamEncoder{w: w, enc: NewEncoder(opts)}
}

// Encode writes one value. Nothing reaches the writer when encoding fails.
func (s *StreamEncoder) Encode(v Value) error {
	s.enc.Reset()
	if err := s.enc.EncodeValue(v); err != nil {
		return err
	}
	_, err := s.w.Write(s.enc.Bytes())
	return err
}

// StreamDecoder reads consecutive values from an io.Reader, buffering
// input and retrying as more arrives.
type StreamDecoder struct {
	r    io.Reader
	buf  bytes.Buffer
	opts DecodeOptions
}

// NewStreamDecoder returns a StreamDecoder reading from r.
func NewStreamDecoder(r io.Reader, opts DecodeOptions) *StreamDecoder {
	return &StreamDecoder{r: r, opts: opts}
}

// Decode reads the next value. A clean end of stream between values
// returns io.EOF; a stream ending inside a value returns the decode
// error wrapping ErrUnexpectedEOF.
func (s *StreamDecoder) Decode() (Value, error) {
	var lastErr error
	for {
		if s.buf.Len() > 0 {
			d := NewDecoder(s.buf.Bytes(), s.opts)
			v, err := d.DecodeValue()
			if err == nil {
				s.buf.Next(d.Pos())
				return v, nil
			}
			if !errors.Is(err, ErrUnexpectedEOF) {
				return nil, err
			}
			// Might just be a value split across reads.
			lastErr = err
		}
		if err := s.readMore(); err != nil {
			if errors.Is(err, io.EOF) {
				if s.buf.Len() == 0 {
					return nil, io.EOF
				}
				return nil, lastErr
			}
			return nil, err
		}
	}
}

// readMore pulls one chunk from the reader into the buffer.
func (s *StreamDecoder) readMore() error {
	var chunk [4096]byte
	n, err := s.r.Read(chunk[:])
	if n > 0 {
		s.buf.Write(chunk[:n])
		return nil
	}
	if err == nil {
		err = io.ErrNoProgress
	}
	return err
}
