package lilliput

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by encoding and decoding. Errors returned from
// Decoder and Encoder methods wrap these together with the byte offset at
// which the condition was detected; match them with errors.Is.
var (
	// ErrUnexpectedEOF is returned when the input ends inside a header or
	// payload. Any proper prefix of a valid encoding fails with it.
	ErrUnexpectedEOF = errors.New("lilliput: unexpected end of input")

	// ErrUnknownTag is returned for a tag byte outside the defined set:
	// the reserved tag 0x01 and any header form with nonzero reserved bits.
	ErrUnknownTag = errors.New("lilliput: unknown or reserved tag")

	// ErrLengthOverflow is returned when a declared length does not fit
	// the platform's int.
	ErrLengthOverflow = errors.New("lilliput: declared length exceeds addressable size")

	// ErrIntegerOverflow is returned when an integer payload cannot be
	// represented: a negative magnitude below the 64-bit signed range on
	// decode, or a lossy narrowing requested through a typed read.
	ErrIntegerOverflow = errors.New("lilliput: integer out of range")

	// ErrInvalidUTF8 is returned for string payloads that are not valid
	// UTF-8, on both encode and decode.
	ErrInvalidUTF8 = errors.New("lilliput: string is not valid UTF-8")

	// ErrDuplicateKey is returned when a map carries a repeated key and
	// strict duplicate handling is enabled.
	ErrDuplicateKey = errors.New("lilliput: duplicate map key")

	// ErrDepthExceeded is returned when container nesting passes the
	// configured maximum.
	ErrDepthExceeded = errors.New("lilliput: maximum nesting depth exceeded")

	// ErrBufferCapacity is returned by encoders with a fixed-capacity sink
	// when the next write would not fit. Growable sinks never return it.
	ErrBufferCapacity = errors.New("lilliput: buffer capacity exceeded")

	// ErrKindMismatch is returned by typed Decoder reads when the next
	// value has a different kind than the one requested.
	ErrKindMismatch = errors.New("lilliput: kind mismatch")

	// ErrContainerMismatch is returned when streaming encoder calls do not
	// agree with the declared container structure: writing more elements
	// than announced, or closing a container that is not complete.
	ErrContainerMismatch = errors.New("lilliput: container element count mismatch")

	// ErrTrailingBytes is returned by Decode when input remains after the
	// first value. Use DecodePrefix to consume concatenated values.
	ErrTrailingBytes = errors.New("lilliput: trailing bytes after value")
)

// DecodeError wraps a sentinel error with the byte offset at which decoding
// failed. For ErrUnknownTag, Byte holds the offending tag byte.
type DecodeError struct {
	Offset int
	Byte   byte
	Err    error
}

func (e *DecodeError) Error() string {
	if errors.Is(e.Err, ErrUnknownTag) {
		return fmt.Sprintf("%v 0x%02x (offset %d)", e.Err, e.Byte, e.Offset)
	}
	return fmt.Sprintf("%v (offset %d)", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError wraps a sentinel error with the number of bytes already
// written when encoding failed.
type EncodeError struct {
	Offset int
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%v (offset %d)", e.Err, e.Offset)
}

func (e *EncodeError) Unwrap() error { return e.Err }
