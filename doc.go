// Package lilliput implements the lilliput binary serialization format
// in the Go way.
//
// Lilliput is a compact, schemaless encoding for a small set of value
// kinds: null, booleans, integers, binary floats, byte strings, UTF-8
// strings, sequences and maps. Every value starts with a single tag byte
// whose leading-zero count selects the kind, so a decoder needs no schema
// and no lookahead. Small payloads pack into the tag byte itself; larger
// ones carry a big-endian magnitude or length field whose width is one of
// 1, 2, 4 or 8 bytes.
//
// # Buffers
//
// [Encode] and [Decode] work on whole values in byte slices:
//
//	data, err := lilliput.Encode(lilliput.String("hi"))
//	v, err := lilliput.Decode(data)
//
// [Append] reuses a caller buffer, and [DecodePrefix] decodes one value
// from the front of a buffer and returns the rest, which is how several
// values are read back to back.
//
// # Values
//
// Decoded data arrives as a [Value] tree built from [Null], [Bool],
// [Int], [Uint], [Float32], [Float64], [Bytes], [String], [Seq] and
// [Map]. Non-negative integers decode as [Uint] and negative ones as
// [Int]; the wire format does not record signedness for values that fit
// both. [FromNative] and [ToNative] bridge to plain Go values such as
// the ones encoding/json produces.
//
// # Streaming
//
// [Encoder] and [Decoder] expose the format one header at a time, which
// lets callers write containers incrementally and skim large inputs
// without materializing them. [StreamEncoder] and [StreamDecoder] carry
// values over io.Writer and io.Reader.
//
// # Limits
//
// Decoding untrusted input is safe by construction: every read is bounds
// checked, container nesting is capped by [DecodeOptions.MaxDepth]
// (default [DefaultMaxDepth]), and announced sizes are validated against
// the remaining input before anything is allocated. Malformed input is
// reported as a [DecodeError] carrying the byte offset of the fault.
package lilliput
