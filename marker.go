package lilliput

import "math/bits"

// Every value starts with one tag byte. The kind is a prefix code over the
// byte's leading zeros, so the number of leading zeros alone identifies the
// kind and the remaining low bits carry kind-specific payload:
//
//	1 c s bbbbb  Int     c: magnitude 0..31 inline, s: negative domain
//	01 c bbbbb   String  c: byte length 0..31 inline
//	001 c bbbb   Seq     c: element count 0..15 inline
//	0001 c bbb   Map     c: entry count 0..7 inline
//	00001 eee    Float   eee: payload width exponent (010=4, 011=8 bytes)
//	000001 ee    Bytes   ee: length field width exponent (1<<ee bytes)
//	0000001 v    Bool    v: the value
//	00000001     reserved
//	00000000     Null
//
// Extended (c=0) variable-size forms replace the inline bits with a width
// exponent and append a big-endian length field of 1<<ee bytes. Unused bits
// in an extended form must be zero; a nonzero pattern is an unknown tag.
type marker uint8

const (
	markerInt marker = iota
	markerString
	markerSeq
	markerMap
	markerFloat
	markerBytes
	markerBool
	markerReserved
	markerNull
)

// Tag byte construction masks, per kind.
const (
	tagNull  = 0x00
	tagBool  = 0x02 // | value bit
	tagBytes = 0x04 // | length width exponent (2 bits)
	tagFloat = 0x08 // | payload width exponent (3 bits)

	tagMap        = 0x10
	mapCompactBit = 0x08
	mapCountMask  = 0x07 // compact entry count
	mapWidthMask  = 0x03 // extended length width exponent

	tagSeq        = 0x20
	seqCompactBit = 0x10
	seqCountMask  = 0x0f
	seqWidthMask  = 0x03

	tagString     = 0x40
	strCompactBit = 0x20
	strLenMask    = 0x1f
	strWidthMask  = 0x03

	tagInt        = 0x80
	intCompactBit = 0x40
	intSignBit    = 0x20
	intMagMask    = 0x1f // compact magnitude
	intWidthMask  = 0x03

	boolValueBit   = 0x01
	bytesWidthMask = 0x03
	floatWidthMask = 0x07
)

// Inline capacity per kind: larger magnitudes and lengths take the
// extended form.
const (
	maxCompactIntMag = 31
	maxCompactStrLen = 31
	maxCompactSeqLen = 15
	maxCompactMapLen = 7
)

// markerOf classifies a tag byte. The leading-zero count is the marker.
func markerOf(b byte) marker {
	return marker(bits.LeadingZeros8(b))
}

func (m marker) kind() Kind {
	switch m {
	case markerNull:
		return KindNull
	case markerBool:
		return KindBool
	case markerInt:
		return KindInt
	case markerFloat:
		return KindFloat
	case markerBytes:
		return KindBytes
	case markerString:
		return KindString
	case markerSeq:
		return KindSeq
	case markerMap:
		return KindMap
	default:
		return KindInvalid
	}
}

// widthExp returns the smallest width exponent e such that v fits in
// 1<<e big-endian bytes.
func widthExp(v uint64) int {
	switch {
	case v <= 0xff:
		return 0
	case v <= 0xffff:
		return 1
	case v <= 0xffffffff:
		return 2
	default:
		return 3
	}
}
