package lilliput

import "math"

const (
	// DefaultMaxDepth bounds container nesting when options leave MaxDepth
	// at zero. It is sized to keep adversarial input from exhausting the
	// call stack while leaving room for any sane document.
	DefaultMaxDepth = 128

	// MaxDepthUnbounded disables the nesting bound. Only for trusted
	// input: decoding is recursive, so depth is stack.
	MaxDepthUnbounded = -1
)

// IntMode selects how integers are laid out on encode.
type IntMode uint8

const (
	// IntModePacked uses the smallest form: magnitudes up to 31 go inline
	// in the tag byte, larger ones use the smallest width that fits.
	IntModePacked IntMode = iota

	// IntModeWide always uses the extended form with an 8-byte magnitude.
	// Output is larger but every integer has the same size, which keeps
	// offsets stable for in-place rewriting.
	IntModeWide
)

// FloatMode selects how floating-point values are laid out on encode.
type FloatMode uint8

const (
	// FloatModePreserve keeps each value at its stated width. NaN is still
	// canonicalized.
	FloatModePreserve FloatMode = iota

	// FloatModePack demotes a Float64 to the 4-byte form when the value
	// survives the round trip bit-exactly.
	FloatModePack
)

// EncodeOptions configures an Encoder. The zero value is ready to use:
// packed integers, width-preserving floats, insertion order for ordered
// maps, DefaultMaxDepth.
type EncodeOptions struct {
	// IntMode and FloatMode pick the scalar layout.
	IntMode   IntMode
	FloatMode FloatMode

	// SortMapKeys writes every map's entries sorted by the key total
	// order, making output canonical. Unordered maps are always written
	// sorted; this extends that to insertion-ordered maps.
	SortMapKeys bool

	// MaxDepth bounds container nesting. Zero means DefaultMaxDepth,
	// MaxDepthUnbounded disables the bound. The encoder needs the guard
	// because a Seq or Map can be made to contain itself.
	MaxDepth int
}

// DecodeOptions configures a Decoder. The zero value is ready to use:
// unordered maps, last duplicate key wins, DefaultMaxDepth.
type DecodeOptions struct {
	// MaxDepth bounds container nesting. Zero means DefaultMaxDepth,
	// MaxDepthUnbounded disables the bound.
	MaxDepth int

	// PreserveOrder builds decoded maps in insertion-ordered mode, keeping
	// the wire entry order observable.
	PreserveOrder bool

	// StrictDuplicateKeys rejects a repeated map key with ErrDuplicateKey
	// instead of overwriting the previous value.
	StrictDuplicateKeys bool
}

func resolveMaxDepth(d int) int {
	switch {
	case d == 0:
		return DefaultMaxDepth
	case d < 0:
		return math.MaxInt
	default:
		return d
	}
}
