package lilliput

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValue_kinds checks the Kind reported by each variant.
func TestValue_kinds(t *testing.T) {
	cases := []struct {
		v    Value
		want Kind
	}{
		{Null{}, KindNull},
		{Bool(true), KindBool},
		{Int(-1), KindInt},
		{Uint(1), KindInt},
		{Float32(1), KindFloat},
		{Float64(1), KindFloat},
		{Bytes{}, KindBytes},
		{String(""), KindString},
		{Seq{}, KindSeq},
		{NewMap(), KindMap},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.v.Kind())
	}
}

func TestKind_strings(t *testing.T) {
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "map", KindMap.String())
	assert.Equal(t, "invalid", KindInvalid.String())
	assert.Equal(t, "invalid", Kind(200).String())
}

// TestIntParts checks the sign-and-magnitude split at the extremes.
func TestIntParts(t *testing.T) {
	neg, mag := Int(0).intParts()
	assert.False(t, neg)
	assert.Equal(t, uint64(0), mag)

	neg, mag = Int(-1).intParts()
	assert.True(t, neg)
	assert.Equal(t, uint64(0), mag)

	neg, mag = Int(math.MinInt64).intParts()
	assert.True(t, neg)
	assert.Equal(t, uint64(math.MaxInt64), mag)

	neg, mag = Uint(math.MaxUint64).intParts()
	assert.False(t, neg)
	assert.Equal(t, uint64(math.MaxUint64), mag)
}
