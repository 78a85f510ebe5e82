package lilliput

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFloatOrderKey checks that the bit mapping yields the documented
// total order.
func TestFloatOrderKey(t *testing.T) {
	ordered := []float64{
		math.Inf(-1),
		-math.MaxFloat64,
		-1.5,
		-math.SmallestNonzeroFloat64,
		math.Copysign(0, -1),
		0,
		math.SmallestNonzeroFloat64,
		1.5,
		math.MaxFloat64,
		math.Inf(1),
	}
	for i := 0; i < len(ordered)-1; i++ {
		assert.Less(t, floatOrderKey(ordered[i]), floatOrderKey(ordered[i+1]),
			"%v must key below %v", ordered[i], ordered[i+1])
	}

	t.Run("nan is the maximum", func(t *testing.T) {
		assert.Equal(t, uint64(math.MaxUint64), floatOrderKey(math.NaN()))
		assert.Greater(t, floatOrderKey(math.NaN()), floatOrderKey(math.Inf(1)))
	})

	t.Run("zero signs differ", func(t *testing.T) {
		assert.NotEqual(t, floatOrderKey(0), floatOrderKey(math.Copysign(0, -1)))
	})
}

// TestPackFloat32 checks exact narrowing decisions.
func TestPackFloat32(t *testing.T) {
	cases := []struct {
		name string
		f    float64
		ok   bool
	}{
		{"zero", 0, true},
		{"negative zero", math.Copysign(0, -1), true},
		{"exact binary fraction", 1.5, true},
		{"decimal fraction", 1.1, false},
		{"past float32 range", 1e40, false},
		{"denormal below float32", math.SmallestNonzeroFloat64, false},
		{"infinity", math.Inf(1), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, ok := packFloat32(tc.f)
			assert.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.f, float64(n))
			}
		})
	}

	t.Run("nan packs canonically", func(t *testing.T) {
		n, ok := packFloat32(math.NaN())
		assert.True(t, ok)
		assert.Equal(t, uint32(canonicalNaN32), math.Float32bits(n))
	})
}

// TestCanonicalBits checks NaN payload rewriting.
func TestCanonicalBits(t *testing.T) {
	assert.Equal(t, uint64(canonicalNaN64), canonicalBits64(math.Float64frombits(0xfff000000000beef)))
	assert.Equal(t, uint32(canonicalNaN32), canonicalBits32(math.Float32frombits(0xffc00001)))

	// Everything else passes through bit-exact.
	assert.Equal(t, math.Float64bits(-1.5), canonicalBits64(-1.5))
	assert.Equal(t, math.Float32bits(1.5), canonicalBits32(1.5))
}
