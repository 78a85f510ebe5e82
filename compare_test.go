package lilliput

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEqual checks the value identity across representations.
func TestEqual(t *testing.T) {
	t.Run("numeric identity", func(t *testing.T) {
		assert.True(t, Equal(Int(5), Uint(5)))
		assert.True(t, Equal(Uint(5), Int(5)))
		assert.True(t, Equal(Float32(1.5), Float64(1.5)))
		assert.True(t, Equal(Float64(math.NaN()), Float32(float32(math.NaN()))))
		assert.False(t, Equal(Int(-1), Uint(math.MaxUint64)))
		assert.False(t, Equal(Uint(1), Float64(1)))
		assert.False(t, Equal(Float64(0), Float64(math.Copysign(0, -1))))
	})

	t.Run("nil is null", func(t *testing.T) {
		assert.True(t, Equal(nil, Null{}))
		assert.True(t, Equal(Null{}, nil))
		assert.False(t, Equal(nil, Bool(false)))
	})

	t.Run("kinds never cross", func(t *testing.T) {
		assert.False(t, Equal(String("a"), Bytes("a")))
		assert.False(t, Equal(Bool(false), Uint(0)))
		assert.False(t, Equal(Seq{}, NewMap()))
	})

	t.Run("sequences", func(t *testing.T) {
		assert.True(t, Equal(Seq{Int(1), String("a")}, Seq{Uint(1), String("a")}))
		assert.False(t, Equal(Seq{Uint(1)}, Seq{Uint(1), Uint(2)}))
		assert.False(t, Equal(Seq{Uint(1)}, Seq{Uint(2)}))
	})

	t.Run("maps ignore order and mode", func(t *testing.T) {
		a := NewOrderedMap()
		require.NoError(t, a.Set(String("x"), Uint(1)))
		require.NoError(t, a.Set(String("y"), Uint(2)))

		b := NewMap()
		require.NoError(t, b.Set(String("y"), Uint(2)))
		require.NoError(t, b.Set(String("x"), Uint(1)))

		assert.True(t, Equal(a, b))

		require.NoError(t, b.Set(String("y"), Uint(3)))
		assert.False(t, Equal(a, b))
	})
}

// TestCompare_kinds checks the rank order between kinds.
func TestCompare_kinds(t *testing.T) {
	chain := []Value{
		Null{},
		Bool(true),
		Int(-1),
		Float64(0),
		Bytes{0x01},
		String("a"),
		Seq{},
		NewMap(),
	}
	for i := 0; i < len(chain)-1; i++ {
		assert.Negative(t, Compare(chain[i], chain[i+1]),
			"%s must sort before %s", chain[i].Kind(), chain[i+1].Kind())
		assert.Positive(t, Compare(chain[i+1], chain[i]))
	}
}

// TestCompare_floats checks the float total order, including the
// positions of the zero signs and NaN.
func TestCompare_floats(t *testing.T) {
	chain := []Value{
		Float64(math.Inf(-1)),
		Float64(-1.5),
		Float64(math.Copysign(0, -1)),
		Float64(0),
		Float32(1.5),
		Float64(math.Inf(1)),
		Float64(math.NaN()),
	}
	for i := 0; i < len(chain)-1; i++ {
		assert.Negative(t, Compare(chain[i], chain[i+1]),
			"%s must sort before %s", diagnostic(chain[i]), diagnostic(chain[i+1]))
	}

	assert.Zero(t, Compare(Float64(math.NaN()), Float32(float32(math.NaN()))))
	assert.Zero(t, Compare(Float32(1.5), Float64(1.5)))
}

// TestCompare_integers checks numeric ordering across signedness.
func TestCompare_integers(t *testing.T) {
	chain := []Value{
		Int(math.MinInt64),
		Int(-300),
		Int(-1),
		Uint(0),
		Uint(31),
		Int(math.MaxInt64),
		Uint(math.MaxUint64),
	}
	for i := 0; i < len(chain)-1; i++ {
		assert.Negative(t, Compare(chain[i], chain[i+1]),
			"%s must sort before %s", diagnostic(chain[i]), diagnostic(chain[i+1]))
	}
	assert.Zero(t, Compare(Int(42), Uint(42)))
}

// TestCompare_containers checks lexicographic container ordering.
func TestCompare_containers(t *testing.T) {
	t.Run("sequences", func(t *testing.T) {
		assert.Negative(t, Compare(Seq{}, Seq{Uint(1)}))
		assert.Negative(t, Compare(Seq{Uint(1)}, Seq{Uint(2)}))
		assert.Negative(t, Compare(Seq{Uint(1)}, Seq{Uint(1), Uint(0)}))
		assert.Zero(t, Compare(Seq{Int(1)}, Seq{Uint(1)}))
	})

	t.Run("maps compare sorted", func(t *testing.T) {
		a := NewOrderedMap()
		require.NoError(t, a.Set(String("b"), Uint(2)))
		require.NoError(t, a.Set(String("a"), Uint(1)))

		b := NewMap()
		require.NoError(t, b.Set(String("a"), Uint(1)))
		require.NoError(t, b.Set(String("b"), Uint(2)))

		assert.Zero(t, Compare(a, b))

		c := NewMap()
		require.NoError(t, c.Set(String("a"), Uint(1)))
		assert.Positive(t, Compare(a, c), "longer map with equal prefix sorts after")
	})

	t.Run("strings and bytes", func(t *testing.T) {
		assert.Negative(t, Compare(String("a"), String("b")))
		assert.Negative(t, Compare(String("a"), String("aa")))
		assert.Negative(t, Compare(Bytes{0x00}, Bytes{0x01}))
	})
}

// TestCompare_agreesWithEqual checks that Compare is zero exactly when
// Equal holds, over corpus pairs.
func TestCompare_agreesWithEqual(t *testing.T) {
	vs := corpus(t)
	for i, a := range vs {
		for j, b := range vs {
			eq := Equal(a, b)
			cz := Compare(a, b) == 0
			assert.Equal(t, eq, cz, "values %d and %d", i, j)
		}
	}
}
