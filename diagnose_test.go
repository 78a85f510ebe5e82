package lilliput

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDiagnose checks the rendered notation for a composite document.
func TestDiagnose(t *testing.T) {
	m := NewOrderedMap()
	require.NoError(t, m.Set(String("id"), Uint(7)))
	require.NoError(t, m.Set(String("name"), String("lil \"p\"")))
	require.NoError(t, m.Set(String("raw"), Bytes{0xff, 0x00}))
	require.NoError(t, m.Set(String("tags"), Seq{String("a"), Null{}, Bool(false)}))

	text, err := Diagnose(mustEncode(t, m))
	require.NoError(t, err)
	assert.Equal(t,
		`{"id": 7, "name": "lil \"p\"", "raw": h'ff00', "tags": ["a", null, false]}`,
		text)
}

// TestDiagnose_floats checks the float spellings, including the marker
// that keeps integral floats apart from integers.
func TestDiagnose_floats(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Float64(1.5), "1.5"},
		{Float64(2), "2.0"},
		{Float32(2), "2.0"},
		{Float64(math.Copysign(0, -1)), "-0.0"},
		{Float64(1e21), "1e+21"},
		{Float64(math.NaN()), "NaN"},
		{Float64(math.Inf(1)), "Infinity"},
		{Float64(math.Inf(-1)), "-Infinity"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			text, err := Diagnose(mustEncode(t, tc.v))
			require.NoError(t, err)
			assert.Equal(t, tc.want, text)
		})
	}
}

// TestDiagnose_wireOrder checks that map entries render in wire order.
func TestDiagnose_wireOrder(t *testing.T) {
	data := []byte{
		0x1a,
		0x61, 0x7a, 0xc1, // "z": 1
		0x61, 0x61, 0xc2, // "a": 2
	}
	text, err := Diagnose(data)
	require.NoError(t, err)
	assert.Equal(t, `{"z": 1, "a": 2}`, text)
}

// TestDiagnose_malformed checks that bad input reports its decode error.
func TestDiagnose_malformed(t *testing.T) {
	_, err := Diagnose([]byte{0x01})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTag)
}

// TestValueString checks the Stringer form used by %v and Println.
func TestValueString(t *testing.T) {
	assert.Equal(t, "null", Null{}.String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "-42", Int(-42).String())
	assert.Equal(t, "42", Uint(42).String())
	assert.Equal(t, `"hi"`, String("hi").String())
	assert.Equal(t, "h''", Bytes{}.String())
	assert.Equal(t, "[1, [2]]", Seq{Uint(1), Seq{Uint(2)}}.String())

	m := NewOrderedMap()
	require.NoError(t, m.Set(Uint(1), String("one")))
	assert.Equal(t, `{1: "one"}`, m.String())
}
