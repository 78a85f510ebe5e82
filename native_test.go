package lilliput

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromNative checks conversion from plain Go values.
func TestFromNative(t *testing.T) {
	t.Run("scalars", func(t *testing.T) {
		cases := []struct {
			in   any
			want Value
		}{
			{nil, Null{}},
			{true, Bool(true)},
			{int(-3), Int(-3)},
			{int8(-3), Int(-3)},
			{int64(300), Int(300)},
			{uint(7), Uint(7)},
			{uint64(math.MaxUint64), Uint(math.MaxUint64)},
			{float32(1.5), Float32(1.5)},
			{float64(1.1), Float64(1.1)},
			{"hi", String("hi")},
			{[]byte{0x01}, Bytes{0x01}},
		}
		for _, tc := range cases {
			got, err := FromNative(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "input %#v", tc.in)
		}
	})

	t.Run("values pass through", func(t *testing.T) {
		v := Seq{Uint(1)}
		got, err := FromNative(v)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	})

	t.Run("json shapes", func(t *testing.T) {
		got, err := FromNative(map[string]any{
			"list": []any{int64(1), "two", nil},
			"ok":   true,
		})
		require.NoError(t, err)

		m := got.(*Map)
		assert.Equal(t, 2, m.Len())
		list, ok := m.Get(String("list"))
		require.True(t, ok)
		assert.True(t, Equal(list, Seq{Uint(1), String("two"), Null{}}))
	})

	t.Run("json number", func(t *testing.T) {
		cases := []struct {
			in   json.Number
			want Value
		}{
			{json.Number("300"), Int(300)},
			{json.Number("-300"), Int(-300)},
			{json.Number("18446744073709551615"), Uint(math.MaxUint64)},
			{json.Number("1.5"), Float64(1.5)},
			{json.Number("1e3"), Float64(1000)},
		}
		for _, tc := range cases {
			got, err := FromNative(tc.in)
			require.NoError(t, err, "number %s", tc.in)
			assert.Equal(t, tc.want, got, "number %s", tc.in)
		}

		_, err := FromNative(json.Number("not a number"))
		assert.Error(t, err)
	})

	t.Run("map with any keys", func(t *testing.T) {
		got, err := FromNative(map[any]any{int64(1): "one"})
		require.NoError(t, err)

		m := got.(*Map)
		v, ok := m.Get(Uint(1))
		require.True(t, ok)
		assert.Equal(t, String("one"), v)
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := FromNative(make(chan int))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot convert")
	})

	t.Run("nested error names the path", func(t *testing.T) {
		_, err := FromNative([]any{1, make(chan int)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "index 1")
	})
}

// TestToNative checks conversion to plain Go values.
func TestToNative(t *testing.T) {
	t.Run("scalars", func(t *testing.T) {
		assert.Nil(t, ToNative(Null{}))
		assert.Nil(t, ToNative(nil))
		assert.Equal(t, true, ToNative(Bool(true)))
		assert.Equal(t, int64(-3), ToNative(Int(-3)))
		assert.Equal(t, uint64(300), ToNative(Uint(300)))
		assert.Equal(t, float32(1.5), ToNative(Float32(1.5)))
		assert.Equal(t, 1.1, ToNative(Float64(1.1)))
		assert.Equal(t, "hi", ToNative(String("hi")))
		assert.Equal(t, []byte{0x01}, ToNative(Bytes{0x01}))
	})

	t.Run("containers", func(t *testing.T) {
		m := NewOrderedMap()
		require.NoError(t, m.Set(String("a"), Seq{Uint(1), Null{}}))

		got := ToNative(m)
		assert.Equal(t, map[string]any{"a": []any{uint64(1), nil}}, got)
	})

	t.Run("non-string keys render diagnostically", func(t *testing.T) {
		m := NewMap()
		require.NoError(t, m.Set(Uint(1), String("one")))
		require.NoError(t, m.Set(Bool(true), String("yes")))

		got := ToNative(m).(map[string]any)
		assert.Equal(t, "one", got["1"])
		assert.Equal(t, "yes", got["true"])
	})

	t.Run("round trip through native", func(t *testing.T) {
		v, err := FromNative(map[string]any{"n": int64(-5), "s": []any{"x"}})
		require.NoError(t, err)

		data := mustEncode(t, v)
		back, err := Decode(data)
		require.NoError(t, err)

		assert.Equal(t,
			map[string]any{"n": int64(-5), "s": []any{"x"}},
			ToNative(back))
	})
}
