package argparse

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgument(t *testing.T) {
	t.Parallel()

	t.Run("unset value", func(t *testing.T) {
		t.Parallel()
		arg := NewArgument("print-output")
		require.Equal(t, "print-output", arg.Name())
		require.False(t, arg.Required())
		require.Empty(t, arg.Help())

		s, err := Value[string](arg)
		require.NoError(t, err)
		require.Equal(t, "", s)
		b, err := Value[bool](arg)
		require.NoError(t, err)
		require.True(t, b)

		_, err = Value[int](arg)
		require.Error(t, err)
		require.ErrorIs(t, err, strconv.ErrSyntax)
		_, err = Value[float64](arg)
		require.ErrorIs(t, err, strconv.ErrSyntax)
	})
	t.Run("required", func(t *testing.T) {
		t.Parallel()
		arg := RequiredArgument("n-iter-max")
		require.True(t, arg.Required())
		require.Equal(t, "n-iter-max", arg.Name())
	})
	t.Run("chaining", func(t *testing.T) {
		t.Parallel()
		arg := NewArgument("log-level")
		got := arg.SetHelp("Log level").SetValue("info")
		require.Same(t, arg, got)
		require.Equal(t, "Log level", arg.Help())
		require.Equal(t, "info", arg.Raw())
	})
	t.Run("encoding", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			in       any
			expected string
		}{
			{in: true, expected: "true"},
			{in: false, expected: "false"},
			{in: 10, expected: "10"},
			{in: -7, expected: "-7"},
			{in: int64(1 << 40), expected: "1099511627776"},
			{in: uint8(255), expected: "255"},
			{in: 1e-6, expected: "1e-06"},
			{in: 0.25, expected: "0.25"},
			{in: float32(1.5), expected: "1.5"},
			{in: "info", expected: "info"},
			{in: []byte("raw"), expected: "raw"},
			{in: 1500 * time.Millisecond, expected: "1.5s"},
		}
		for _, tt := range tests {
			arg := NewArgument("x").SetValue(tt.in)
			assert.Equal(t, tt.expected, arg.Raw(), "encoding %T(%v)", tt.in, tt.in)
		}
	})
	t.Run("bool decoding", func(t *testing.T) {
		t.Parallel()
		tests := map[string]bool{
			"":      true,
			"true":  true,
			"false": false,
			"TRUE":  false,
			"1":     false,
			"yes":   false,
		}
		for raw, expected := range tests {
			got, err := Value[bool](NewArgument("x").SetValue(raw))
			require.NoError(t, err)
			assert.Equal(t, expected, got, "decoding %q", raw)
		}
	})
	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		arg := NewArgument("x")

		require.True(t, MustValue[bool](arg.SetValue(true)))
		require.False(t, MustValue[bool](arg.SetValue(false)))
		require.Equal(t, 42, MustValue[int](arg.SetValue(42)))
		require.Equal(t, -3, MustValue[int](arg.SetValue(-3)))
		require.Equal(t, int64(-1<<62), MustValue[int64](arg.SetValue(int64(-1<<62))))
		require.Equal(t, uint64(1<<63), MustValue[uint64](arg.SetValue(uint64(1<<63))))
		require.Equal(t, 1e-6, MustValue[float64](arg.SetValue(1e-6)))
		require.Equal(t, 0.1, MustValue[float64](arg.SetValue(0.1)))
		require.Equal(t, float32(3.25), MustValue[float32](arg.SetValue(float32(3.25))))
		require.Equal(t, "gmres", MustValue[string](arg.SetValue("gmres")))
		require.Equal(t, 90*time.Second, MustValue[time.Duration](arg.SetValue(90*time.Second)))
	})
	t.Run("decode errors", func(t *testing.T) {
		t.Parallel()
		arg := NewArgument("n-iter-max").SetValue("ten")
		_, err := Value[int](arg)
		require.Error(t, err)
		require.ErrorIs(t, err, strconv.ErrSyntax)
		assert.ErrorContains(t, err, `argument "n-iter-max"`)

		var numErr *strconv.NumError
		require.ErrorAs(t, err, &numErr)
		require.Equal(t, "ten", numErr.Num)

		_, err = Value[int](NewArgument("x").SetValue("12abc"))
		require.ErrorIs(t, err, strconv.ErrSyntax)
		_, err = Value[uint64](NewArgument("x").SetValue(-1))
		require.ErrorIs(t, err, strconv.ErrSyntax)
		_, err = Value[int64](NewArgument("x").SetValue("99999999999999999999"))
		require.ErrorIs(t, err, strconv.ErrRange)
		_, err = Value[time.Duration](NewArgument("x").SetValue("soon"))
		require.Error(t, err)
		_, err = Value[int](nil)
		require.Error(t, err)
	})
	t.Run("must value panics", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() {
			_ = MustValue[float64](NewArgument("abs-tol").SetValue("tiny"))
		})
		require.Panics(t, func() {
			_ = MustValue[string](nil)
		})
	})
	t.Run("summary", func(t *testing.T) {
		t.Parallel()
		arg := RequiredArgument("n-iter-max").SetHelp("Max no. iterations for the solver").SetValue(10)
		require.Equal(t, "--n-iter-max\tMax no. iterations for the solver (Required true, Value: 10)\n", arg.String())
		require.Equal(t, "--n-iter-max\tMax no. iterations for the solver (Value: 10)\n", arg.Summary(false))

		arg = NewArgument("print-output")
		require.Equal(t, "--print-output\t (Required false, Value: )\n", arg.String())
	})
}
