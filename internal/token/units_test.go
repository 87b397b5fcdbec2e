package token

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeiToMOR(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		cases := []struct {
			wei      string
			expected float64
		}{
			{"0", 0},
			{"1000000000000000000", 1},
			{"1500000000000000000", 1.5},
			{"1", 1e-18},
			{"-2000000000000000000", -2},
			{" 3000000000000000000 ", 3},
			// above float64 safe integer range, still converts
			{"123456789012345678901234567890", 123456789012.34567890123456789},
		}
		for _, tc := range cases {
			assert.InDelta(t, tc.expected, WeiToMOR(tc.wei), math.Abs(tc.expected)*1e-12, "wei=%s", tc.wei)
		}
	})
	t.Run("malformed input yields zero", func(t *testing.T) {
		for _, wei := range []string{"", "  ", "abc", "1.5", "0x10", "1e18"} {
			assert.Zero(t, WeiToMOR(wei), "wei=%q", wei)
		}
	})
}

func TestSumWei(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Zero(t, SumWei(nil).Sign())
		assert.Zero(t, SumWei([]string{}).Sign())
	})
	t.Run("ok", func(t *testing.T) {
		sum := SumWei([]string{
			"1000000000000000000",
			"2000000000000000000",
			"500000000000000000",
		})
		assert.Equal(t, "3500000000000000000", sum.String())
	})
	t.Run("malformed entries skipped", func(t *testing.T) {
		sum := SumWei([]string{"1000000000000000000", "bogus", ""})
		assert.Equal(t, "1000000000000000000", sum.String())
	})
	t.Run("exact beyond float range", func(t *testing.T) {
		huge := "99999999999999999999999999999999999999"
		sum := SumWei([]string{huge, "1"})
		expected, ok := new(big.Int).SetString(huge, 10)
		require.True(t, ok)
		expected.Add(expected, big.NewInt(1))
		assert.Equal(t, expected.String(), sum.String())
	})
}

// Converting per-record then summing floats must not exceed the exact
// big-int sum converted once by more than floating rounding tolerance.
func TestSumWei_FloatDriftBound(t *testing.T) {
	amounts := []string{
		"123456789012345678",
		"987654321098765432109",
		"1",
		"55000000000000000000000000",
	}

	var perRecord float64
	for _, a := range amounts {
		perRecord += WeiToMOR(a)
	}
	exact := BigWeiToMOR(SumWei(amounts))

	assert.InDelta(t, exact, perRecord, exact*1e-9)
}

func TestFormatMOR(t *testing.T) {
	assert.Equal(t, "1.50", FormatMOR("1500000000000000000", 2))
	assert.Equal(t, "0.00", FormatMOR("", 2))
	assert.Equal(t, "0.00", FormatMOR("garbage", 2))
	assert.Equal(t, "-2.25", FormatMOR("-2250000000000000000", 2))
}
