package money_test

import (
	"math"
	"testing"

	"github.com/gvbank/teller/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("whole rupees", func(t *testing.T) {
		m, err := money.New(50000)
		require.NoError(t, err)
		assert.Equal(t, int64(5000000), m.Paise())
	})

	t.Run("two decimal places", func(t *testing.T) {
		m, err := money.New(99.95)
		require.NoError(t, err)
		assert.Equal(t, int64(9995), m.Paise())
	})

	t.Run("rejects negative", func(t *testing.T) {
		_, err := money.New(-1)
		assert.ErrorIs(t, err, money.ErrInvalidAmount)
	})

	t.Run("rejects NaN", func(t *testing.T) {
		_, err := money.New(math.NaN())
		assert.ErrorIs(t, err, money.ErrInvalidAmount)
	})

	t.Run("rejects infinity", func(t *testing.T) {
		_, err := money.New(math.Inf(1))
		assert.ErrorIs(t, err, money.ErrInvalidAmount)
	})

	t.Run("rejects sub-paise fractions", func(t *testing.T) {
		_, err := money.New(10.001)
		assert.ErrorIs(t, err, money.ErrInvalidAmount)
	})

	t.Run("rejects overflow", func(t *testing.T) {
		_, err := money.New(math.MaxFloat64)
		assert.ErrorIs(t, err, money.ErrAmountExceedsMaxSafeInt)
	})
}

func TestFromPaise(t *testing.T) {
	t.Parallel()

	m, err := money.FromPaise(12345)
	require.NoError(t, err)
	assert.Equal(t, "123.45", m.DecimalString())

	_, err = money.FromPaise(-1)
	assert.ErrorIs(t, err, money.ErrInvalidAmount)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		paise int64
		ok    bool
	}{
		{"50000", 5000000, true},
		{"50000.00", 5000000, true},
		{"0.01", 1, true},
		{" 123.45 ", 12345, true},
		{"₹99.95", 9995, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-5", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := money.Parse(tt.in)
			if !tt.ok {
				assert.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.paise, m.Paise())
		})
	}
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	t.Run("add", func(t *testing.T) {
		sum, err := money.Must(300).Add(money.Must(200))
		require.NoError(t, err)
		assert.True(t, sum.Equals(money.Must(500)))
	})

	t.Run("add overflow", func(t *testing.T) {
		big, err := money.FromPaise(math.MaxInt64)
		require.NoError(t, err)
		_, err = big.Add(money.Must(1))
		assert.ErrorIs(t, err, money.ErrAmountExceedsMaxSafeInt)
	})

	t.Run("sub", func(t *testing.T) {
		diff, err := money.Must(500).Sub(money.Must(200))
		require.NoError(t, err)
		assert.True(t, diff.Equals(money.Must(300)))
	})

	t.Run("sub below zero", func(t *testing.T) {
		_, err := money.Must(100).Sub(money.Must(200))
		assert.ErrorIs(t, err, money.ErrNegativeResult)
	})

	t.Run("comparisons", func(t *testing.T) {
		assert.True(t, money.Must(1).LessThan(money.Must(2)))
		assert.True(t, money.Must(2).GreaterThan(money.Must(1)))
		assert.True(t, money.Zero().IsZero())
	})
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "₹50000.00", money.Must(50000).String())
	assert.Equal(t, "99.95", money.Must(99.95).DecimalString())
	assert.Equal(t, "0.05", money.Must(0.05).DecimalString())
}
