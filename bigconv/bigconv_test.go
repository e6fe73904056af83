package bigconv

import (
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
	"github.com/govalues/bigint"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []string{
			"0",
			"1",
			"-1",
			"999999",
			"-1000000",
			"123456789012345678901234567890",
			strings.Repeat("9", bigint.MaxDigits),
		}
		for _, s := range tests {
			x, ok := new(big.Int).SetString(s, 10)
			require.True(t, ok)
			d, err := FromBig(x)
			require.NoError(t, err)
			assert.Equal(t, s, d.String())
			assert.Equal(t, 0, ToBig(d).Cmp(x), "ToBig(%v)", s)
		}
	})

	t.Run("nil", func(t *testing.T) {
		d, err := FromBig(nil)
		require.NoError(t, err)
		assert.True(t, d.IsZero())
	})

	t.Run("overflow", func(t *testing.T) {
		x := new(big.Int).Exp(big.NewInt(10), big.NewInt(bigint.MaxDigits), nil)
		_, err := FromBig(x)
		assert.True(t, errors.Is(err, bigint.ErrOverflow), "got %v", err)
	})
}

func TestDecimal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, want string
		}{
			{"0", "0"},
			{"-42", "-42"},
			{"12.000", "12"},
			{"-12.0", "-12"},
			{"1e5", "100000"},
			{"123456789012345678901234567890", "123456789012345678901234567890"},
		}
		for _, tt := range tests {
			d, err := decimal.NewFromString(tt.d)
			require.NoError(t, err)
			got, err := FromDecimal(d)
			require.NoError(t, err, "FromDecimal(%v)", tt.d)
			assert.Equal(t, tt.want, got.String())
			assert.True(t, ToDecimal(got).Equal(d), "ToDecimal(%v)", got)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"0.5", "-12.01", "1e-3"}
		for _, s := range tests {
			d, err := decimal.NewFromString(s)
			require.NoError(t, err)
			_, err = FromDecimal(d)
			assert.True(t, errors.Is(err, ErrNotInteger), "FromDecimal(%v) = %v", s, err)
		}
	})
}

func TestApd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, want string
		}{
			{"0", "0"},
			{"-0", "0"},
			{"0E-5", "0"},
			{"-42", "-42"},
			{"12.000", "12"},
			{"1.2E+3", "1200"},
			{"1E+6", "1000000"},
			{"-123456789012345678901234567890", "-123456789012345678901234567890"},
		}
		for _, tt := range tests {
			d, _, err := apd.NewFromString(tt.d)
			require.NoError(t, err)
			got, err := FromApd(d)
			require.NoError(t, err, "FromApd(%v)", tt.d)
			assert.Equal(t, tt.want, got.String())

			back := ToApd(got)
			assert.Equal(t, 0, back.Cmp(d), "ToApd(%v) = %v", got, back)
		}
	})

	t.Run("nil", func(t *testing.T) {
		d, err := FromApd(nil)
		require.NoError(t, err)
		assert.True(t, d.IsZero())
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			d    string
			want error
		}{
			{"NaN", ErrNotFinite},
			{"Infinity", ErrNotFinite},
			{"-Infinity", ErrNotFinite},
			{"0.5", ErrNotInteger},
			{"1.25E+1", ErrNotInteger},
			{"1E+30000", bigint.ErrOverflow},
		}
		for _, tt := range tests {
			d, _, err := apd.NewFromString(tt.d)
			require.NoError(t, err)
			_, err = FromApd(d)
			assert.True(t, errors.Is(err, tt.want), "FromApd(%v) = %v, want %v", tt.d, err, tt.want)
		}
	})
}

func TestExtremeExponents(t *testing.T) {
	tests := []struct {
		name string
		conv func() (bigint.Int, error)
		want error
	}{
		{"apd tiny", func() (bigint.Int, error) { return FromApd(apd.New(1, -2000000000)) }, ErrNotInteger},
		{"apd huge", func() (bigint.Int, error) { return FromApd(apd.New(-7, 2000000000)) }, bigint.ErrOverflow},
		{"apd edge", func() (bigint.Int, error) { return FromApd(apd.New(12, 29999)) }, bigint.ErrOverflow},
		{"decimal tiny", func() (bigint.Int, error) { return FromDecimal(decimal.New(-1, -2000000000)) }, ErrNotInteger},
		{"decimal huge", func() (bigint.Int, error) { return FromDecimal(decimal.New(1, 2000000000)) }, bigint.ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan error, 1)
			go func() {
				_, err := tt.conv()
				done <- err
			}()
			select {
			case err := <-done:
				assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
			case <-time.After(10 * time.Second):
				t.Fatal("conversion did not return within 10s")
			}
		})
	}

	t.Run("largest", func(t *testing.T) {
		got, err := FromDecimal(decimal.New(-3, bigint.MaxDigits-1))
		require.NoError(t, err)
		assert.Equal(t, bigint.MaxDigits, got.Prec())
		assert.True(t, got.IsNeg())
	})
}
