package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllOrderedByMagnitude(t *testing.T) {
	all := All()
	require.Equal(t, []Unit{Thousand, Lakhs, Million, Crore, Billion}, all)
}

func TestFactors(t *testing.T) {
	cases := map[Unit]int64{
		Thousand: 1_000,
		Lakhs:    100_000,
		Million:  1_000_000,
		Crore:    10_000_000,
		Billion:  1_000_000_000,
	}
	for u, want := range cases {
		got, err := u.Factor()
		require.NoError(t, err)
		assert.Equal(t, want, got, "factor for %s", u)
	}

	_, err := Unit("parsec").Factor()
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	// 150 crore is 1500 million.
	got, err := Convert(150, Crore, Million)
	require.NoError(t, err)
	assert.InDelta(t, 1500, got, 1e-9)

	// 2.5 billion is 250 crore.
	got, err = Convert(2.5, Billion, Crore)
	require.NoError(t, err)
	assert.InDelta(t, 250, got, 1e-9)

	// Same-unit conversion is the identity.
	got, err = Convert(42.5, Lakhs, Lakhs)
	require.NoError(t, err)
	assert.Equal(t, 42.5, got)

	_, err = Convert(1, Unit("bogus"), Million)
	assert.Error(t, err)
}

func TestConvertRoundTrip(t *testing.T) {
	// Converting up and back down must not lose precision, even through a
	// non-decimal ratio like lakhs -> crore.
	values := []float64{0.01, 1, 123.456, 99999.99}
	unitsList := All()
	for _, v := range values {
		for _, from := range unitsList {
			for _, to := range unitsList {
				there, err := Convert(v, from, to)
				require.NoError(t, err)
				back, err := Convert(there, to, from)
				require.NoError(t, err)
				assert.InDelta(t, v, back, 1e-9, "%v %s -> %s -> %s", v, from, to, from)
			}
		}
	}
}

func TestDisplayAndZeroes(t *testing.T) {
	assert.Equal(t, "Crore (Cr)", Crore.Display())
	assert.Equal(t, 7, Crore.Zeroes())
	assert.Equal(t, "Thousand", Thousand.Display())
	assert.Equal(t, 3, Thousand.Zeroes())
	assert.True(t, Valid(Lakhs))
	assert.False(t, Valid(Unit("gross")))
}
