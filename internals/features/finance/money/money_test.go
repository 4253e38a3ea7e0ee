package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmeticIsExactInteger(t *testing.T) {
	a := FromSen(1000050) // 10.000,50
	b := FromSen(999950)

	assert.Equal(t, FromSen(2000000), a.Add(b))
	assert.Equal(t, FromSen(100), a.Sub(b))
	assert.Equal(t, FromSen(-100), b.Sub(a))
	assert.Equal(t, FromSen(-1000050), a.Neg())
}

func TestFromRupiah(t *testing.T) {
	assert.Equal(t, FromSen(150000), FromRupiah(1500))
}

func TestCmpTotalOrder(t *testing.T) {
	assert.Equal(t, -1, FromSen(1).Cmp(FromSen(2)))
	assert.Equal(t, 0, FromSen(2).Cmp(FromSen(2)))
	assert.Equal(t, 1, FromSen(3).Cmp(FromSen(2)))

	assert.True(t, Zero.IsZero())
	assert.True(t, FromSen(-1).IsNegative())
	assert.True(t, FromSen(1).IsPositive())
	assert.False(t, Zero.IsNegative())
}

func TestMin(t *testing.T) {
	assert.Equal(t, FromSen(5), Min(FromSen(5), FromSen(9)))
	assert.Equal(t, FromSen(5), Min(FromSen(9), FromSen(5)))
}

func TestFormatIDRDisplayOnly(t *testing.T) {
	assert.Equal(t, "10000.50", FromSen(1000050).FormatIDR())
	assert.Equal(t, "0.00", Zero.FormatIDR())
	assert.Equal(t, "-0.01", FromSen(-1).FormatIDR())
}

func TestScanValueRoundTrip(t *testing.T) {
	v, err := FromSen(123456).Value()
	assert.NoError(t, err)

	var m Money
	assert.NoError(t, m.Scan(v))
	assert.Equal(t, FromSen(123456), m)

	assert.Error(t, m.Scan("not-an-int"))
}
