// file: internals/features/finance/money/money.go
package money

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money adalah nominal uang dalam satuan terkecil (sen), disimpan BIGINT.
// Konvensi satu-satunya di repo ini: SEMUA kolom nominal (fee, payment,
// template, entry) memakai sen. Konversi ke rupiah hanya terjadi di
// formatting/display, tidak pernah di perhitungan.
type Money int64

const Zero Money = 0

func FromSen(v int64) Money { return Money(v) }

// FromRupiah: 1 rupiah = 100 sen.
func FromRupiah(v int64) Money { return Money(v * 100) }

func (m Money) Sen() int64 { return int64(m) }

func (m Money) Add(o Money) Money { return m + o }
func (m Money) Sub(o Money) Money { return m - o }
func (m Money) Neg() Money        { return -m }

// Cmp: -1 kalau m < o, 0 kalau sama, +1 kalau m > o.
func (m Money) Cmp(o Money) int {
	switch {
	case m < o:
		return -1
	case m > o:
		return 1
	default:
		return 0
	}
}

func (m Money) IsZero() bool     { return m == 0 }
func (m Money) IsNegative() bool { return m < 0 }
func (m Money) IsPositive() bool { return m > 0 }

func Min(a, b Money) Money {
	if a < b {
		return a
	}
	return b
}

// FormatIDR memformat ke string rupiah ("12345.50") — hanya untuk display.
func (m Money) FormatIDR() string {
	return decimal.NewFromInt(int64(m)).Div(decimal.NewFromInt(100)).StringFixed(2)
}

func (m Money) String() string { return m.FormatIDR() }

/* ===================== sql.Scanner / driver.Valuer ===================== */

func (m Money) Value() (driver.Value, error) { return int64(m), nil }

func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*m = Money(v)
		return nil
	case nil:
		*m = 0
		return nil
	default:
		return fmt.Errorf("money: cannot scan %T", src)
	}
}
