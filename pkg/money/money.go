package money

import (
	"errors"
	"fmt"
)

const (
	nanosMin = -999999999
	nanosMax = +999999999
	nanosMod = 1000000000
)

var (
	ErrInvalidValue        = errors.New("money value is invalid")
	ErrMismatchingCurrency = errors.New("mismatching currency codes")
)

// Money is a fixed-point amount split into integer major units and a nanos
// remainder. Units and nanos always carry the same sign and nanos stays in
// (-1e9, 1e9). The field names match the backend wire format.
type Money struct {
	CurrencyCode string `json:"currency_code"`
	Units        int64  `json:"units"`
	Nanos        int32  `json:"nanos"`
}

func (m Money) IsValid() bool {
	return m.CurrencyCode != "" && signMatches(m) && validNanos(m.Nanos)
}

func (m Money) IsZero() bool {
	return m.Units == 0 && m.Nanos == 0
}

func signMatches(m Money) bool {
	return m.Nanos == 0 || m.Units == 0 || (m.Nanos < 0) == (m.Units < 0)
}

func validNanos(nanos int32) bool {
	return nanosMin <= nanos && nanos <= nanosMax
}

// Sum adds two values of the same currency, carrying nanos overflow into
// units and re-normalizing mixed signs.
func Sum(l, r Money) (Money, error) {
	if !l.IsValid() || !r.IsValid() {
		return Money{}, ErrInvalidValue
	}
	if l.CurrencyCode != r.CurrencyCode {
		return Money{}, ErrMismatchingCurrency
	}

	units := l.Units + r.Units
	nanos := int64(l.Nanos) + int64(r.Nanos)

	if (units == 0 && nanos == 0) || (units > 0 && nanos >= 0) || (units < 0 && nanos <= 0) {
		units += nanos / nanosMod
		nanos %= nanosMod
	} else {
		// positive and negative halves; borrow one unit
		if units > 0 {
			units--
			nanos += nanosMod
		} else {
			units++
			nanos -= nanosMod
		}
	}

	return Money{
		CurrencyCode: l.CurrencyCode,
		Units:        units,
		Nanos:        int32(nanos),
	}, nil
}

// MultiplySlow multiplies by repeated addition. Quantities in a cart are
// small, so the loop stays cheap.
func MultiplySlow(m Money, n uint32) Money {
	out := m
	for n > 1 {
		out = Must(Sum(out, m))
		n--
	}
	return out
}

// Must panics on error. Use only with operands already known to be valid.
func Must(v Money, err error) Money {
	if err != nil {
		panic(err)
	}
	return v
}

// Format renders a display price such as "19.99 USD": units, a dot, the two
// leading decimal digits of the nanos remainder, and the currency code.
func Format(m Money) string {
	return fmt.Sprintf("%d.%02d %s", m.Units, m.Nanos/10000000, m.CurrencyCode)
}
