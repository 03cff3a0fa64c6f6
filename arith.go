// Copyright 2024 The stdxdecimal Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package decimal

import (
	"fmt"

	"github.com/quickfur/stdxdecimal/wideint"
)

// maxAlignmentDigits bounds how many decimal digits exponent alignment
// (upscale) will ever append to a coefficient. Beyond this, aligning
// the two exponents would mean allocating and shifting a coefficient of
// a million-plus digits for no representational gain — an insufficient
// storage condition that aborts unconditionally rather than surfacing
// as a recoverable flag, since no configured Policy can sensibly
// continue past it.
const maxAlignmentDigits = 1_000_000

// AlignmentOverflowError is the panic value raised when exponent
// alignment would require shifting a coefficient by more digits than
// maxAlignmentDigits. It is deliberately distinct from PolicyError:
// PolicyError is what a Policy's own Throw hooks produce for ordinary
// exceptional conditions; this one aborts unconditionally, independent
// of policy, since it signals a storage limit rather than an
// arithmetic result a hook could meaningfully recover from.
type AlignmentOverflowError struct {
	Delta int64
}

func (e *AlignmentOverflowError) Error() string {
	return fmt.Sprintf("stdxdecimal: exponent alignment would shift %d digits, exceeding the storage bound", e.Delta)
}

// upscale returns mag * 10^delta; delta must be >= 0.
func upscale(mag *wideint.Int, delta int64) *wideint.Int {
	if delta == 0 {
		return mag
	}
	if delta > maxAlignmentDigits {
		panic(&AlignmentOverflowError{Delta: delta})
	}
	return new(wideint.Int).Mul(mag, wideint.Pow10(delta))
}

// align brings x and y's coefficients to a common exponent, the smaller
// of the two. x and y must both be finite.
func align(x, y *Decimal) (xm, ym *wideint.Int, exp int32) {
	switch {
	case x.Exponent == y.Exponent:
		return &x.Coeff, &y.Coeff, x.Exponent
	case x.Exponent > y.Exponent:
		return upscale(&x.Coeff, int64(x.Exponent)-int64(y.Exponent)), &y.Coeff, y.Exponent
	default:
		return &x.Coeff, upscale(&y.Coeff, int64(y.Exponent)-int64(x.Exponent)), x.Exponent
	}
}

func signOf(neg bool) int {
	if neg {
		return -1
	}
	return 1
}

// isZeroFinite reports whether d is a finite value whose coefficient is
// zero.
func isZeroFinite(d *Decimal) bool { return d.finite() && d.Coeff.IsZero() }

// setNaN overwrites z as a NaN with the given sign, clearing every
// other field.
func setNaN(z *Decimal, neg bool) { *z = Decimal{neg: neg, nan: true} }

// setInf overwrites z as an Infinity with the given sign.
func setInf(z *Decimal, neg bool) { *z = Decimal{neg: neg, inf: true} }

// Add sets z = x + y, rounded and signaled per p, and returns z.
func (p *Policy) Add(z, x, y *Decimal) *Decimal {
	return p.addSigned(z, x, y, false)
}

// Sub sets z = x - y, rounded and signaled per p, and returns z.
func (p *Policy) Sub(z, x, y *Decimal) *Decimal {
	return p.addSigned(z, x, y, true)
}

// addSigned implements addition under the General Decimal Arithmetic
// model; Sub is Add with y's sign flipped (negate == true), except that
// a NaN y is never mutated: the NaN-propagation branch below reads y's
// own sign directly regardless of negate.
func (p *Policy) addSigned(z, x, y *Decimal, negate bool) *Decimal {
	if x.nan || y.nan {
		src := x
		if !x.nan {
			src = y
		}
		setNaN(z, src.neg)
		p.signal(z, 0)
		return z
	}

	yNeg := y.neg
	if negate {
		yNeg = !yNeg
	}

	if x.inf || y.inf {
		switch {
		case x.inf && y.inf:
			if x.neg == yNeg {
				setInf(z, x.neg)
				p.signal(z, 0)
			} else {
				setNaN(z, false)
				p.signal(z, InvalidOperation)
			}
		case x.inf:
			setInf(z, x.neg)
			p.signal(z, 0)
		default:
			setInf(z, yNeg)
			p.signal(z, 0)
		}
		return z
	}

	xm, ym, exp := align(x, y)
	var mag wideint.Int
	var sign int
	if x.neg == yNeg {
		mag.Add(xm, ym)
		sign = signOf(x.neg)
		if mag.IsZero() {
			sign = 0
		}
	} else {
		switch c := xm.Cmp(ym); {
		case c == 0:
			sign = 0
		case c > 0:
			mag.Sub(xm, ym)
			sign = signOf(x.neg)
		default:
			mag.Sub(ym, xm)
			sign = signOf(yNeg)
		}
	}

	z.nan, z.inf = false, false
	z.Coeff.Set(&mag)
	z.Exponent = exp
	switch {
	case sign < 0:
		z.neg = true
	case sign > 0:
		z.neg = false
	default:
		z.neg = (x.neg && yNeg) || (x.neg != yNeg && p.Rounding == Floor)
	}

	cond := p.round(z)
	p.signal(z, cond)
	return z
}

// Mul sets z = x * y, rounded and signaled per p, and returns z.
func (p *Policy) Mul(z, x, y *Decimal) *Decimal {
	if x.nan || y.nan {
		src := x
		if !x.nan {
			src = y
		}
		setNaN(z, src.neg)
		p.signal(z, 0)
		return z
	}

	sign := x.neg != y.neg

	if x.inf || y.inf {
		if isZeroFinite(x) || isZeroFinite(y) {
			setNaN(z, false)
			p.signal(z, InvalidOperation)
			return z
		}
		setInf(z, sign)
		p.signal(z, 0)
		return z
	}

	var coeff wideint.Int
	coeff.Mul(&x.Coeff, &y.Coeff)
	z.nan, z.inf = false, false
	z.Coeff.Set(&coeff)
	z.Exponent = x.Exponent + y.Exponent
	z.neg = sign

	cond := p.round(z)
	p.signal(z, cond)
	return z
}

// Quo sets z = x / y, rounded and signaled per p, and returns z.
func (p *Policy) Quo(z, x, y *Decimal) *Decimal {
	if x.nan || y.nan {
		src := x
		if !x.nan {
			src = y
		}
		setNaN(z, src.neg)
		p.signal(z, 0)
		return z
	}

	sign := x.neg != y.neg

	if x.inf && y.inf {
		setNaN(z, false)
		p.signal(z, InvalidOperation)
		return z
	}

	xZero := isZeroFinite(x)
	yZero := isZeroFinite(y)

	if xZero && yZero {
		setNaN(z, false)
		p.signal(z, DivisionByZero)
		return z
	}

	if x.inf {
		setInf(z, sign)
		p.signal(z, 0)
		return z
	}
	if y.inf {
		z.nan, z.inf = false, false
		z.neg = sign
		z.Coeff.SetUint64(0)
		z.Exponent = 0
		p.signal(z, 0)
		return z
	}

	if yZero {
		setInf(z, sign)
		p.signal(z, DivisionByZero|InvalidOperation)
		return z
	}

	if xZero {
		z.nan, z.inf = false, false
		z.neg = sign
		z.Coeff.SetUint64(0)
		z.Exponent = x.Exponent - y.Exponent
		cond := p.round(z)
		p.signal(z, cond)
		return z
	}

	mag, exp := longDivide(&x.Coeff, x.Exponent, &y.Coeff, y.Exponent, int(p.Precision))
	z.nan, z.inf = false, false
	z.neg = sign
	z.Coeff.Set(mag)
	z.Exponent = exp
	cond := p.round(z)
	p.signal(z, cond)
	return z
}

// longDivide implements base-10 long division: divide lc (scaled by
// 10^lexp) by rc (scaled by 10^rexp), producing at most prec+1
// significant digits of quotient, ready for a final rounding pass down
// to prec.
func longDivide(lc *wideint.Int, lexp int32, rc *wideint.Int, rexp int32, prec int) (*wideint.Int, int32) {
	ten := wideint.NewFromUint64(10)
	adjust := 0
	dividend := new(wideint.Int).Set(lc)
	divisor := new(wideint.Int).Set(rc)

	for dividend.Cmp(divisor) < 0 {
		dividend = new(wideint.Int).Mul(dividend, ten)
		adjust++
	}
	for dividend.Cmp(new(wideint.Int).Mul(divisor, ten)) >= 0 {
		divisor = new(wideint.Int).Mul(divisor, ten)
		adjust--
	}

	res := new(wideint.Int)
	one := wideint.NewFromUint64(1)
	for {
		for divisor.Cmp(dividend) <= 0 {
			dividend = new(wideint.Int).Sub(dividend, divisor)
			res = new(wideint.Int).Add(res, one)
		}
		if (dividend.IsZero() && adjust >= 0) || res.NumDecimalDigits() == prec+1 {
			break
		}
		res = new(wideint.Int).Mul(res, ten)
		dividend = new(wideint.Int).Mul(dividend, ten)
		adjust++
	}

	exponent := int32(int64(lexp) - int64(rexp) - int64(adjust))
	return res, exponent
}
