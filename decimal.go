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

import "github.com/quickfur/stdxdecimal/wideint"

// Decimal is an exact base-10 value:
//
//	(-1)^sign * Coeff * 10^Exponent
//
// unless IsNaN or IsInfinite, in which case Coeff and Exponent are always 0.
// Decimal is a plain value: assignment copies every field, there is no
// internal lock, and no cleanup is required. It is not safe for
// unsynchronized concurrent mutation of a single instance; independent
// Decimals are independent.
type Decimal struct {
	neg bool
	nan bool
	inf bool

	// Coeff is the unsigned magnitude. Its representation is chosen by
	// wideint.Int: zero allocation for coefficients up to 19 decimal
	// digits, math/big's growable representation beyond that. See
	// wideint's package doc for why one type covers every precision
	// tier a coefficient needs to span.
	Coeff wideint.Int
	// Exponent is the base-10 scale factor.
	Exponent int32

	// Flags are the eight sticky condition flags this value's producing
	// operation raised. They are per-value, not process-global; the
	// caller resets them with Flags.Reset when desired.
	Flags Flags
}

// system-wide exponent bounds on parsed input: Parse rejects a literal
// whose exponent falls outside them as an invalid operation. They are
// not the policy's configurable MaxExponent/MinExponent, and values
// built with New or produced by arithmetic are not checked against
// them; exponent alignment has its own limit, maxAlignmentDigits in
// arith.go.
const (
	systemMaxExponent = 100000
	systemMinExponent = -systemMaxExponent
)

// New returns a new finite Decimal with the given coefficient and
// exponent, unrounded. A negative coeff is stored as sign=1 with the
// absolute value as the coefficient.
func New(coeff int64, exponent int32) *Decimal {
	d := &Decimal{Exponent: exponent}
	if coeff < 0 {
		d.neg = true
	}
	d.Coeff.SetInt64(coeff)
	return d
}

// NewInfinity returns a signed Infinity.
func NewInfinity(negative bool) *Decimal {
	return &Decimal{neg: negative, inf: true}
}

// NewNaN returns a signed NaN. Only quiet NaN is modeled: there is no
// signaling-NaN state and no diagnostic payload.
func NewNaN(negative bool) *Decimal {
	return &Decimal{neg: negative, nan: true}
}

// Set sets d to x and returns d.
func (d *Decimal) Set(x *Decimal) *Decimal {
	d.neg = x.neg
	d.nan = x.nan
	d.inf = x.inf
	d.Coeff.Set(&x.Coeff)
	d.Exponent = x.Exponent
	return d
}

// Dup returns a new Decimal with the same value and flags as d. Unlike
// Set, Dup also copies Flags — Set is the internal, value-only copy
// every operation uses to seed its result before computing fresh flags
// for it.
func (d *Decimal) Dup() *Decimal {
	cp := new(Decimal).Set(d)
	cp.Flags = d.Flags
	return cp
}

// IsNaN reports whether d is NaN.
func (d *Decimal) IsNaN() bool { return d.nan }

// IsInfinite reports whether d is a signed Infinity.
func (d *Decimal) IsInfinite() bool { return d.inf }

// finite reports whether d is neither NaN nor Infinite.
func (d *Decimal) finite() bool { return !d.nan && !d.inf }

// Negative reports whether d's sign bit is set. This is true for -0 and
// for a negative NaN/Infinity, not just for negative finite magnitudes;
// use Sign for a value comparison.
func (d *Decimal) Negative() bool { return d.neg }

// Sign returns -1 if d is a nonzero finite value with sign set, +1 if a
// nonzero finite value without sign set, and 0 for either zero. NaNs and
// Infinities report their sign bit as ±1 (Infinity always; NaN because
// ordering in compare.go needs a sign to work with even though NaN has
// no magnitude).
func (d *Decimal) Sign() int {
	if d.nan || d.inf {
		if d.neg {
			return -1
		}
		return 1
	}
	if d.Coeff.IsZero() {
		return 0
	}
	if d.neg {
		return -1
	}
	return 1
}

// NumDigits returns the number of decimal digits in d.Coeff.
func (d *Decimal) NumDigits() int64 {
	return int64(d.Coeff.NumDecimalDigits())
}

// round applies the rounding engine together with p's optional
// exponent bounds (producing Overflow/Underflow/Subnormal/Clamped as
// appropriate) to d in place and returns the accumulated Condition. It
// does not invoke hooks; callers combine
// the returned Condition with whatever else an operation raised and
// signal once via Policy.signal, so that, e.g., a Quo's own
// DivisionByZero and the final rounding's Inexact/Rounded are reported
// together in the fixed priority order.
func (p *Policy) round(d *Decimal) Condition {
	if !d.finite() {
		return 0
	}
	var cond Condition
	sign := 1
	if d.neg {
		sign = -1
	}

	if p.MaxExponent != nil || p.MinExponent != nil {
		nd := d.Coeff.NumDecimalDigits()
		adj := int64(d.Exponent) + int64(nd) - 1
		switch {
		case p.MinExponent != nil && adj < int64(*p.MinExponent):
			cond |= Subnormal
			etiny := int64(*p.MinExponent) - int64(p.Precision) + 1
			if int64(d.Exponent) < etiny {
				newPrec := adj - etiny + 1
				if newPrec < 0 {
					newPrec = 0
				}
				mag, exp, rcond := roundToPrecision(&d.Coeff, d.Exponent, int(newPrec), p.Rounding, sign)
				d.Coeff.Set(mag)
				d.Exponent = exp
				cond |= rcond
				if cond.has(Inexact) {
					cond |= Underflow
				}
				return cond
			}
			return cond
		case p.MaxExponent != nil && adj > int64(*p.MaxExponent):
			cond |= Overflow
		}
	}

	mag, exp, rcond := roundToPrecision(&d.Coeff, d.Exponent, int(p.Precision), p.Rounding, sign)
	d.Coeff.Set(mag)
	d.Exponent = exp
	cond |= rcond
	return cond
}

// Round sets d to x rounded to p's precision and rounding mode, invoking
// hooks, and returns d (if a hook that panics/aborts fires for a raised
// condition, Round itself never returns: control leaves through the
// hook).
func (p *Policy) Round(d, x *Decimal) *Decimal {
	d.Set(x)
	cond := p.round(d)
	p.signal(d, cond)
	return d
}
