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

// Plus sets z to a copy of x, unchanged (unary "+").
func (p *Policy) Plus(z, x *Decimal) *Decimal {
	return z.Set(x)
}

// Minus sets z to -x (unary "-"): the sign is flipped only for a
// nonzero finite value or an Infinity; a zero or a NaN keeps its sign
// bit as-is.
func (p *Policy) Minus(z, x *Decimal) *Decimal {
	z.Set(x)
	if x.nan {
		return z
	}
	if x.inf || !x.Coeff.IsZero() {
		z.neg = !x.neg
	}
	return z
}

// Abs sets z to the absolute value of x: the sign bit is cleared unless
// x is NaN (NaN's sign passes through unchanged, per the same rule
// Minus follows for it).
func (p *Policy) Abs(z, x *Decimal) *Decimal {
	z.Set(x)
	if !x.nan {
		z.neg = false
	}
	return z
}

// Incr adds one to d in place (prefix "++") and returns d.
func (p *Policy) Incr(d *Decimal) *Decimal {
	one := New(1, 0)
	return p.Add(d, d, one)
}

// Decr subtracts one from d in place (prefix "--") and returns d.
func (p *Policy) Decr(d *Decimal) *Decimal {
	one := New(1, 0)
	return p.Sub(d, d, one)
}

// IsZero reports whether d is a finite value with a zero coefficient.
func (d *Decimal) IsZero() bool { return d.finite() && d.Coeff.IsZero() }
