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

import "math"

// Bool reports d as a boolean: true if d is non-finite, or if its
// absolute value is >= 1; false otherwise.
func (d *Decimal) Bool() bool {
	if !d.finite() {
		return true
	}
	if d.Coeff.IsZero() {
		return false
	}
	return d.Coeff.NumDecimalDigits()+int(d.Exponent) >= 1
}

// Float64 converts d to the nearest float64: infinities and NaN map to
// the corresponding IEEE states. For a finite value the coefficient is
// converted via a decimal-string intermediary (wideint.Int.Float64),
// which keeps a wide coefficient's nearest float64, and is then scaled
// by math.Pow10(Exponent); that scaling is a float64 multiplication and
// can itself round.
func (d *Decimal) Float64() float64 {
	switch {
	case d.nan:
		if d.neg {
			return math.Copysign(math.NaN(), -1)
		}
		return math.NaN()
	case d.inf:
		if d.neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	f := d.Coeff.Float64() * math.Pow10(int(d.Exponent))
	if d.neg {
		f = -f
	}
	return f
}
