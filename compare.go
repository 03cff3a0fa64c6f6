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

// Cmp returns -1, 0 or +1 as x is less than, equal to, or greater than
// y, under a total order — deliberately not the pure General Decimal
// Arithmetic compare, which leaves NaN unordered. This total order is
// what lets a slice containing NaNs and Infinities be sorted at all:
// every value, including both NaNs, is placed into one of five ordered
// bands: -Infinity < -NaN < NaN < (every finite value) < +Infinity,
// with finite values further ordered among themselves by their actual
// numeric value (a rounding-free subtraction).
func Cmp(x, y *Decimal) int {
	rx, ry := rank(x), rank(y)
	if rx != ry {
		if rx < ry {
			return -1
		}
		return 1
	}
	if rx != 3 {
		// Same band, and the band isn't "finite": -Inf/-Inf, +Inf/+Inf,
		// -NaN/-NaN and NaN/NaN are each defined equal (rules 1 and 3).
		return 0
	}
	return cmpFinite(x, y)
}

// rank places x into one of the five ordered bands the total order
// defines: 0 = -Infinity, 1 = -NaN, 2 = NaN, 3 = finite, 4 = +Infinity.
func rank(x *Decimal) int {
	switch {
	case x.inf:
		if x.neg {
			return 0
		}
		return 4
	case x.nan:
		if x.neg {
			return 1
		}
		return 2
	default:
		return 3
	}
}

// cmpFinite orders two finite values by actual numeric value.
func cmpFinite(x, y *Decimal) int {
	if x.Coeff.IsZero() && y.Coeff.IsZero() {
		return 0 // both zero, equal regardless of sign
	}
	// "signs differ ⇒ the negative one is less" and "compute L-R and
	// inspect the sign" agree on every case (a zero-vs-nonzero
	// comparison is just a subtraction with one operand zero), so both
	// are implemented as a single rounding-free subtraction here.
	xm, ym, _ := align(x, y)
	yEffNeg := !y.neg // subtraction flips R's effective sign
	if x.neg == yEffNeg {
		sum := new(wideint.Int).Add(xm, ym)
		if sum.IsZero() {
			return 0
		}
		if x.neg {
			return -1
		}
		return 1
	}
	switch c := xm.Cmp(ym); {
	case c == 0:
		return 0
	case c > 0:
		if x.neg {
			return -1
		}
		return 1
	default:
		if yEffNeg {
			return -1
		}
		return 1
	}
}

// Equal reports whether Cmp(x, y) == 0.
func Equal(x, y *Decimal) bool { return Cmp(x, y) == 0 }
