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

// rounder decides whether 1 should be added to the magnitude of a number
// being rounded. y is the truncated magnitude the 1 would be added to;
// half is -1 if the discarded digits represent less than half of the
// last kept place, 0 if exactly half, +1 if more than half; sign is +1
// or -1, the sign of the value being rounded.
type rounder func(y *wideint.Int, half, sign int) bool

func roundingFunc(mode RoundingMode) rounder {
	switch mode {
	case Down:
		return roundDown
	case Up:
		return roundUp
	case HalfEven:
		return roundHalfEven
	case Ceiling:
		return roundCeiling
	case Floor:
		return roundFloor
	case HalfDown:
		return roundHalfDown
	case ZeroFiveUp:
		return round05Up
	case HalfUp:
		fallthrough
	default:
		return roundHalfUp
	}
}

func roundDown(y *wideint.Int, half, sign int) bool { return false }

// roundUp is only ever invoked when the discarded digits are known
// nonzero (the rounding engine skips calling the rounder otherwise), so
// "round away from zero whenever inexact" is simply "always add one".
func roundUp(y *wideint.Int, half, sign int) bool { return true }

func roundHalfUp(y *wideint.Int, half, sign int) bool { return half >= 0 }

func roundHalfEven(y *wideint.Int, half, sign int) bool {
	if half != 0 {
		return half > 0
	}
	return isOddDecimal(y)
}

func roundCeiling(y *wideint.Int, half, sign int) bool { return sign >= 0 }

func roundFloor(y *wideint.Int, half, sign int) bool { return sign < 0 }

func roundHalfDown(y *wideint.Int, half, sign int) bool { return half > 0 }

func round05Up(y *wideint.Int, half, sign int) bool {
	return lastDigitIsZeroOrFive(y)
}

func isOddDecimal(y *wideint.Int) bool {
	_, r := new(wideint.Int).QuoRem(y, wideint.NewFromUint64(2), new(wideint.Int))
	return !r.IsZero()
}

func lastDigitIsZeroOrFive(y *wideint.Int) bool {
	_, r := new(wideint.Int).QuoRem(y, wideint.NewFromUint64(5), new(wideint.Int))
	return r.IsZero()
}

// roundToPrecision implements the rounding engine: reduce mag to at
// most prec significant digits, adjusting exponent and reporting
// Rounded/Inexact. sign is the sign of the value being rounded
// (needed by Ceiling/Floor). It never looks at policy bounds; bounded
// overflow/underflow/subnormal handling lives in Policy.round, which
// wraps this.
func roundToPrecision(mag *wideint.Int, exponent int32, prec int, mode RoundingMode, sign int) (*wideint.Int, int32, Condition) {
	if prec <= 0 {
		return mag, exponent, 0
	}
	nd := mag.NumDecimalDigits()
	if nd <= prec {
		// Fast path: digits already fit, nothing to do.
		return mag, exponent, 0
	}

	k := nd - prec
	divisor := wideint.Pow10(int64(k))
	y, m := new(wideint.Int).QuoRem(mag, divisor, new(wideint.Int))

	cond := Rounded
	if !m.IsZero() {
		cond |= Inexact
		half := halfCompare(m, divisor)
		if roundingFunc(mode)(y, half, sign) {
			var carried bool
			y, carried = addOneDecimal(y)
			if carried {
				k++
			}
		}
	}
	exponent += int32(k)
	return y, exponent, cond
}

// halfCompare compares 2*m against divisor and returns -1, 0 or +1,
// telling the rounder whether the discarded fraction m/divisor is below,
// exactly, or above one half.
func halfCompare(m, divisor *wideint.Int) int {
	twice := new(wideint.Int).Mul(m, wideint.NewFromUint64(2))
	return twice.Cmp(divisor)
}

// addOneDecimal adds 1 to y's magnitude. If that carries into an extra
// decimal digit (e.g. 999 -> 1000), the result is divided back down by
// 10 and carried reports true so the caller can account for the
// exponent shift that implies.
func addOneDecimal(y *wideint.Int) (result *wideint.Int, carried bool) {
	nd := y.NumDecimalDigits()
	sum := new(wideint.Int).Add(y, wideint.NewFromUint64(1))
	if sum.NumDecimalDigits() > nd {
		sum, _ = new(wideint.Int).QuoRem(sum, wideint.NewFromUint64(10), new(wideint.Int))
		return sum, true
	}
	return sum, false
}
