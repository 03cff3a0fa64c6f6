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

// Package wideint implements the wide-integer substrate that the decimal
// kernel builds its coefficients on top of: an unsigned integer with a
// 128-bit inline fast path and a math/big fallback for anything larger.
package wideint

import (
	"math/big"
	"strconv"
	"strings"
	"unsafe"

	"github.com/pkg/errors"
)

// inlineWords is sized so that any coefficient up to 19 decimal digits
// fits in the inline array without a heap allocation. A 19-digit decimal
// value needs at most 64 bits; the product of two such values, which Quo
// and Mul both compute, needs at most 128 bits, i.e. two big.Words on a
// 64-bit platform. Values that don't fit fall back to math/big's normal
// growable representation for arbitrary precision.
const inlineWords = 2

// Int is an unsigned, arbitrary-magnitude integer. It wraps math/big.Int
// and, like math/big.Int itself, must not be copied once used; declare a
// zero-valued Int and take its address. The zero value is ready to use
// and represents 0.
type Int struct {
	_inner big.Int
	_inline [inlineWords]big.Word
	_noCopy noCopy
	_addr   *Int
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

//go:nosplit
//go:nocheckptr
func noescape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}

func (z *Int) copyCheck() {
	if z._addr == nil {
		z._addr = (*Int)(noescape(unsafe.Pointer(z)))
	} else if z._addr != z {
		panic("wideint: illegal use of non-zero Int copied by value")
	}
}

func (z *Int) inner() *big.Int {
	z.copyCheck()
	z.lazyInit()
	return &z._inner
}

func (z *Int) innerRead() *big.Int {
	// Read-only access: skip lazyInit, a zero Int already reads as 0.
	return &z._inner
}

func (z *Int) lazyInit() {
	if z._inner.Bits() == nil {
		z._inline = [inlineWords]big.Word{}
		inline := (*[inlineWords]big.Word)(noescape(unsafe.Pointer(&z._inline[0])))
		z._inner.SetBits(inline[:0])
	}
}

// NewFromUint64 returns a new Int with value x.
func NewFromUint64(x uint64) *Int {
	return new(Int).SetUint64(x)
}

// NewFromInt64 returns a new Int with value abs(x).
func NewFromInt64(x int64) *Int {
	return new(Int).SetUint64(absInt64(x))
}

func absInt64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.inner().SetUint64(x)
	return z
}

// SetInt64 sets z to abs(x) and returns z.
func (z *Int) SetInt64(x int64) *Int {
	return z.SetUint64(absInt64(x))
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	z.inner().Set(x.innerRead())
	return z
}

// SetString sets z to the value of s, which may be a run of decimal digits
// or, with a "0x"/"0X" prefix, hexadecimal digits. It returns z and true on
// success, or nil and false if s is not a valid unsigned literal in the
// indicated base.
func (z *Int) SetString(s string) (*Int, bool) {
	base := 10
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		base = 16
		s = s[2:]
	}
	if s == "" {
		return nil, false
	}
	if _, ok := z.inner().SetString(s, base); !ok {
		return nil, false
	}
	if z.Sign() < 0 {
		return nil, false
	}
	return z, true
}

// MustFromString is a compile-time-literal constructor: it panics if s is
// not a valid unsigned decimal or 0x-prefixed hex literal. It exists for
// package-level var initializers, mirroring the wide-integer contract's
// "construction from compile-time digit string" requirement.
func MustFromString(s string) *Int {
	z, ok := new(Int).SetString(s)
	if !ok {
		panic(errors.Errorf("wideint: invalid literal %q", s))
	}
	return z
}

// Add sets z to x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	z.inner().Add(x.innerRead(), y.innerRead())
	return z
}

// Sub sets z to x-y and returns z. x must be >= y; Int has no sign.
func (z *Int) Sub(x, y *Int) *Int {
	z.inner().Sub(x.innerRead(), y.innerRead())
	return z
}

// Mul sets z to x*y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	z.inner().Mul(x.innerRead(), y.innerRead())
	return z
}

// QuoRem sets z to x/y and r to x%y, and returns the pair. Panics if y
// is zero: callers are expected to guarantee a wide coefficient is
// never divided by zero before reaching here.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int) {
	z.inner().QuoRem(x.innerRead(), y.innerRead(), r.inner())
	return z, r
}

// Lsh sets z to x<<n and returns z.
func (z *Int) Lsh(x *Int, n uint) *Int {
	z.inner().Lsh(x.innerRead(), n)
	return z
}

// Rsh sets z to x>>n and returns z.
func (z *Int) Rsh(x *Int, n uint) *Int {
	z.inner().Rsh(x.innerRead(), n)
	return z
}

// And sets z to x&y and returns z.
func (z *Int) And(x, y *Int) *Int {
	z.inner().And(x.innerRead(), y.innerRead())
	return z
}

// Or sets z to x|y and returns z.
func (z *Int) Or(x, y *Int) *Int {
	z.inner().Or(x.innerRead(), y.innerRead())
	return z
}

// Xor sets z to x^y and returns z.
func (z *Int) Xor(x, y *Int) *Int {
	z.inner().Xor(x.innerRead(), y.innerRead())
	return z
}

// Cmp compares x and y and returns -1, 0 or +1 as x <, ==, > y.
func (x *Int) Cmp(y *Int) int {
	return x.innerRead().Cmp(y.innerRead())
}

// Sign returns -1, 0 or +1. Int is unsigned, so this is always 0 or +1,
// but is provided for symmetry with math/big.Int.
func (x *Int) Sign() int {
	return x.innerRead().Sign()
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool {
	return x.innerRead().Sign() == 0
}

// Uint64 returns the low 64 bits of x, truncating.
func (x *Int) Uint64() uint64 {
	return x.innerRead().Uint64()
}

// IsUint64 reports whether x fits in a uint64 without truncation.
func (x *Int) IsUint64() bool {
	return x.innerRead().IsUint64()
}

// Bool reports whether x is non-zero.
func (x *Int) Bool() bool {
	return x.Sign() != 0
}

// Float64 returns the nearest float64 to x, going through the decimal
// string representation to avoid the precision loss that a direct
// big.Int.Float64 mantissa/exponent conversion can introduce for
// decimal-scaled values (the conversion the decimal kernel actually
// wants is coefficient * 10^exponent, not coefficient alone, but the
// decimal-string path keeps both conversions consistent).
func (x *Int) Float64() float64 {
	f, _ := strconv.ParseFloat(x.String(), 64)
	return f
}

// String returns the base-10 text of x with no leading zeros (other than
// the single digit "0" itself).
func (x *Int) String() string {
	return x.innerRead().String()
}

// Text returns the text of x in the given base (as math/big.Int.Text).
func (x *Int) Text(base int) string {
	return x.innerRead().Text(base)
}

// NumDecimalDigits returns the number of base-10 digits of x, treating 0
// as having 1 digit.
func (x *Int) NumDecimalDigits() int {
	if x.IsZero() {
		return 1
	}
	if x.IsUint64() {
		return numDigitsUint64(x.Uint64())
	}
	// Arbitrary-precision tier: no fixed-width ladder applies, so fall back
	// to a single decimal-string conversion (the "log-scan" the digit-count
	// utility uses for non-native widths).
	return len(strings.TrimLeft(x.String(), "0"))
}

// numDigitsUint64 counts decimal digits with a constant-time compare
// ladder rather than a division loop — the fast path for when the
// representation is a native integer.
func numDigitsUint64(x uint64) int {
	switch {
	case x < 10:
		return 1
	case x < 100:
		return 2
	case x < 1000:
		return 3
	case x < 10000:
		return 4
	case x < 100000:
		return 5
	case x < 1000000:
		return 6
	case x < 10000000:
		return 7
	case x < 100000000:
		return 8
	case x < 1000000000:
		return 9
	case x < 10000000000:
		return 10
	case x < 100000000000:
		return 11
	case x < 1000000000000:
		return 12
	case x < 10000000000000:
		return 13
	case x < 100000000000000:
		return 14
	case x < 1000000000000000:
		return 15
	case x < 10000000000000000:
		return 16
	case x < 100000000000000000:
		return 17
	case x < 1000000000000000000:
		return 18
	case x < 10000000000000000000:
		return 19
	default:
		return 20
	}
}

// Pow10 returns 10^n as a new Int. n must be >= 0.
func Pow10(n int64) *Int {
	z := new(Int).SetUint64(1)
	if n == 0 {
		return z
	}
	ten := new(Int).SetUint64(10)
	z.inner().Exp(ten.innerRead(), big.NewInt(n), nil)
	return z
}

// LessThanPow10 reports whether x < 10^n. The smallest n+1 digit number is
// 10^n itself, so this reduces to a digit-count compare without
// materializing 10^n.
func (x *Int) LessThanPow10(n int) bool {
	return x.NumDecimalDigits() <= n
}
