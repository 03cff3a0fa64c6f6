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

import "testing"

func TestNewSign(t *testing.T) {
	if New(5, 0).Sign() != 1 {
		t.Errorf("New(5,0).Sign() should be 1")
	}
	if New(-5, 0).Sign() != -1 {
		t.Errorf("New(-5,0).Sign() should be -1")
	}
	if New(0, 0).Sign() != 0 {
		t.Errorf("New(0,0).Sign() should be 0")
	}
}

func TestSignNonFinite(t *testing.T) {
	if NewInfinity(false).Sign() != 1 {
		t.Errorf("+Infinity.Sign() should be 1")
	}
	if NewInfinity(true).Sign() != -1 {
		t.Errorf("-Infinity.Sign() should be -1")
	}
}

func TestSet(t *testing.T) {
	x := New(123, -2)
	x.Flags.Inexact = true
	z := new(Decimal).Set(x)
	if z.String() != x.String() {
		t.Errorf("Set did not copy value: %s != %s", z, x)
	}
	if z.Flags.Inexact {
		t.Errorf("Set should not copy Flags")
	}
}

func TestDup(t *testing.T) {
	x := New(123, -2)
	x.Flags.Inexact = true
	z := x.Dup()
	if z.String() != x.String() {
		t.Errorf("Dup did not copy value: %s != %s", z, x)
	}
	if !z.Flags.Inexact {
		t.Errorf("Dup should copy Flags")
	}
}

func TestNumDigits(t *testing.T) {
	if New(12345, 0).NumDigits() != 5 {
		t.Errorf("NumDigits should be 5")
	}
	if New(0, 0).NumDigits() != 1 {
		t.Errorf("NumDigits of 0 should be 1")
	}
}

func TestPolicyRoundTripsBoundedExponent(t *testing.T) {
	minExp := int32(-5)
	maxExp := int32(10)
	p := &Policy{Precision: 5, Rounding: HalfUp, MinExponent: &minExp, MaxExponent: &maxExp}

	d := New(123, -10) // adjusted exponent = -10+2 = -8, below MinExponent -5
	p.Round(d, d)
	if !d.Flags.Subnormal {
		t.Errorf("expected Subnormal flag, got %+v", d.Flags)
	}
}

func TestPolicyOverflow(t *testing.T) {
	maxExp := int32(5)
	p := &Policy{Precision: 5, Rounding: HalfUp, MaxExponent: &maxExp}
	d := New(123, 10) // adjusted exponent = 10+2 = 12 > 5
	p.Round(d, d)
	if !d.Flags.Overflow {
		t.Errorf("expected Overflow flag, got %+v", d.Flags)
	}
}
