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

package wideint

import "testing"

func TestSetString(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"0", "0", true},
		{"007", "7", true},
		{"123456789012345678901234567890", "123456789012345678901234567890", true},
		{"0x1F", "31", true},
		{"0X10", "16", true},
		{"", "", false},
		{"-1", "", false},
		{"12a3", "", false},
	}
	for _, tt := range tests {
		got, ok := new(Int).SetString(tt.in)
		if ok != tt.ok {
			t.Errorf("SetString(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got.String() != tt.want {
			t.Errorf("SetString(%q) = %s, want %s", tt.in, got.String(), tt.want)
		}
	}
}

func TestArith(t *testing.T) {
	a := NewFromUint64(123)
	b := NewFromUint64(456)
	if got := new(Int).Add(a, b).String(); got != "579" {
		t.Errorf("Add = %s, want 579", got)
	}
	if got := new(Int).Sub(b, a).String(); got != "333" {
		t.Errorf("Sub = %s, want 333", got)
	}
	if got := new(Int).Mul(a, b).String(); got != "56088" {
		t.Errorf("Mul = %s, want 56088", got)
	}
	q, r := new(Int).QuoRem(b, a, new(Int))
	if q.String() != "3" || r.String() != "87" {
		t.Errorf("QuoRem = %s, %s, want 3, 87", q, r)
	}
}

func TestNumDecimalDigits(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0", 1},
		{"9", 1},
		{"10", 2},
		{"999999999", 9},
		{"1000000000", 10},
		{"99999999999999999999", 20},
		{"100000000000000000000", 21},
	}
	for _, tt := range tests {
		x, ok := new(Int).SetString(tt.in)
		if !ok {
			t.Fatalf("SetString(%q) failed", tt.in)
		}
		if got := x.NumDecimalDigits(); got != tt.want {
			t.Errorf("NumDecimalDigits(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLessThanPow10(t *testing.T) {
	x := NewFromUint64(999)
	if !x.LessThanPow10(3) {
		t.Errorf("999 should be < 10^3")
	}
	if x.LessThanPow10(2) {
		t.Errorf("999 should not be < 10^2")
	}
	if !x.LessThanPow10(4) {
		t.Errorf("999 should be < 10^4")
	}
}

func TestPow10(t *testing.T) {
	if got := Pow10(0).String(); got != "1" {
		t.Errorf("Pow10(0) = %s, want 1", got)
	}
	if got := Pow10(3).String(); got != "1000" {
		t.Errorf("Pow10(3) = %s, want 1000", got)
	}
}

func TestBoolSignZero(t *testing.T) {
	z := new(Int)
	if !z.IsZero() || z.Bool() {
		t.Errorf("zero value should be zero and false")
	}
	nz := NewFromUint64(5)
	if nz.IsZero() || !nz.Bool() {
		t.Errorf("5 should be non-zero and true")
	}
}

func TestFloat64(t *testing.T) {
	x := NewFromUint64(12345)
	if got := x.Float64(); got != 12345.0 {
		t.Errorf("Float64() = %v, want 12345", got)
	}
}

func TestMustFromStringPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for invalid literal")
		}
	}()
	MustFromString("not-a-number")
}
