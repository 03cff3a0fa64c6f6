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

func TestFormatMagnitude(t *testing.T) {
	tests := []struct {
		s    string
		e    int
		want string
	}{
		{"123", 0, "123"},
		{"123", 2, "12300"},
		{"123", -1, "12.3"},
		{"123", -3, "0.123"},
		{"123", -5, "0.00123"},
		{"0", 0, "0"},
		{"77", -12, "0.000000000077"},
	}
	for _, tt := range tests {
		if got := formatMagnitude(tt.s, tt.e); got != tt.want {
			t.Errorf("formatMagnitude(%q, %d) = %q, want %q", tt.s, tt.e, got, tt.want)
		}
	}
}

func TestDecimalString(t *testing.T) {
	tests := []struct {
		coeff int64
		exp   int32
		want  string
	}{
		{0, 0, "0"},
		{123, 0, "123"},
		{-123, -2, "-1.23"},
		{5, -3, "0.005"},
	}
	for _, tt := range tests {
		d := New(tt.coeff, tt.exp)
		if got := d.String(); got != tt.want {
			t.Errorf("New(%d, %d).String() = %q, want %q", tt.coeff, tt.exp, got, tt.want)
		}
	}
}

func TestDecimalStringSpecial(t *testing.T) {
	if got := NewInfinity(false).String(); got != "Infinity" {
		t.Errorf("+Infinity.String() = %q", got)
	}
	if got := NewInfinity(true).String(); got != "-Infinity" {
		t.Errorf("-Infinity.String() = %q", got)
	}
	if got := NewNaN(false).String(); got != "NaN" {
		t.Errorf("NaN.String() = %q", got)
	}
	if got := NewNaN(true).String(); got != "-NaN" {
		t.Errorf("-NaN.String() = %q", got)
	}
}
