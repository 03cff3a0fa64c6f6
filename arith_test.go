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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, p *Policy, s string) *Decimal {
	t.Helper()
	d, err := p.Parse(s)
	require.NoError(t, err)
	return d
}

func TestAddBasic(t *testing.T) {
	x := mustParse(t, NoOpPolicy, "1.1")
	y := mustParse(t, NoOpPolicy, "2.2")
	z := new(Decimal)
	NoOpPolicy.Add(z, x, y)
	assert.Equal(t, "3.3", z.String())
}

func TestSubExponentAlignment(t *testing.T) {
	x := mustParse(t, HighPrecisionPolicy, "1.23E-10")
	y := mustParse(t, HighPrecisionPolicy, "2.00E-10")
	z := new(Decimal)
	HighPrecisionPolicy.Sub(z, x, y)
	assert.Equal(t, "-0.000000000077", z.String())
}

func TestQuoRepeating(t *testing.T) {
	x := mustParse(t, NoOpPolicy, "1")
	y := mustParse(t, NoOpPolicy, "3")
	z := new(Decimal)
	NoOpPolicy.Quo(z, x, y)
	assert.Equal(t, "0.333333333", z.String())
	assert.True(t, z.Flags.Inexact)
	assert.True(t, z.Flags.Rounded)
}

func TestAddNaNPropagation(t *testing.T) {
	x := NewNaN(true)
	y := New(5, 0)
	z := new(Decimal)
	NoOpPolicy.Add(z, x, y)
	assert.True(t, z.IsNaN())
	assert.True(t, z.Negative())
	assert.False(t, z.Flags.InvalidOperation)
}

func TestSubNaNSignFromRightOperand(t *testing.T) {
	x := New(5, 0)
	y := NewNaN(true)
	z := new(Decimal)
	NoOpPolicy.Sub(z, x, y)
	assert.True(t, z.IsNaN())
	assert.True(t, z.Negative())
}

func TestAddInfinitySameSign(t *testing.T) {
	x := NewInfinity(false)
	y := New(5, 0)
	z := new(Decimal)
	NoOpPolicy.Add(z, x, y)
	assert.True(t, z.IsInfinite())
	assert.False(t, z.Negative())
}

func TestAddInfinityOppositeSign(t *testing.T) {
	x := NewInfinity(false)
	y := NewInfinity(true)
	z := new(Decimal)
	NoOpPolicy.Add(z, x, y)
	assert.True(t, z.IsNaN())
	assert.True(t, z.Flags.InvalidOperation)
}

func TestMulSignAndExponent(t *testing.T) {
	x := New(-12, -1) // -1.2
	y := New(5, 0)     // 5
	z := new(Decimal)
	NoOpPolicy.Mul(z, x, y)
	assert.Equal(t, "-6.0", z.String())
}

func TestMulInfinityByZero(t *testing.T) {
	x := NewInfinity(false)
	y := New(0, 0)
	z := new(Decimal)
	NoOpPolicy.Mul(z, x, y)
	assert.True(t, z.IsNaN())
	assert.True(t, z.Flags.InvalidOperation)
}

func TestMulInfinityByFinite(t *testing.T) {
	x := NewInfinity(true)
	y := New(5, 0)
	z := new(Decimal)
	NoOpPolicy.Mul(z, x, y)
	assert.True(t, z.IsInfinite())
	assert.True(t, z.Negative())
}

func TestQuoByZero(t *testing.T) {
	x := New(5, 0)
	y := New(0, 0)
	z := new(Decimal)
	NoOpPolicy.Quo(z, x, y)
	assert.True(t, z.IsInfinite())
	assert.False(t, z.Negative())
	assert.True(t, z.Flags.DivisionByZero)
	assert.True(t, z.Flags.InvalidOperation)
}

func TestQuoZeroByZero(t *testing.T) {
	x := New(0, 0)
	y := New(0, 0)
	z := new(Decimal)
	NoOpPolicy.Quo(z, x, y)
	assert.True(t, z.IsNaN())
	assert.True(t, z.Flags.DivisionByZero)
}

func TestQuoZeroByFinite(t *testing.T) {
	x := New(0, 0)
	y := New(5, 0)
	z := new(Decimal)
	NoOpPolicy.Quo(z, x, y)
	assert.True(t, z.IsZero())
	assert.False(t, z.IsNaN())
}

func TestQuoInfinityByFinite(t *testing.T) {
	x := NewInfinity(false)
	y := New(5, 0)
	z := new(Decimal)
	NoOpPolicy.Quo(z, x, y)
	assert.True(t, z.IsInfinite())
	assert.False(t, z.Negative())
}

func TestQuoFiniteByInfinity(t *testing.T) {
	x := New(5, 0)
	y := NewInfinity(true)
	z := new(Decimal)
	NoOpPolicy.Quo(z, x, y)
	assert.True(t, z.IsZero())
	assert.True(t, z.Negative())
}

func TestQuoInfinityByInfinity(t *testing.T) {
	x := NewInfinity(false)
	y := NewInfinity(true)
	z := new(Decimal)
	NoOpPolicy.Quo(z, x, y)
	assert.True(t, z.IsNaN())
	assert.True(t, z.Flags.InvalidOperation)
}

func TestAddZeroSignFloor(t *testing.T) {
	floorPolicy := &Policy{Precision: 9, Rounding: Floor}
	x := New(5, 0)
	y := New(-5, 0)
	z := new(Decimal)
	floorPolicy.Add(z, x, y)
	assert.True(t, z.IsZero())
	assert.True(t, z.Negative())
}

func TestAddZeroSignDefault(t *testing.T) {
	x := New(5, 0)
	y := New(-5, 0)
	z := new(Decimal)
	NoOpPolicy.Add(z, x, y)
	assert.True(t, z.IsZero())
	assert.False(t, z.Negative())
}

func TestAddBothNegativeZero(t *testing.T) {
	x := New(0, 0)
	x.neg = true
	y := New(0, 0)
	y.neg = true
	z := new(Decimal)
	NoOpPolicy.Add(z, x, y)
	assert.True(t, z.IsZero())
	assert.True(t, z.Negative())
}

func TestAlignmentOverflowPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic for absurd exponent alignment delta")
		} else if _, ok := r.(*AlignmentOverflowError); !ok {
			t.Errorf("expected *AlignmentOverflowError, got %T", r)
		}
	}()
	x := New(1, 2_000_000)
	y := New(1, 0)
	z := new(Decimal)
	NoOpPolicy.Add(z, x, y)
}
