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

// ErrDecimal wraps a Policy and an error, letting a chain of operations
// be written without an err != nil check after every call: once Err is
// non-nil every subsequent method is a no-op. This targets NoOpPolicy
// and other hook-free policies, where a caller wants InvalidOperation
// and DivisionByZero surfaced as a Go error without hand-threading a
// condition through every intermediate step. Under AbortPolicy or
// ThrowPolicy a raised condition leaves through the policy's hook
// inside the operation, before ErrDecimal can record an error.
//
// Traps selects which conditions ErrDecimal treats as an error; the
// zero value traps none, making ErrDecimal equivalent to calling p's
// operations directly.
type ErrDecimal struct {
	Policy *Policy
	Traps  Condition
	Err    error
}

// NewErrDecimal returns an ErrDecimal trapping InvalidOperation and
// DivisionByZero, the two conditions arithmetic treats as results with
// no defined value.
func NewErrDecimal(p *Policy) *ErrDecimal {
	return &ErrDecimal{Policy: p, Traps: InvalidOperation | DivisionByZero}
}

func (e *ErrDecimal) check(d *Decimal) {
	if e.Err != nil {
		return
	}
	e.Err = d.Flags.condition().GoError(e.Traps)
}

// Add sets z = x + y if no prior error, and records one if this
// operation trips e.Traps.
func (e *ErrDecimal) Add(z, x, y *Decimal) *Decimal {
	if e.Err != nil {
		return z
	}
	e.Policy.Add(z, x, y)
	e.check(z)
	return z
}

// Sub sets z = x - y if no prior error, and records one if this
// operation trips e.Traps.
func (e *ErrDecimal) Sub(z, x, y *Decimal) *Decimal {
	if e.Err != nil {
		return z
	}
	e.Policy.Sub(z, x, y)
	e.check(z)
	return z
}

// Mul sets z = x * y if no prior error, and records one if this
// operation trips e.Traps.
func (e *ErrDecimal) Mul(z, x, y *Decimal) *Decimal {
	if e.Err != nil {
		return z
	}
	e.Policy.Mul(z, x, y)
	e.check(z)
	return z
}

// Quo sets z = x / y if no prior error, and records one if this
// operation trips e.Traps.
func (e *ErrDecimal) Quo(z, x, y *Decimal) *Decimal {
	if e.Err != nil {
		return z
	}
	e.Policy.Quo(z, x, y)
	e.check(z)
	return z
}

// Neg sets z = -x if no prior error.
func (e *ErrDecimal) Neg(z, x *Decimal) *Decimal {
	if e.Err != nil {
		return z
	}
	e.Policy.Minus(z, x)
	e.check(z)
	return z
}

// Cmp returns x compared to y; it does not itself ever trip e.Traps
// (comparison raises no conditions), but is provided so a chain can
// read back an intermediate result without breaking the no-err-check
// style.
func (e *ErrDecimal) Cmp(x, y *Decimal) int {
	return Cmp(x, y)
}
