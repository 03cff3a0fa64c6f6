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
	"strings"

	"github.com/pkg/errors"
)

// Condition is a bitmask of the eight sticky condition flags an operation
// can raise. It is the in-flight accumulator used while an operation runs;
// once the operation completes, it is merged into the result's public
// Flags.
type Condition uint16

const (
	// Clamped is raised when an exponent was adjusted to fit configured
	// bounds without changing the represented value.
	Clamped Condition = 1 << iota
	// DivisionByZero is raised by a nonzero dividend divided by zero, and
	// by 0/0 (which also yields a NaN result).
	DivisionByZero
	// Inexact is raised when rounding discarded one or more nonzero digits.
	Inexact
	// InvalidOperation is raised by malformed parses and by operand
	// combinations the General Decimal Arithmetic model defines no value
	// for (±Inf ∓ ±Inf, 0 × ±Inf, nonzero ÷ 0, ...).
	InvalidOperation
	// Overflow is raised when a bounded policy's MaxExponent is exceeded.
	Overflow
	// Rounded is raised whenever rounding reduced the digit count, even if
	// every discarded digit was zero.
	Rounded
	// Subnormal is raised when a result's adjusted exponent is below a
	// bounded policy's MinExponent, whether or not rounding was exact.
	Subnormal
	// Underflow is raised when a bounded policy's MinExponent is exceeded
	// and rounding was not exact; it implies Inexact, Rounded and
	// Subnormal.
	Underflow
)

// allConditions is the set of all named flags, used by String and Any.
const allConditions = Clamped | DivisionByZero | Inexact | InvalidOperation |
	Overflow | Rounded | Subnormal | Underflow

// Any reports whether any flag is set.
func (c Condition) Any() bool { return c&allConditions != 0 }

func (c Condition) has(f Condition) bool { return c&f != 0 }

// String renders the set flags as a comma-separated, lower_snake_case list
// in the fixed priority order hooks are invoked in.
func (c Condition) String() string {
	if c == 0 {
		return ""
	}
	var names []string
	for _, f := range conditionOrder {
		if c.has(f.bit) {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, ", ")
}

var conditionOrder = []struct {
	bit  Condition
	name string
}{
	{InvalidOperation, "invalid_operation"},
	{DivisionByZero, "division_by_zero"},
	{Overflow, "overflow"},
	{Underflow, "underflow"},
	{Subnormal, "subnormal"},
	{Inexact, "inexact"},
	{Rounded, "rounded"},
	{Clamped, "clamped"},
}

// GoError converts c into a Go error if c intersects traps: traps name
// the conditions that should surface as an error rather than pass
// silently.
func (c Condition) GoError(traps Condition) error {
	if t := c & traps; t != 0 {
		return errors.New(t.String())
	}
	return nil
}

// Flags holds the eight condition flags as independent, addressable
// booleans on a Decimal: flags are per-value and are exposed for
// read-write access, not hidden behind a bitmask. Condition is the
// fast accumulator operations use internally; Flags is what callers
// see and mutate.
type Flags struct {
	Clamped          bool
	DivisionByZero   bool
	Inexact          bool
	InvalidOperation bool
	Overflow         bool
	Rounded          bool
	Subnormal        bool
	Underflow        bool
}

// Reset clears every flag.
func (f *Flags) Reset() { *f = Flags{} }

// Any reports whether any flag is set.
func (f Flags) Any() bool {
	return f.Clamped || f.DivisionByZero || f.Inexact || f.InvalidOperation ||
		f.Overflow || f.Rounded || f.Subnormal || f.Underflow
}

// merge ORs the bits of c into f; flags are sticky, so existing true
// values are never cleared by a merge.
func (f *Flags) merge(c Condition) {
	if c == 0 {
		return
	}
	if c.has(Clamped) {
		f.Clamped = true
	}
	if c.has(DivisionByZero) {
		f.DivisionByZero = true
	}
	if c.has(Inexact) {
		f.Inexact = true
	}
	if c.has(InvalidOperation) {
		f.InvalidOperation = true
	}
	if c.has(Overflow) {
		f.Overflow = true
	}
	if c.has(Rounded) {
		f.Rounded = true
	}
	if c.has(Subnormal) {
		f.Subnormal = true
	}
	if c.has(Underflow) {
		f.Underflow = true
	}
}

// condition reconstructs a Condition bitmask from f, for callers that want
// to combine a value's accumulated flags with a fresh operation's result
// via bitwise OR (per the "Flag plumbing" design note).
func (f Flags) condition() Condition {
	var c Condition
	if f.Clamped {
		c |= Clamped
	}
	if f.DivisionByZero {
		c |= DivisionByZero
	}
	if f.Inexact {
		c |= Inexact
	}
	if f.InvalidOperation {
		c |= InvalidOperation
	}
	if f.Overflow {
		c |= Overflow
	}
	if f.Rounded {
		c |= Rounded
	}
	if f.Subnormal {
		c |= Subnormal
	}
	if f.Underflow {
		c |= Underflow
	}
	return c
}
