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
	"fmt"
	"os"
)

// RoundingMode selects how the rounding engine discards digits beyond a
// Policy's Precision. HalfUp is the default; Down, Up, HalfEven,
// Ceiling, Floor, HalfDown and ZeroFiveUp round out the full General
// Decimal Arithmetic mode set.
type RoundingMode uint8

const (
	// HalfUp rounds up if the discarded digits are >= 0.5. Default mode.
	HalfUp RoundingMode = iota
	// Down truncates toward zero.
	Down
	// Up rounds away from zero whenever any discarded digit is nonzero.
	Up
	// HalfEven rounds to the nearest even digit on an exact half.
	HalfEven
	// Ceiling rounds toward +Infinity.
	Ceiling
	// Floor rounds toward -Infinity.
	Floor
	// HalfDown rounds up only if the discarded digits are > 0.5.
	HalfDown
	// ZeroFiveUp rounds away from zero only if the digit being rounded off
	// is 0 or 5.
	ZeroFiveUp
)

func (m RoundingMode) String() string {
	switch m {
	case HalfUp:
		return "HalfUp"
	case Down:
		return "Down"
	case Up:
		return "Up"
	case HalfEven:
		return "HalfEven"
	case Ceiling:
		return "Ceiling"
	case Floor:
		return "Floor"
	case HalfDown:
		return "HalfDown"
	case ZeroFiveUp:
		return "ZeroFiveUp"
	default:
		return fmt.Sprintf("RoundingMode(%d)", uint8(m))
	}
}

// Hooks are the optional per-condition callbacks a Policy may carry.
// Each receives the result Decimal after the corresponding flag was
// set. A nil hook is silent: absence means silent.
type Hooks struct {
	OnClamped          func(*Decimal)
	OnRounded          func(*Decimal)
	OnInexact          func(*Decimal)
	OnDivisionByZero   func(*Decimal)
	OnInvalidOperation func(*Decimal)
	OnOverflow         func(*Decimal)
	OnSubnormal        func(*Decimal)
	OnUnderflow        func(*Decimal)
}

// Policy configures precision, rounding and exceptional-condition
// handling for every arithmetic operation it's passed to, carried at
// runtime as an explicit value threaded through calls rather than a
// compile-time parameter.
type Policy struct {
	// Precision is the maximum number of significant digits a coefficient
	// may carry after any operation. Must be in [2, 1<<32-2]; see
	// Policy.Validate.
	Precision uint32
	// Rounding selects the rounding mode; the zero value is HalfUp.
	Rounding RoundingMode
	// MaxExponent and MinExponent are optional bounds on the effective
	// (adjusted) exponent. Nil means unbounded.
	MaxExponent *int32
	MinExponent *int32
	// Hooks are the optional condition callbacks.
	Hooks Hooks
}

// Validate reports whether p's Precision is within the allowed range.
func (p *Policy) Validate() error {
	if p.Precision < 2 {
		return errPrecisionTooSmall
	}
	if p.Precision > 1<<32-2 {
		return fmt.Errorf("stdxdecimal: Policy.Precision must be <= %d", uint32(1<<32-2))
	}
	return nil
}

var errPrecisionTooSmall = fmt.Errorf("stdxdecimal: Policy.Precision must be >= 2")

// WithPrecision returns a copy of p with Precision replaced — useful
// for one-off precision bumps an intermediate computation needs (e.g.
// verifying a Quo was exact under extra precision before trusting
// Inexact).
func (p *Policy) WithPrecision(precision uint32) *Policy {
	cp := *p
	cp.Precision = precision
	return &cp
}

// WithRounding returns a copy of p with Rounding replaced.
func (p *Policy) WithRounding(mode RoundingMode) *Policy {
	cp := *p
	cp.Rounding = mode
	return &cp
}

// abortProcess is the effector behind AbortPolicy's hooks. It is a
// package variable, not a hardcoded os.Exit call, so tests can observe
// that an abort was requested without killing the test binary — the
// same seam testing "fatal" paths in CLI tools usually needs.
var abortProcess = func(err error) {
	fmt.Fprintln(os.Stderr, "stdxdecimal: aborting:", err)
	os.Exit(1)
}

// PolicyError is the typed fatal error ThrowPolicy panics with.
type PolicyError struct {
	Condition Condition
}

func (e *PolicyError) Error() string {
	return "stdxdecimal: " + e.Condition.String()
}

func abortHooks() Hooks {
	h := func(d *Decimal) { abortProcess(&PolicyError{Condition: d.Flags.condition()}) }
	return Hooks{
		OnClamped: h, OnRounded: h, OnInexact: h, OnDivisionByZero: h,
		OnInvalidOperation: h, OnOverflow: h, OnSubnormal: h, OnUnderflow: h,
	}
}

func throwHooks() Hooks {
	h := func(d *Decimal) { panic(&PolicyError{Condition: d.Flags.condition()}) }
	return Hooks{
		OnClamped: h, OnRounded: h, OnInexact: h, OnDivisionByZero: h,
		OnInvalidOperation: h, OnOverflow: h, OnSubnormal: h, OnUnderflow: h,
	}
}

// Four predefined policies covering the common precision/trap combinations.
var (
	// AbortPolicy is the default policy: precision 9, HalfUp rounding,
	// every exceptional condition aborts the process.
	AbortPolicy = &Policy{Precision: 9, Rounding: HalfUp, Hooks: abortHooks()}

	// ThrowPolicy: precision 9, HalfUp, every exceptional condition
	// panics with a *PolicyError.
	ThrowPolicy = &Policy{Precision: 9, Rounding: HalfUp, Hooks: throwHooks()}

	// HighPrecisionPolicy: precision 64, HalfUp, aborts like AbortPolicy.
	HighPrecisionPolicy = &Policy{Precision: 64, Rounding: HalfUp, Hooks: abortHooks()}

	// NoOpPolicy: precision 9, HalfUp, sets flags only and does nothing
	// else — every hook is absent.
	NoOpPolicy = &Policy{Precision: 9, Rounding: HalfUp}
)

// signal merges c into d.Flags and, in the fixed priority order
// InvalidOperation, DivisionByZero, Overflow, Underflow, Subnormal,
// Inexact, Rounded, Clamped (which always invokes OnInexact before
// OnRounded), invokes the hook for every flag in c that p provides a
// callback for, whether or not d.Flags already had that flag set.
func (p *Policy) signal(d *Decimal, c Condition) {
	if c == 0 {
		return
	}
	d.Flags.merge(c)
	if c.has(InvalidOperation) && p.Hooks.OnInvalidOperation != nil {
		p.Hooks.OnInvalidOperation(d)
	}
	if c.has(DivisionByZero) && p.Hooks.OnDivisionByZero != nil {
		p.Hooks.OnDivisionByZero(d)
	}
	if c.has(Overflow) && p.Hooks.OnOverflow != nil {
		p.Hooks.OnOverflow(d)
	}
	if c.has(Underflow) && p.Hooks.OnUnderflow != nil {
		p.Hooks.OnUnderflow(d)
	}
	if c.has(Subnormal) && p.Hooks.OnSubnormal != nil {
		p.Hooks.OnSubnormal(d)
	}
	if c.has(Inexact) && p.Hooks.OnInexact != nil {
		p.Hooks.OnInexact(d)
	}
	if c.has(Rounded) && p.Hooks.OnRounded != nil {
		p.Hooks.OnRounded(d)
	}
	if c.has(Clamped) && p.Hooks.OnClamped != nil {
		p.Hooks.OnClamped(d)
	}
}
