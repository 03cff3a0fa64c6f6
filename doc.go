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

// Package decimal is an arbitrary-precision, base-10 decimal arithmetic
// library following the General Decimal Arithmetic specification.
//
// A Decimal is an exact value: a signed coefficient times ten to the
// power of a signed exponent, plus NaN/Infinity states and eight sticky
// condition flags. Every operation takes a *Policy, which selects the
// precision, rounding mode, optional exponent bounds and optional
// condition hooks to apply:
//
//	x, _ := decimal.AbortPolicy.Parse("1.1")
//	y, _ := decimal.AbortPolicy.Parse("2.2")
//	z := new(decimal.Decimal)
//	decimal.AbortPolicy.Add(z, x, y)
//	fmt.Println(z) // 3.3
//
// Use HighPrecisionPolicy for a larger significant-digit budget, or
// build a custom *Policy to trap specific conditions via Hooks, or to
// bound the result's exponent range.
package decimal
