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
	"strconv"
	"strings"

	"github.com/quickfur/stdxdecimal/wideint"
)

// Parse parses s into d according to the General Decimal Arithmetic
// numeric-string grammar:
//
//	sign? (digits ("." digits?)? | "." digits) (("e"|"E") sign? digits)?
//	sign? ("inf" | "infinity")
//	sign? "nan" digits?
//
// case-insensitively for the letters. Any deviation produces a positive
// NaN with InvalidOperation set: parsing never panics, it signals; the
// returned error mirrors that condition as a Go error for callers that
// prefer err != nil over checking Flags.
//
// p governs nothing about the grammar itself; it is accepted so Parse
// can round the successfully parsed value to p's precision/rounding
// before returning, and so a malformed-parse InvalidOperation can be
// signaled through p's hooks the same way an arithmetic operation's
// conditions are.
func (p *Policy) Parse(s string) (*Decimal, error) {
	d, cond := parseLiteral(s)
	p.signal(d, cond)
	if err := cond.GoError(InvalidOperation); err != nil {
		return d, err
	}
	if d.finite() {
		cond = p.round(d)
		p.signal(d, cond)
	}
	return d, nil
}

// invalid returns a positive NaN carrying InvalidOperation, the value
// every malformed parse produces.
func invalid() (*Decimal, Condition) {
	return &Decimal{nan: true}, InvalidOperation
}

func parseLiteral(s string) (*Decimal, Condition) {
	orig := s
	if s == "" {
		return invalid()
	}

	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}
	if s == "" {
		return invalid()
	}

	if isWord(s, "inf") || isWord(s, "infinity") {
		return &Decimal{neg: neg, inf: true}, 0
	}
	if rest, ok := stripWord(s, "nan"); ok {
		// Trailing digits after "nan" are a diagnostic payload in the
		// General Decimal Arithmetic grammar; accepted (and ignored)
		// rather than invalidating the parse, since this library has
		// no payload field to store them in.
		if rest != "" {
			if _, err := strconv.ParseUint(rest, 10, 64); err != nil {
				if !allDigits(rest) {
					return invalid()
				}
			}
		}
		return &Decimal{neg: neg, nan: true}, 0
	}

	return parseFinite(orig, s, neg)
}

func parseFinite(orig, s string, neg bool) (*Decimal, Condition) {
	mantissa := s
	exponent := int64(0)
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa = s[:i]
		expPart := s[i+1:]
		if expPart == "" {
			return invalid()
		}
		e, err := strconv.ParseInt(expPart, 10, 32)
		if err != nil {
			return invalid()
		}
		exponent = e
	}
	if mantissa == "" {
		return invalid()
	}

	intPart := mantissa
	fracPart := ""
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		intPart = mantissa[:i]
		fracPart = mantissa[i+1:]
		if intPart == "" && fracPart == "" {
			return invalid()
		}
	}
	if intPart != "" && !allDigits(intPart) {
		return invalid()
	}
	if fracPart != "" && !allDigits(fracPart) {
		return invalid()
	}

	digits := intPart + fracPart
	if digits == "" {
		digits = "0"
	}
	exponent -= int64(len(fracPart))
	if exponent > systemMaxExponent || exponent < systemMinExponent {
		return invalid()
	}

	coeff, ok := new(wideint.Int).SetString(digits)
	if !ok {
		return invalid()
	}
	d := &Decimal{neg: neg, Exponent: int32(exponent)}
	d.Coeff.Set(coeff)
	return d, 0
}

// isWord reports whether s case-insensitively equals word in its
// entirety.
func isWord(s, word string) bool {
	return len(s) == len(word) && strings.EqualFold(s, word)
}

// stripWord reports whether s case-insensitively starts with word, and
// if so returns the remainder.
func stripWord(s, word string) (rest string, ok bool) {
	if len(s) < len(word) || !strings.EqualFold(s[:len(word)], word) {
		return "", false
	}
	return s[len(word):], true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
