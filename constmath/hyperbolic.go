// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package constmath

// Sinh returns the hyperbolic sine of x.
//
// Special cases are:
//
//	Sinh(±0) = ±0
//	Sinh(±Inf) = ±Inf
//	Sinh(NaN) = NaN
func Sinh(x float64) float64 {
	if isNaN(x) || isInf(x) {
		return x
	}
	a := Fabs(x)
	h := 0.5
	if x < 0 {
		h = -0.5
	}
	switch {
	case a < tinyHyperbolic:
		return x
	case a < 1:
		t := Expm1(a)
		return h * (float64(2*t) - t*t/(t+1))
	case a < expOverflow:
		e := Exp(a)
		return h * e * (1 - Exp(-2*a))
	}
	// Split so that the result overflows only when sinh does.
	e := Exp(0.5 * a)
	return (h * e) * e
}

// Cosh returns the hyperbolic cosine of x.
//
// Special cases are:
//
//	Cosh(±0) = 1
//	Cosh(±Inf) = +Inf
//	Cosh(NaN) = NaN
func Cosh(x float64) float64 {
	if isNaN(x) {
		return x
	}
	a := Fabs(x)
	switch {
	case isInf(a):
		return a
	case a < ln2:
		if a < tinyTrig {
			return 1
		}
		t := Expm1(a)
		return 1 + t*t/(2*(1+t))
	case a < expOverflow:
		t := Exp(a)
		return 0.5 * (t + 1/t)
	}
	e := Exp(0.5 * a)
	return (0.5 * e) * e
}

// Tanh returns the hyperbolic tangent of x. For finite x the result is
// strictly inside (-1, 1).
//
// Special cases are:
//
//	Tanh(±0) = ±0
//	Tanh(±Inf) = ±1
//	Tanh(NaN) = NaN
func Tanh(x float64) float64 {
	const (
		saturate = 22
		ln3Half  = 5.493061443340548e-01 // ln(3)/2
	)
	if isNaN(x) {
		return x
	}
	a := Fabs(x)
	if isInf(a) {
		return Copysign(1, x)
	}
	if a < tinyHyperbolic {
		return x
	}

	var t float64
	switch {
	case a > saturate:
		t = almostOne
	case a > ln3Half:
		t = Expm1(2 * a)
		t = 1 - 2/(t+2)
		if t > almostOne {
			t = almostOne
		}
	default:
		t = Expm1(2 * a)
		t /= t + 2
	}
	if x < 0 {
		t = -t
	}
	return t
}

// Asinh returns the inverse hyperbolic sine of x.
//
// Special cases are:
//
//	Asinh(±0) = ±0
//	Asinh(±Inf) = ±Inf
//	Asinh(NaN) = NaN
func Asinh(x float64) float64 {
	if isNaN(x) || isInf(x) {
		return x
	}
	a := Fabs(x)
	var r float64
	switch {
	case a >= 0x1p26:
		r = Ln(a) + ln2
	case a >= 2:
		r = Ln(2*a + 1/(Sqrt(float64(a*a)+1)+a))
	case a >= tinyTrig:
		aa := float64(a * a)
		r = Log1p(a + aa/(Sqrt(aa+1)+1))
	default:
		return x
	}
	if x < 0 {
		r = -r
	}
	return r
}

// Acosh returns the inverse hyperbolic cosine of x.
//
// Special cases are:
//
//	Acosh(+Inf) = +Inf
//	Acosh(x) = NaN if x < 1
//	Acosh(NaN) = NaN
func Acosh(x float64) float64 {
	switch {
	case isNaN(x) || x < 1:
		return nan()
	case x == 1:
		return 0
	case x >= 0x1p26:
		return Ln(x) + ln2
	case x > 2:
		return Ln(2*x - 1/(x+Sqrt(float64(x*x)-1)))
	}
	t := x - 1
	return Log1p(t + Sqrt(2*t+float64(t*t)))
}

// Atanh returns the inverse hyperbolic tangent of x.
//
// Special cases are:
//
//	Atanh(x) = NaN if x <= -1 or x >= 1
//	Atanh(±0) = ±0
//	Atanh(NaN) = NaN
//
// Unlike math.Atanh, the poles ±1 are treated as domain errors.
func Atanh(x float64) float64 {
	if isNaN(x) || x <= -1 || x >= 1 {
		return nan()
	}
	a := Fabs(x)
	if a < tinyHyperbolic {
		return x
	}
	var t float64
	if a < 0.5 {
		t = a + a
		t = 0.5 * Log1p(t+t*a/(1-a))
	} else {
		t = 0.5 * Log1p((a+a)/(1-a))
	}
	if x < 0 {
		t = -t
	}
	return t
}
