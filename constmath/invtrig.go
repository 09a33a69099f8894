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

// The inverse trigonometric kernels use the Cephes rational approximation
// atan(x) = x + x^3×P(x^2)/Q(x^2) for 0 <= x <= 0.66, with the range folded
// through tan(3π/8) and π/4 above that.

// atanNum and atanDen are P and Q in ascending order; Q is monic.
var (
	atanNum = [5]float64{
		-6.485021904942025371773e+01,
		-1.228866684490136173410e+02,
		-7.500855792314704667340e+01,
		-1.615753718733365076637e+01,
		-8.750608600031904122785e-01,
	}
	atanDen = [5]float64{
		1.945506571482613964425e+02,
		4.853903996359136964868e+02,
		4.328810604912902668951e+02,
		1.650270098316988542046e+02,
		2.485846490142306297962e+01,
	}
)

const (
	tan3PiBy8 = 2.41421356237309504880 // tan(3π/8)
	// morebits is the rounding error of halfPi.
	morebits = 6.123233995736765886130e-17
)

// xatan evaluates the series for x in [0, 0.66].
func xatan(x float64) float64 {
	z := float64(x * x)
	z = z * Horner(atanNum[:], z) / HornerMonic(atanDen[:], z)
	return float64(x*z) + x
}

// satan reduces x >= 0 into [0, 0.66] and evaluates atan(x).
func satan(x float64) float64 {
	if x <= 0.66 {
		return xatan(x)
	}
	if x > tan3PiBy8 {
		return halfPi - xatan(1/x) + morebits
	}
	return quarterPi + xatan((x-1)/(x+1)) + 0.5*morebits
}

// Atan returns the arctangent, in radians, of x.
//
// Special cases are:
//
//	Atan(±0) = ±0
//	Atan(±Inf) = ±Pi/2
func Atan(x float64) float64 {
	if x == 0 || isNaN(x) {
		return x
	}
	if x > 0 {
		return satan(x)
	}
	return -satan(-x)
}

// Asin returns the arcsine, in radians, of x.
//
// Special cases are:
//
//	Asin(±0) = ±0
//	Asin(x) = NaN if x < -1 or x > 1
func Asin(x float64) float64 {
	if x == 0 || isNaN(x) {
		return x
	}
	sign := false
	if x < 0 {
		x = -x
		sign = true
	}
	if x > 1 {
		return nan()
	}

	// √(1-x²) with the factors kept apart so it stays accurate near 1.
	t := Sqrt((1 - x) * (1 + x))
	if x > 0.7 {
		t = halfPi - satan(t/x)
	} else {
		t = satan(x / t)
	}
	if sign {
		t = -t
	}
	return t
}

// Acos returns the arccosine, in radians, of x.
//
// Special case is:
//
//	Acos(x) = NaN if x < -1 or x > 1
func Acos(x float64) float64 {
	if isNaN(x) || x > 1 || x < -1 {
		return nan()
	}
	// Near ±1 the half-angle forms avoid subtracting two nearly equal values
	// from π/2.
	if x > 0.5 {
		return 2 * Asin(Sqrt(0.5-float64(0.5*x)))
	}
	if x < -0.5 {
		return pi - 2*Asin(Sqrt(0.5+float64(0.5*x)))
	}
	return halfPi - Asin(x)
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value.
//
// Special cases are (in order):
//
//	Atan2(y, NaN) = NaN
//	Atan2(NaN, x) = NaN
//	Atan2(+0, x>=0) = +0
//	Atan2(-0, x>=0) = -0
//	Atan2(+0, x<=-0) = +Pi
//	Atan2(-0, x<=-0) = -Pi
//	Atan2(y>0, 0) = +Pi/2
//	Atan2(y<0, 0) = -Pi/2
//	Atan2(+Inf, +Inf) = +Pi/4
//	Atan2(-Inf, +Inf) = -Pi/4
//	Atan2(+Inf, -Inf) = 3Pi/4
//	Atan2(-Inf, -Inf) = -3Pi/4
//	Atan2(y, +Inf) = 0
//	Atan2(y>0, -Inf) = +Pi
//	Atan2(y<0, -Inf) = -Pi
//	Atan2(+Inf, x) = +Pi/2
//	Atan2(-Inf, x) = -Pi/2
func Atan2(y, x float64) float64 {
	switch {
	case isNaN(y) || isNaN(x):
		return nan()
	case y == 0:
		if x >= 0 && !Signbit(x) {
			return Copysign(0, y)
		}
		return Copysign(pi, y)
	case x == 0:
		return Copysign(halfPi, y)
	case isInf(x):
		if x > 0 {
			if isInf(y) {
				return Copysign(quarterPi, y)
			}
			return Copysign(0, y)
		}
		if isInf(y) {
			return Copysign(3*quarterPi, y)
		}
		return Copysign(pi, y)
	case isInf(y):
		return Copysign(halfPi, y)
	}

	// y/x may underflow to a zero of either sign, so the sign of y picks
	// the half plane.
	q := Atan(y / x)
	if x < 0 {
		if Signbit(y) {
			return q - pi
		}
		return q + pi
	}
	return q
}
