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

//go:generate go run ../cmd/constgen --output . --pkg constmath

func isOddInt(x float64) bool {
	if x >= twoPow53 || x <= -twoPow53 || Floor(x) != x {
		return false
	}
	return int64(x)&1 == 1
}

// Pow returns x**y, the base-x exponential of y.
//
// Special cases are (in order):
//
//	Pow(x, ±0) = 1 for any x
//	Pow(1, y) = 1 for any y
//	Pow(x, 1) = x for any x
//	Pow(NaN, y) = NaN
//	Pow(x, NaN) = NaN
//	Pow(±0, y) = ±Inf for y an odd integer < 0
//	Pow(±0, -Inf) = +Inf
//	Pow(±0, +Inf) = +0
//	Pow(±0, y) = +Inf for finite y < 0 and not an odd integer
//	Pow(±0, y) = ±0 for y an odd integer > 0
//	Pow(±0, y) = +0 for finite y > 0 and not an odd integer
//	Pow(-1, ±Inf) = 1
//	Pow(x, +Inf) = +Inf for |x| > 1
//	Pow(x, -Inf) = +0 for |x| > 1
//	Pow(x, +Inf) = +0 for |x| < 1
//	Pow(x, -Inf) = +Inf for |x| < 1
//	Pow(+Inf, y) = +Inf for y > 0
//	Pow(+Inf, y) = +0 for y < 0
//	Pow(-Inf, y) = Pow(-0, -y)
//	Pow(x, y) = NaN for finite x < 0 and finite non-integer y
func Pow(x, y float64) float64 {
	switch {
	case y == 0 || x == 1:
		return 1
	case y == 1:
		return x
	case isNaN(x) || isNaN(y):
		return nan()
	case x == 0:
		switch {
		case y < 0:
			if Signbit(x) && isOddInt(y) {
				return inf(-1)
			}
			return inf(1)
		case y > 0:
			if Signbit(x) && isOddInt(y) {
				return x
			}
			return 0
		}
	case isInf(y):
		switch {
		case x == -1:
			return 1
		case (Fabs(x) < 1) == (y > 0):
			return 0
		default:
			return inf(1)
		}
	case isInf(x):
		if x < 0 {
			return Pow(1/x, -y) // Pow(-0, -y)
		}
		switch {
		case y < 0:
			return 0
		case y > 0:
			return inf(1)
		}
	case y == 0.5:
		return Sqrt(x)
	case y == -0.5:
		return 1 / Sqrt(x)
	}

	// y = yi + yf with yi integral and |yf| <= 0.5.
	yi, yf := Fabs(y), 0.0
	if yi < twoPow52 {
		red := Reduce(yi, Unit)
		yi, yf = red.K, red.R
	}
	if yf != 0 && x < 0 {
		return nan()
	}
	if yi >= twoPow63 {
		// yi is a large even int that will lead to overflow (or underflow
		// to 0) for all x except -1 (x == 1 was handled earlier).
		switch {
		case x == -1:
			return 1
		case (Fabs(x) < 1) == (y > 0):
			return 0
		default:
			return inf(1)
		}
	}

	// ans = (a1 + a1lo) × 2^ae, carried as a double-double so the ladder
	// below rounds once at the end instead of once per step.
	a1, a1lo := 1.0, 0.0
	ae := 0

	// ans *= x^yf
	if yf != 0 {
		h, l := twoProd(yf, Ln(x))
		a1 = Exp(h)
		a1lo = float64(a1 * l)
	}

	// ans *= x^yi by repeated squaring, with the mantissa of x kept in
	// [1, 2) and its exponent tracked separately.
	x1, xe := Frexp(x)
	x1lo := 0.0
	i := int64(yi)
	for step := 0; step < 64 && i != 0; step++ {
		if xe < -1<<12 || 1<<12 < xe {
			// catastrophic overflow; Scalbn saturates it.
			ae += xe
			break
		}
		if i&1 == 1 {
			a1, a1lo = ddMul(a1, a1lo, x1, x1lo)
			ae += xe
		}
		x1, x1lo = ddMul(x1, x1lo, x1, x1lo)
		xe <<= 1
		if x1 >= 2 {
			x1 *= 0.5
			x1lo *= 0.5
			xe++
		}
		i >>= 1
	}

	// ans = a1 × 2^ae
	// if y < 0 { ans = 1 / ans }
	// but in the opposite order
	if y < 0 {
		// 1/(a1+a1lo) = q × (1 + (1 - q×a1) - q×a1lo) to first order.
		q := 1 / a1
		p, e := twoProd(q, a1)
		a1, a1lo = twoSum(q, float64(q*(((1-p)-e)-float64(q*a1lo))))
		ae = -ae
	}
	return Scalbn(a1+a1lo, ae)
}

// Expi returns x**n for an integer n by binary exponentiation.
// Negative powers divide once at the end, falling back to powers of 1/x when
// the positive power overflows or underflows.
//
// Expi(x, 0) = 1 for any x, including NaN.
func Expi(x float64, n int) float64 {
	if n == 0 {
		return 1
	}
	if n > 0 {
		return ipow(x, uint64(n))
	}
	u := -uint64(n)
	p := ipow(x, u)
	if p == 0 || isInf(p) {
		return ipow(1/x, u)
	}
	return 1 / p
}

// ipow computes x**u over a ladder of at most 64 squarings.
func ipow(x float64, u uint64) float64 {
	p := 1.0
	for step := 0; step < 64 && u != 0; step++ {
		if u&1 == 1 {
			p *= x
		}
		x *= x
		u >>= 1
	}
	return p
}

// Factorial returns n! for a non-negative integral n.
//
// Special cases are:
//
//	Factorial(n) = +Inf for n > 170
//	Factorial(n) = NaN for negative, non-integral or NaN n
func Factorial(n float64) float64 {
	switch {
	case isNaN(n) || n < 0:
		return nan()
	case n > float64(len(factorials)-1):
		if isInf(n) {
			return n
		}
		if Floor(n) != n {
			return nan()
		}
		return inf(1)
	case Floor(n) != n:
		return nan()
	}
	return factorials[int(n)]
}
