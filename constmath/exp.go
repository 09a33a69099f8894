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

// Remez coefficients of the rational approximation
// R(r^2) = r×(exp(r)+1)/(exp(r)-1) on [0, 0.34658], from fdlibm.
var expCoeffs = [5]float64{
	1.66666666666666019037e-01,
	-2.77777777770155933842e-03,
	6.61375632143793436117e-05,
	-1.65339022054652515390e-06,
	4.13813679705723846039e-08,
}

// expm1Coeffs scale the same rational form for expm1, from fdlibm.
var expm1Coeffs = [5]float64{
	-3.33333333333331316428e-02,
	1.58730158725481460165e-03,
	-7.93650757867487942473e-05,
	4.00821782732936239552e-06,
	-2.01099218183624371326e-07,
}

const (
	expOverflow  = 7.09782712893383973096e+02
	expUnderflow = -7.45133219101941108420e+02
	expNearZero  = 0x1p-28
)

// Exp returns e**x, the base-e exponential of x.
//
// Special cases are:
//
//	Exp(+Inf) = +Inf
//	Exp(NaN) = NaN
//
// Very large values overflow to 0 or +Inf.
// Very small values underflow to 1.
func Exp(x float64) float64 {
	switch {
	case isNaN(x) || x > maxFloat64:
		return x
	case x < -maxFloat64:
		return 0
	case x > expOverflow:
		return inf(1)
	case x < expUnderflow:
		return 0
	case -expNearZero < x && x < expNearZero:
		return 1 + x
	}

	// x = k×ln2 + r + c, |r| <= 0.5×ln2
	red := Reduce(x, Ln2)
	r := red.R
	t := float64(r * r)
	c := r - float64(t*Horner(expCoeffs[:], t))
	y := 1 - ((-red.C - r*c/(2-c)) - r)
	return Scalbn(y, int(red.K))
}

// Expm1 returns e**x - 1, the base-e exponential of x minus 1.
// It is more accurate than Exp(x) - 1 when x is near zero.
//
// Special cases are:
//
//	Expm1(+Inf) = +Inf
//	Expm1(-Inf) = -1
//	Expm1(NaN) = NaN
//
// Very large values overflow to -1 or +Inf.
func Expm1(x float64) float64 {
	const (
		ln2X56    = 3.88162421113569373274e+01
		ln2Half   = 3.46573590279972654709e-01
		ln2HalfX3 = 1.03972077083991796413e+00
	)

	switch {
	case isNaN(x) || x > maxFloat64:
		return x
	case x < -maxFloat64:
		return -1
	}

	absx := Fabs(x)
	sign := x < 0
	if absx >= ln2X56 {
		if sign {
			return -1
		}
		if absx >= expOverflow {
			return inf(1)
		}
	}

	var c float64
	var k int
	if absx > ln2Half {
		if absx < ln2HalfX3 {
			var hi, lo float64
			if !sign {
				hi = x - ln2Hi
				lo = ln2Lo
				k = 1
			} else {
				hi = x + ln2Hi
				lo = -ln2Lo
				k = -1
			}
			x = hi - lo
			c = (hi - x) - lo
		} else {
			red := Reduce(x, Ln2)
			x, c, k = red.R, red.C, int(red.K)
		}
	} else if absx < 0x1p-54 {
		return x
	}

	hfx := float64(0.5 * x)
	hxs := float64(x * hfx)
	r1 := 1 + float64(hxs*Horner(expm1Coeffs[:], hxs))
	t := 3 - float64(r1*hfx)
	e := hxs * ((r1 - t) / (6.0 - float64(x*t)))
	if k == 0 {
		return x - (float64(x*e) - hxs)
	}
	e = float64(x*(e-c)) - c
	e -= hxs
	switch {
	case k == -1:
		return float64(0.5*(x-e)) - 0.5
	case k == 1:
		if x < -0.25 {
			return -2 * (e - (x + 0.5))
		}
		return 1 + float64(2*(x-e))
	case k <= -2 || k > 56:
		y := 1 - (e - x)
		return Scalbn(y, k) - 1
	case k < 20:
		t := 1 - pow2(-k)
		y := t - (e - x)
		return Scalbn(y, k)
	}
	t = pow2(-k)
	y := x - (e + t)
	y++
	return Scalbn(y, k)
}
