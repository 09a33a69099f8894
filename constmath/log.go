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

// Coefficients of the series for log(1+f) in s = f/(2+f), from fdlibm.
// Odd and even terms are split so each half is a polynomial in s^4.
var (
	lnOddCoeffs = [4]float64{
		6.666666666666735130e-01, // Lg1
		2.857142874366239149e-01, // Lg3
		1.818357216161805012e-01, // Lg5
		1.479819860511658591e-01, // Lg7
	}
	lnEvenCoeffs = [3]float64{
		3.999999999940941908e-01, // Lg2
		2.222219843214978396e-01, // Lg4
		1.531383769920937332e-01, // Lg6
	}
	lnCoeffs = [7]float64{
		6.666666666666735130e-01,
		3.999999999940941908e-01,
		2.857142874366239149e-01,
		2.222219843214978396e-01,
		1.818357216161805012e-01,
		1.531383769920937332e-01,
		1.479819860511658591e-01,
	}
)

// Ln returns the natural logarithm of x.
//
// Special cases are:
//
//	Ln(+Inf) = +Inf
//	Ln(0) = -Inf
//	Ln(x < 0) = NaN
//	Ln(NaN) = NaN
func Ln(x float64) float64 {
	switch {
	case isNaN(x) || x > maxFloat64:
		return x
	case x < 0:
		return nan()
	case x == 0:
		return inf(-1)
	}

	// x = 2^ki × f1 with f1 in [√2/2, √2)
	f1, ki := Frexp(x)
	if f1 > sqrt2 {
		f1 *= 0.5
		ki++
	}
	f := f1 - 1
	k := float64(ki)

	s := f / (2 + f)
	s2 := float64(s * s)
	s4 := float64(s2 * s2)
	t1 := float64(s2 * Horner(lnOddCoeffs[:], s4))
	t2 := float64(s4 * Horner(lnEvenCoeffs[:], s4))
	R := t1 + t2
	hfsq := float64(0.5 * f * f)
	return float64(k*ln2Hi) - ((hfsq - (float64(s*(hfsq+R)) + float64(k*ln2Lo))) - f)
}

// Log1p returns the natural logarithm of 1 plus its argument x.
// It is more accurate than Ln(1 + x) when x is near zero.
//
// Special cases are:
//
//	Log1p(+Inf) = +Inf
//	Log1p(±0) = ±0
//	Log1p(-1) = -Inf
//	Log1p(x < -1) = NaN
//	Log1p(NaN) = NaN
func Log1p(x float64) float64 {
	const (
		sqrt2M1     = 4.142135623730950488017e-01  // √2-1
		sqrt2HalfM1 = -2.928932188134524755992e-01 // √2/2-1
	)

	switch {
	case isNaN(x) || x < -1:
		return nan()
	case x == -1:
		return inf(-1)
	case x > maxFloat64:
		return x
	}

	absx := Fabs(x)
	if absx < 0x1p-29 {
		if absx < 0x1p-54 {
			return x
		}
		return x - float64(x*x*0.5)
	}

	var f, c float64
	k := 0
	if x > sqrt2HalfM1 && x < sqrt2M1 {
		f = x
	} else {
		u := 1 + x
		m, e := Frexp(u)
		if absx < twoPow53 {
			if e > 0 {
				c = 1 - (u - x)
			} else {
				c = x - (u - 1)
			}
			c /= u
		}
		if m >= sqrt2 {
			m *= 0.5
			e++
		}
		k = e
		f = m - 1
	}

	hfsq := float64(0.5 * f * f)
	s := f / (2 + f)
	z := float64(s * s)
	R := float64(z * Horner(lnCoeffs[:], z))
	if k == 0 {
		return f - (hfsq - float64(s*(hfsq+R)))
	}
	fk := float64(k)
	return float64(fk*ln2Hi) - ((hfsq - (float64(s*(hfsq+R)) + (float64(fk*ln2Lo) + c))) - f)
}
