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

// Minimax coefficients of sin(r) = r + r^3 × S(r^2) and
// cos(r) = 1 - r^2/2 + r^4 × C(r^2) on [-π/4, π/4], from fdlibm.
var (
	sinCoeffs = [6]float64{
		-1.66666666666666324348e-01,
		8.33333333332248946124e-03,
		-1.98412698298579493134e-04,
		2.75573137070700676789e-06,
		-2.50507602534068634195e-08,
		1.58969099521155010221e-10,
	}
	cosCoeffs = [6]float64{
		4.16666666666666019037e-02,
		-1.38888888888741095749e-03,
		2.48015872894767294178e-05,
		-2.75573143513906633035e-07,
		2.08757232129817482790e-09,
		-1.13596475577881948265e-11,
	}
)

// kernelSin evaluates sin(x + y) for |x| <= π/4, y being the tail of a
// reduced argument.
func kernelSin(x, y float64) float64 {
	z := x * x
	v := z * x
	r := Horner(sinCoeffs[1:], z)
	if y == 0 {
		return x + float64(v*(sinCoeffs[0]+float64(z*r)))
	}
	return x - ((float64(z*(float64(0.5*y)-float64(v*r))) - y) - float64(v*sinCoeffs[0]))
}

// kernelCos evaluates cos(x + y) for |x| <= π/4.
func kernelCos(x, y float64) float64 {
	z := x * x
	r := z * Horner(cosCoeffs[:], z)
	hz := float64(0.5 * z)
	w := 1 - hz
	return w + (((1 - w) - hz) + (float64(z*r) - float64(x*y)))
}

// sincosQuadrant returns the kernels evaluated at the reduced argument and the
// quadrant that selects among them. x must be finite.
func sincosQuadrant(x float64) (s, c float64, quadrant int) {
	if x <= quarterPi && x >= -quarterPi {
		return kernelSin(x, 0), kernelCos(x, 0), 0
	}
	red := Reduce(x, HalfPi)
	return kernelSin(red.R, red.C), kernelCos(red.R, red.C), red.Quadrant
}

// Sin returns the sine of the radian argument x.
//
// Special cases are:
//
//	Sin(±0) = ±0
//	Sin(±Inf) = NaN
//	Sin(NaN) = NaN
func Sin(x float64) float64 {
	if isNaN(x) || isInf(x) {
		return nan()
	}
	if x < tinyTrig && x > -tinyTrig {
		return x
	}
	s, c, q := sincosQuadrant(x)
	switch q {
	case 0:
		return s
	case 1:
		return c
	case 2:
		return -s
	default:
		return -c
	}
}

// Cos returns the cosine of the radian argument x.
//
// Special cases are:
//
//	Cos(±Inf) = NaN
//	Cos(NaN) = NaN
func Cos(x float64) float64 {
	if isNaN(x) || isInf(x) {
		return nan()
	}
	if x < tinyCos && x > -tinyCos {
		return 1
	}
	s, c, q := sincosQuadrant(x)
	switch q {
	case 0:
		return c
	case 1:
		return -s
	case 2:
		return -c
	default:
		return s
	}
}

// Sincos returns Sin(x), Cos(x) from a single reduction.
func Sincos(x float64) (sin, cos float64) {
	if isNaN(x) || isInf(x) {
		return nan(), nan()
	}
	if x < tinyCos && x > -tinyCos {
		return x, 1
	}
	s, c, q := sincosQuadrant(x)
	switch q {
	case 0:
		return s, c
	case 1:
		return c, -s
	case 2:
		return -s, -c
	default:
		return -c, s
	}
}

// Tan returns the tangent of the radian argument x.
//
// Special cases are:
//
//	Tan(±0) = ±0
//	Tan(±Inf) = NaN
//	Tan(NaN) = NaN
func Tan(x float64) float64 {
	if isNaN(x) || isInf(x) {
		return nan()
	}
	if x < tinyCos && x > -tinyCos {
		return x
	}
	s, c, q := sincosQuadrant(x)
	if q&1 == 1 {
		return -c / s
	}
	return s / c
}

// Cot returns the cotangent of x. Cot(±0) = ±Inf.
func Cot(x float64) float64 {
	if isNaN(x) || isInf(x) {
		return nan()
	}
	if x < tinyCos && x > -tinyCos {
		return 1 / x
	}
	s, c, q := sincosQuadrant(x)
	if q&1 == 1 {
		return -s / c
	}
	return c / s
}

// Csc returns the cosecant 1/Sin(x). Csc(±0) = ±Inf.
func Csc(x float64) float64 {
	return 1 / Sin(x)
}

// Sec returns the secant 1/Cos(x).
func Sec(x float64) float64 {
	return 1 / Cos(x)
}
