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

// sqrtNewtonSteps is enough to take the linear seed below to full precision
// on [1, 4); every input runs all of them.
const sqrtNewtonSteps = 5

// Floor returns the greatest integer value less than or equal to x.
//
// Special cases are:
//
//	Floor(±0) = ±0
//	Floor(±Inf) = ±Inf
//	Floor(NaN) = NaN
func Floor(x float64) float64 {
	if x == 0 || isNaN(x) || x >= twoPow52 || x <= -twoPow52 {
		return x
	}
	r := Fabs(x)
	ip := 0.0
	b := twoPow52
	for i := 0; i < 53; i++ {
		if r >= b {
			r -= b
			ip += b
		}
		b *= 0.5
	}
	if x > 0 {
		return ip
	}
	if r != 0 {
		return -ip - 1
	}
	return -ip
}

// split returns hi + lo == a with hi holding the upper 26 bits.
func split(a float64) (hi, lo float64) {
	c := float64(dekkerSplitter * a)
	hi = c - (c - a)
	return hi, a - hi
}

// twoProd returns p + e == a × b exactly, p being the rounded product.
func twoProd(a, b float64) (p, e float64) {
	p = float64(a * b)
	ah, al := split(a)
	bh, bl := split(b)
	e = ((float64(ah*bh) - p) + float64(ah*bl) + float64(al*bh)) + float64(al*bl)
	return p, e
}

// twoSum returns s + e == a + b exactly.
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return s, e
}

// ddMul returns the double-double product of ah+al and bh+bl, dropping the
// al×bl term.
func ddMul(ah, al, bh, bl float64) (hi, lo float64) {
	p, e := twoProd(ah, bh)
	e += float64(ah*bl) + float64(al*bh)
	hi = p + e
	return hi, e - (hi - p)
}

// Sqrt returns the correctly rounded square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float64) float64 {
	switch {
	case isNaN(x):
		return x
	case x < 0:
		return nan()
	case x == 0 || x > maxFloat64:
		return x
	}
	m, e := Frexp(x)
	if e&1 != 0 {
		m *= 2
		e--
	}
	// m in [1, 4)
	y := 0.83462 + float64(0.29508*m)
	for i := 0; i < sqrtNewtonSteps; i++ {
		y = 0.5 * (y + m/y)
	}
	hi, lo := twoProd(y, y)
	r := (m - hi) - lo
	y += r / (2 * y)

	// Round to nearest: y ± ulp/2 brackets √m unless the exact residual
	// m - y² crosses y×ulp ± ulp²/4.
	const ulp = 0x1p-52
	hi, lo = twoProd(y, y)
	r = (m - hi) - lo
	switch {
	case r-float64(y*ulp) > 0x1p-106:
		y += ulp
	case r+float64(y*ulp) < 0x1p-106:
		y -= ulp
	}
	return Scalbn(y, e/2)
}
