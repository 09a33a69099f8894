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

// band is one rung of the power-of-two ladder used to move a value between
// binades without touching its bits.
type band struct {
	shift int
	up    float64 // 2^shift
	down  float64 // 2^-shift
	below float64 // 2^(1-shift)
}

var bands = [10]band{
	{512, 0x1p512, 0x1p-512, 0x1p-511},
	{256, 0x1p256, 0x1p-256, 0x1p-255},
	{128, 0x1p128, 0x1p-128, 0x1p-127},
	{64, 0x1p64, 0x1p-64, 0x1p-63},
	{32, 0x1p32, 0x1p-32, 0x1p-31},
	{16, 0x1p16, 0x1p-16, 0x1p-15},
	{8, 0x1p8, 0x1p-8, 0x1p-7},
	{4, 0x1p4, 0x1p-4, 0x1p-3},
	{2, 0x1p2, 0x1p-2, 0x1p-1},
	{1, 0x1p1, 0x1p-1, 0x1p0},
}

// Frexp breaks x into a fraction and a power of two such that
// x == frac × 2^exp with |frac| in [1, 2). Note that the interval differs
// from math.Frexp, which returns fractions in [0.5, 1).
//
// Special cases are:
//
//	Frexp(±0) = ±0, 0
//	Frexp(±Inf) = ±Inf, 0
//	Frexp(NaN) = NaN, 0
func Frexp(x float64) (frac float64, exp int) {
	if x == 0 || isNaN(x) || isInf(x) {
		return x, 0
	}
	m := x
	if m < 0 {
		m = -m
	}
	if m < smallestNormal {
		m *= 0x1p54
		exp = -54
	}
	if m >= 2 {
		for _, b := range bands {
			if m >= b.up {
				m *= b.down
				exp += b.shift
			}
		}
	} else if m < 1 {
		for _, b := range bands {
			if m < b.below {
				m *= b.up
				exp -= b.shift
			}
		}
	}
	if x < 0 {
		m = -m
	}
	return m, exp
}

// pow2 returns 2^n for n in [-1022, 1023].
func pow2(n int) float64 {
	p := 1.0
	if n >= 0 {
		for _, b := range bands {
			if n >= b.shift {
				p *= b.up
				n -= b.shift
			}
		}
		return p
	}
	n = -n
	for _, b := range bands {
		if n >= b.shift {
			p *= b.down
			n -= b.shift
		}
	}
	return p
}

// Scalbn returns x × 2^n, rounding only when the result leaves the normal
// range.
func Scalbn(x float64, n int) float64 {
	switch {
	case n > 1023:
		x *= 0x1p1023
		n -= 1023
		if n > 1023 {
			x *= 0x1p1023
			n -= 1023
			if n > 1023 {
				n = 1023
			}
		}
	case n < -1022:
		// 2^-969 keeps the intermediate normal so the final product rounds
		// once.
		x *= 0x1p-969
		n += 969
		if n < -1022 {
			x *= 0x1p-969
			n += 969
			if n < -1022 {
				n = -1022
			}
		}
	}
	return x * pow2(n)
}
