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

// Payne-Hanek reduction for trigonometric arguments beyond HalfPi.Ceiling.
//
// x = a0×2^(e-4) + a1×2^(e-28) + a2×2^(e-52) with 24-bit integer chunks ai,
// and 2/π = Σ twoByPiChunks[j]×2^(-24(j+1)). Only the products whose weight
// falls below 4 affect x×2/π mod 4, so the leading chunks of 2/π are skipped
// and a fixed window of largeTerms partial sums is carried in base 2^24.

// largeTerms is the number of base-2^24 digits of x×2/π kept below the
// quadrant bits: about 190 bits, enough for the closest approach of a double
// to a multiple of π/2.
const largeTerms = 8

// twoByPiChunks holds the bits of 2/π in 24-bit chunks, most significant
// first. 50 chunks cover exponents up to 1023.
var twoByPiChunks = [50]float64{
	0xA2F983, 0x6E4E44, 0x1529FC, 0x2757D1, 0xF534DD, 0xC0DB62,
	0x95993C, 0x439041, 0xFE5163, 0xABDEBB, 0xC561B7, 0x246E3A,
	0x424DD2, 0xE00649, 0x2EEA09, 0xD1921C, 0xFE1DEB, 0x1CB129,
	0xA73EE8, 0x8235F5, 0x2EBB44, 0x84E99C, 0x7026B4, 0x5F7E41,
	0x3991D6, 0x398353, 0x39F49C, 0x845F8B, 0xBDF928, 0x3B1FF8,
	0x97FFDE, 0x05980F, 0xEF2F11, 0x8B5A0A, 0x6D1F6D, 0x367ECF,
	0x27CB09, 0xB74F46, 0x3F669E, 0x5FEA2D, 0x7527BA, 0xC7EBE5,
	0xF17B3D, 0x0739F7, 0x8A5292, 0xEA6BFB, 0x5FB11F, 0x8D5D08,
	0x560330, 0x46FC7B,
}

// π/2 as a double-double.
const (
	halfPiHi = 1.57079632679489655800e+00
	halfPiLo = 6.12323399573676603587e-17
)

// reduceLarge returns r + c ≈ x - k×π/2 and k mod 4 for a finite x with
// |x| > 2^29. The remainder is accurate to well below one ULP.
func reduceLarge(x float64) (r, c float64, quadrant int) {
	m, e := Frexp(Fabs(x))

	// 53-bit integer mantissa in three chunks.
	X := float64(m * twoPow52)
	a0 := Floor(X * 0x1p-48)
	rest := X - float64(a0*0x1p48)
	a1 := Floor(rest * 0x1p-24)
	a2 := rest - float64(a1*0x1p24)
	a := [3]float64{a0, a1, a2}

	// Chunk n of the product has weight 2^(e-28-24n); skip those that are
	// multiples of 4. The first kept weight is 2^s with s in [-22, 1].
	n0 := 0
	if e > 29 {
		n0 = (e - 29 + 23) / 24
	}
	s := e - 28 - 24*n0

	// Partial sums per weight, each below 3×2^48 and exact.
	var p [largeTerms]float64
	for d := range p {
		n := n0 + d
		acc := 0.0
		for i := range a {
			if j := n - i; j >= 0 {
				acc += float64(a[i] * twoByPiChunks[j])
			}
		}
		p[d] = acc
	}

	// Carry into base-2^24 digits. The carry out of digit 0 has weight
	// 2^(24+s) >= 4 and drops out.
	var digit [largeTerms]float64
	carry := 0.0
	for d := largeTerms - 1; d >= 0; d-- {
		v := p[d] + carry
		carry = Floor(v * 0x1p-24)
		digit[d] = v - float64(carry*0x1p24)
	}

	// Integer part mod 8 and the first fraction bits; the nearest integer k
	// is exact because the remaining digits sum to less than one unit of a.
	hi := float64(digit[0] * pow2(s))
	hi -= float64(8 * Floor(hi*0.125))
	y := hi + float64(digit[1]*pow2(s-24))
	k := Floor(y + 0.5)

	// f = y - k + tail in double-double.
	var th, tl float64
	for d := largeTerms - 1; d >= 2; d-- {
		var ce float64
		th, ce = twoSum(th, float64(digit[d]*pow2(s-24*d)))
		tl += ce
	}
	fh, ce := twoSum(y-k, th)
	fh, fl := twoSum(fh, ce+tl)

	// r = f × π/2
	ph, pl := twoProd(fh, halfPiHi)
	lo := pl + (float64(fh*halfPiLo) + float64(fl*halfPiHi))
	r = ph + lo
	c = (ph - r) + lo

	q := int(k - float64(4*Floor(k*0.25)))
	if x < 0 {
		return -r, -c, (4 - q) & 3
	}
	return r, c, q
}
