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

// maxReducePasses bounds the extra folding passes Reduce runs for arguments
// beyond the modulus ceiling. Each pass removes about 50 bits of magnitude.
const maxReducePasses = 20

// Modulus describes a reduction modulus M split into limbs for Cody-Waite
// reduction.
type Modulus struct {
	// Inv is 1/M rounded to double precision.
	Inv float64
	// Limbs sum to M. The leading limbs carry trailing zero bits so that
	// k × Limbs[i] is exact for |k × M| up to Ceiling.
	Limbs [3]float64
	// Ceiling is the largest |x| for which the limb products are exact.
	Ceiling float64

	// payneHanek selects the table-driven reduction above Ceiling.
	payneHanek bool
}

// Cody-Waite limbs of π/2 (twice the π/4 split used by the Go runtime).
const (
	halfPiA = 2 * 7.85398125648498535156e-1
	halfPiB = 2 * 3.77489470793079817668e-8
	halfPiC = 2 * 2.69515142907905952645e-15
	twoByPi = 6.36619772367581343076e-01
)

const (
	ln2Hi = 6.93147180369123816490e-01
	ln2Lo = 1.90821492927058770002e-10
	log2e = 1.44269504088896338700e+00
)

var (
	// HalfPi reduces trigonometric arguments. The quadrant of the result
	// selects the kernel. Arguments above the ceiling go through a
	// Payne-Hanek reduction against the bits of 2/π and stay exact.
	HalfPi = Modulus{
		Inv:        twoByPi,
		Limbs:      [3]float64{halfPiA, halfPiB, halfPiC},
		Ceiling:    0x1p29,
		payneHanek: true,
	}

	// Ln2 reduces exponential arguments; K is the binary exponent of the
	// result.
	Ln2 = Modulus{
		Inv:     log2e,
		Limbs:   [3]float64{ln2Hi, 0, ln2Lo},
		Ceiling: 0x1p20,
	}

	// Unit splits a value into its nearest integer K and a remainder in
	// [-0.5, 0.5].
	Unit = Modulus{
		Inv:     1,
		Limbs:   [3]float64{1, 0, 0},
		Ceiling: twoPow52,
	}
)

// Reduced is the result of Reduce: x ≈ K×M + R + C.
type Reduced struct {
	// R is the primary remainder with |R| <= M/2, up to rounding.
	R float64
	// C is the rounding error of R, to be folded into the kernel as a tail
	// correction.
	C float64
	// K is the integer multiple of M removed from x. Past a Payne-Hanek
	// ceiling K is only x×Inv rounded; Quadrant keeps the exact low bits.
	K float64
	// Quadrant is K mod 4 in [0, 3].
	Quadrant int
	// Degraded is set when |x| exceeded the modulus ceiling and the
	// remainder has lost precision.
	Degraded bool
}

// Reduce computes the remainder of x modulo m.
//
// For |x| <= m.Ceiling the products k×Limbs[i] are exact and R+C matches
// x - K×M to about 2^-100 relative to M. Beyond the ceiling HalfPi switches
// to reduceLarge and loses nothing. Other moduli run a fixed number of extra
// passes that bring R back below M/2; the result is still a valid argument
// for the kernels but carries little precision and Degraded is set.
// NaN and infinite inputs produce a NaN remainder.
func Reduce(x float64, m Modulus) Reduced {
	if isNaN(x) || isInf(x) {
		return Reduced{R: nan(), K: nan(), Degraded: true}
	}
	if m.payneHanek && (x > m.Ceiling || x < -m.Ceiling) {
		r, c, q := reduceLarge(x)
		return Reduced{R: r, C: c, K: Floor(float64(x*m.Inv) + 0.5), Quadrant: q}
	}
	k := Floor(float64(x*m.Inv) + 0.5)
	hi := (x - float64(k*m.Limbs[0])) - float64(k*m.Limbs[1])
	lo := float64(k * m.Limbs[2])
	r := hi - lo
	c := (hi - r) - lo
	q := k - float64(4*Floor(k*0.25))

	degraded := x > m.Ceiling || x < -m.Ceiling
	if degraded {
		for i := 0; i < maxReducePasses; i++ {
			k2 := Floor(float64(r*m.Inv) + 0.5)
			r = ((r - float64(k2*m.Limbs[0])) - float64(k2*m.Limbs[1])) - float64(k2*m.Limbs[2])
			q += k2
			q -= float64(4 * Floor(q*0.25))
		}
		c = 0
	}
	return Reduced{R: r, C: c, K: k, Quadrant: int(q), Degraded: degraded}
}
