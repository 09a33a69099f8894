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

// Class is the IEEE 754 category of a float64.
type Class int

const (
	// ClassNaN is any NaN, quiet or signaling.
	ClassNaN Class = iota
	ClassPosInf
	ClassNegInf
	ClassPosZero
	ClassNegZero
	// ClassSubnormal covers nonzero values below the smallest normal.
	ClassSubnormal
	ClassNormal
)

// String returns a lower-case name for the class.
func (c Class) String() string {
	switch c {
	case ClassNaN:
		return "nan"
	case ClassPosInf:
		return "+inf"
	case ClassNegInf:
		return "-inf"
	case ClassPosZero:
		return "+zero"
	case ClassNegZero:
		return "-zero"
	case ClassSubnormal:
		return "subnormal"
	case ClassNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// IsFinite reports whether the class is a zero, subnormal or normal value.
func (c Class) IsFinite() bool {
	return c >= ClassPosZero && c <= ClassNormal
}

const (
	maxFloat64     = 0x1p1023 * (1 + (1 - 0x1p-52))
	smallestNormal = 0x1p-1022
	pi             = 3.14159265358979323846264338327950288419716939937510582097494459
	halfPi         = pi / 2
	quarterPi      = pi / 4
	sqrt2          = 1.41421356237309504880168872420969807856967187537694807317667974
	ln2            = 0.693147180559945309417232121458176568075500134360255254120680009
	tinyTrig       = 0x1p-26
	tinyCos        = 0x1p-27
	tinyHyperbolic = 0x1p-28
	twoPow52       = 0x1p52
	twoPow53       = 0x1p53
	twoPow63       = 0x1p63
	almostOne      = 1 - 0x1p-53
	dekkerSplitter = 0x1p27 + 1
)

// zero is a variable so that dividing by it happens at run time and yields
// IEEE infinities and NaN instead of a compile error.
var zero float64

func nan() float64 { return zero / zero }

// inf returns +Inf if sign >= 0 and -Inf otherwise.
func inf(sign int) float64 {
	if sign >= 0 {
		return 1 / zero
	}
	return -1 / zero
}

func isNaN(x float64) bool { return x != x }

func isInf(x float64) bool { return x > maxFloat64 || x < -maxFloat64 }

// Classify returns the IEEE 754 class of x using comparisons only.
func Classify(x float64) Class {
	switch {
	case x != x:
		return ClassNaN
	case x > maxFloat64:
		return ClassPosInf
	case x < -maxFloat64:
		return ClassNegInf
	case x == 0:
		if 1/x < 0 {
			return ClassNegZero
		}
		return ClassPosZero
	case x < smallestNormal && x > -smallestNormal:
		return ClassSubnormal
	default:
		return ClassNormal
	}
}

// Fabs returns the absolute value of x. Fabs(±0) = +0 and Fabs(NaN) = NaN.
func Fabs(x float64) float64 {
	if x < 0 {
		return -x
	}
	if x == 0 {
		return 0
	}
	return x
}

// Signbit reports whether x is negative or negative zero.
// The sign of a NaN is not observable without bit access; Signbit(NaN) is
// false.
func Signbit(x float64) bool {
	if x < 0 {
		return true
	}
	return x == 0 && 1/x < 0
}

// Copysign returns a value with the magnitude of f and the sign of sign.
func Copysign(f, sign float64) float64 {
	a := Fabs(f)
	if Signbit(sign) {
		return -a
	}
	return a
}
