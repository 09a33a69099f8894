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

import (
	stdmath "math"
	"testing"
)

func TestFrexp(t *testing.T) {
	xs := append(binades(-1074, 1024, 3, true),
		1, -1, 1.5, 3, 0x1p-1022, 0x1p-1074, stdmath.MaxFloat64, -stdmath.MaxFloat64)
	for _, x := range xs {
		frac, exp := Frexp(x)
		wantFrac, wantExp := stdmath.Frexp(x)
		// math.Frexp returns fractions in [0.5, 1).
		wantFrac *= 2
		wantExp--
		if frac != wantFrac || exp != wantExp {
			t.Errorf("Frexp(%v) = %v, %d, want %v, %d", x, frac, exp, wantFrac, wantExp)
		}
	}

	for _, x := range []float64{0, negZero, stdmath.Inf(1), stdmath.Inf(-1), stdmath.NaN()} {
		frac, exp := Frexp(x)
		if !same(frac, x) || exp != 0 {
			t.Errorf("Frexp(%v) = %v, %d, want %v, 0", x, frac, exp, x)
		}
	}
}

func TestPow2(t *testing.T) {
	for n := -1022; n <= 1023; n++ {
		if got, want := pow2(n), stdmath.Ldexp(1, n); got != want {
			t.Fatalf("pow2(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestScalbn(t *testing.T) {
	tests := []struct {
		x float64
		n int
	}{
		{1, 0},
		{1, 1023},
		{1, 1024},
		{0.75, 1024},
		{1, -1022},
		{1, -1074},
		{1, -1075},
		{1.5, -1074},
		{3, -1075},
		{stdmath.SmallestNonzeroFloat64, 1074},
		{stdmath.SmallestNonzeroFloat64, 2097},
		{stdmath.MaxFloat64, -2098},
		{stdmath.MaxFloat64, -1},
		{-1.25, 500},
		{1, 5000},
		{1, -5000},
		{1, 1 << 20},
		{0, 100},
		{negZero, -100},
		{stdmath.Inf(-1), -10},
		{stdmath.NaN(), 3},
	}
	for _, tt := range tests {
		got, want := Scalbn(tt.x, tt.n), stdmath.Ldexp(tt.x, tt.n)
		if !same(got, want) {
			t.Errorf("Scalbn(%v, %d) = %v, want %v", tt.x, tt.n, got, want)
		}
	}
}
