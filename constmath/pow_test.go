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
	"math/big"
	"testing"

	"github.com/ajroetker/go-trigconst/internal/sweep"
)

func TestPowSpecials(t *testing.T) {
	inf := stdmath.Inf(1)
	vals := []float64{
		-inf, -3, -2, -1, -0.5, negZero, 0, 0.5, 1, 2, 3, inf, stdmath.NaN(),
		-2.5, 2.5, 1 << 53, -(1 << 53), 0x1p63, 0x1p64,
	}
	for _, x := range vals {
		for _, y := range vals {
			got, want := Pow(x, y), stdmath.Pow(x, y)
			ok := same(got, want)
			if want == want && want != 0 && !stdmath.IsInf(want, 0) && !ok {
				ok = stdmath.Abs(got-want) <= 1e-13*stdmath.Abs(want)
			}
			if !ok {
				t.Errorf("Pow(%v, %v) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPowExact(t *testing.T) {
	tests := []struct {
		x, y, want float64
	}{
		{2, 10, 1024},
		{2, -2, 0.25},
		{-2, 3, -8},
		{-2, 4, 16},
		{3, 3, 27},
		{10, 15, 1e15},
		{4, 0.5, 2},
		{4, -0.5, 0.5},
		{2, 1023, 0x1p1023},
		{2, -1074, 0x1p-1074},
		{2, 1024, inf(1)},
		{2, -1075, 0},
		{-1, 1 << 60, 1},
		{-1, 1<<53 + 1, 1},
	}
	for _, tt := range tests {
		if got := Pow(tt.x, tt.y); !same(got, tt.want) {
			t.Errorf("Pow(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

// bigPow returns x**n rounded once from a 2000-bit intermediate.
func bigPow(x float64, n int) float64 {
	const prec = 2000
	acc := new(big.Float).SetPrec(prec).SetFloat64(1)
	base := new(big.Float).SetPrec(prec).SetFloat64(x)
	for range max(n, -n) {
		acc.Mul(acc, base)
	}
	if n < 0 {
		acc.Quo(new(big.Float).SetPrec(prec).SetFloat64(1), acc)
	}
	f, _ := acc.Float64()
	return f
}

func TestPowIntegerAccuracy(t *testing.T) {
	// The ladder carries a double-double, so integer powers round once.
	for _, x := range []float64{1.0000001, 1.1, 2.03, stdmath.Pi, 7.77, 92.79, 0.3, -1.7, 1e-5, 123456.789} {
		for n := -300; n <= 300; n++ {
			want := bigPow(x, n)
			if stdmath.IsInf(want, 0) || stdmath.Abs(want) < 0x1p-1022 {
				continue
			}
			if got := Pow(x, float64(n)); sweep.ULPDistance(got, want) > 1 {
				t.Errorf("Pow(%v, %d) = %v, want %v", x, n, got, want)
			}
		}
	}
}

func TestPowHalfIntegerAccuracy(t *testing.T) {
	// x = b² exactly, so x**(k+1/2) = b**(2k+1).
	for i := 1; i <= 1024; i++ {
		b := float64(i) / 64
		x := b * b
		for k := -40; k <= 40; k++ {
			want := bigPow(b, 2*k+1)
			if got := Pow(x, float64(k)+0.5); sweep.ULPDistance(got, want) > Budget {
				t.Errorf("Pow(%v, %v) = %v, want %v", x, float64(k)+0.5, got, want)
			}
		}
	}
}

func TestPowSweep(t *testing.T) {
	// math.Pow rounds at every step of its own ladder, so it is only good
	// to a relative 1e-14 or so here.
	st, err := sweep.Compare2(pool,
		sweep.Range{Start: 0.01, Stop: 100, Step: 0.0731},
		sweep.Range{Start: -50, Stop: 50, Step: 0.0913},
		func(x, y float64) float64 {
			got, want := Pow(x, y), stdmath.Pow(x, y)
			if stdmath.IsInf(want, 0) || want == 0 {
				return got - want
			}
			return (got - want) / want
		},
		func(x, y float64) float64 { return 0 })
	if err != nil {
		t.Fatal(err)
	}
	if st.MaxAbs > 2e-14 {
		t.Errorf("Pow relative error: %v", st)
	}
}

func TestExpi(t *testing.T) {
	tests := []struct {
		x    float64
		n    int
		want float64
	}{
		{2, 0, 1},
		{2, 4, 16},
		{2, 5, 32},
		{3, 3, 27},
		{-2, 3, -8},
		{2, -3, 0.125},
		{10, -2, 0.01},
		{10, 22, 1e22},
		{2, -1074, 0x1p-1074},
		{0.5, -1023, 0x1p1023},
		{2, 1024, stdmath.Inf(1)},
		{0, -1, stdmath.Inf(1)},
		{negZero, -1, stdmath.Inf(-1)},
		{stdmath.NaN(), 0, 1},
		{stdmath.NaN(), 2, stdmath.NaN()},
		{1, -1 << 62, 1},
	}
	for _, tt := range tests {
		if got := Expi(tt.x, tt.n); !same(got, tt.want) {
			t.Errorf("Expi(%v, %d) = %v, want %v", tt.x, tt.n, got, tt.want)
		}
	}
}

func TestFactorial(t *testing.T) {
	checkSpecials(t, "Factorial", Factorial, []special{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 6},
		{4, 24},
		{5, 120},
		{20, 2432902008176640000},
		{171, stdmath.Inf(1)},
		{1e6, stdmath.Inf(1)},
		{stdmath.Inf(1), stdmath.Inf(1)},
		{171.5, stdmath.NaN()},
		{2.5, stdmath.NaN()},
		{-1, stdmath.NaN()},
		{stdmath.Inf(-1), stdmath.NaN()},
		{stdmath.NaN(), stdmath.NaN()},
	})
	for n := 0; n <= 170; n++ {
		got, want := Factorial(float64(n)), stdmath.Gamma(float64(n)+1)
		if stdmath.IsInf(got, 0) || stdmath.Abs(got-want) > 1e-12*want {
			t.Errorf("Factorial(%d) = %v, want %v", n, got, want)
		}
	}
}
