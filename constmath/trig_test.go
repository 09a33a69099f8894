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

func TestSinCosSpecials(t *testing.T) {
	nan := stdmath.NaN()
	inf := stdmath.Inf(1)
	checkSpecials(t, "Sin", Sin, []special{
		{0, 0},
		{negZero, negZero},
		{1e-300, 1e-300},
		{-0x1p-27, -0x1p-27},
		{stdmath.Pi / 2, 1},
		{-stdmath.Pi / 2, -1},
		{inf, nan},
		{-inf, nan},
		{nan, nan},
	})
	checkSpecials(t, "Cos", Cos, []special{
		{0, 1},
		{negZero, 1},
		{1e-10, 1},
		{stdmath.Pi, -1},
		{-stdmath.Pi, -1},
		{2 * stdmath.Pi, 1},
		{inf, nan},
		{nan, nan},
	})
	checkSpecials(t, "Tan", Tan, []special{
		{0, 0},
		{negZero, negZero},
		{inf, nan},
		{nan, nan},
	})
}

func TestReciprocalTrigSpecials(t *testing.T) {
	inf := stdmath.Inf(1)
	checkSpecials(t, "Cot", Cot, []special{
		{0, inf},
		{negZero, -inf},
		{inf, stdmath.NaN()},
		{stdmath.NaN(), stdmath.NaN()},
	})
	checkSpecials(t, "Csc", Csc, []special{
		{0, inf},
		{negZero, -inf},
		{stdmath.Pi / 2, 1},
		{inf, stdmath.NaN()},
	})
	checkSpecials(t, "Sec", Sec, []special{
		{0, 1},
		{stdmath.Pi, -1},
		{-inf, stdmath.NaN()},
	})
}

func TestTrigQuadrantTable(t *testing.T) {
	// Midpoints of each quadrant, both signs.
	for k := -8; k <= 8; k++ {
		x := (float64(k) + 0.5) * stdmath.Pi / 2
		if got, want := Sin(x), stdmath.Sin(x); stdmath.Abs(got-want) > 2e-16 {
			t.Errorf("Sin(%v) = %v, want %v", x, got, want)
		}
		if got, want := Cos(x), stdmath.Cos(x); stdmath.Abs(got-want) > 2e-16 {
			t.Errorf("Cos(%v) = %v, want %v", x, got, want)
		}
		if got, want := Tan(x), stdmath.Tan(x); stdmath.Abs(got-want) > 5e-16 {
			t.Errorf("Tan(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestTrigSweep(t *testing.T) {
	cot := func(x float64) float64 { return 1 / stdmath.Tan(x) }
	csc := func(x float64) float64 { return 1 / stdmath.Sin(x) }
	sec := func(x float64) float64 { return 1 / stdmath.Cos(x) }
	runSweeps(t, []sweepCase{
		{"sin", Sin, stdmath.Sin, span(-10, 10, 400000), 2},
		{"cos", Cos, stdmath.Cos, span(-10, 10, 400000), 2},
		{"tan", Tan, stdmath.Tan, span(-10, 10, 400000), 4},
		{"sin large", Sin, stdmath.Sin, span(-0x1p29, 0x1p29, 200000), 2},
		{"cos large", Cos, stdmath.Cos, span(-0x1p29, 0x1p29, 200000), 2},
		{"tan large", Tan, stdmath.Tan, span(-0x1p29, 0x1p29, 200000), 4},
		{"cot", Cot, cot, span(0.01, 3.1, 200000), 4},
		{"csc", Csc, csc, span(0.01, 3.1, 200000), 3},
		{"sec", Sec, sec, span(-1.5, 1.5, 200000), 3},
	})
	checkPoints(t, "sin binades", binades(-40, 29, 64, true), Sin, stdmath.Sin, 2)
	checkPoints(t, "cos binades", binades(-40, 29, 64, true), Cos, stdmath.Cos, 2)
}

func TestTrigHugeArguments(t *testing.T) {
	// Both sides reduce exactly above 2^29; the difference is the kernels.
	xs := append(binades(29, 997, 16, true), 1e10, 1e15, 1e22, 1e100, -1e200, 1e300)
	checkPoints(t, "sin huge", xs, Sin, stdmath.Sin, Budget)
	checkPoints(t, "cos huge", xs, Cos, stdmath.Cos, Budget)
	for _, x := range xs {
		s, c := Sincos(x)
		if d := s*s + c*c - 1; stdmath.Abs(d) > 1e-15 {
			t.Errorf("sin²+cos²-1 = %v at %v", d, x)
		}
	}
	checkSpecials(t, "Sin", Sin, []special{
		{1e10, -0.4875060250875107},
		{1e22, -0.8522008497671888},
		{5.319372648326541e+255, 1},
	})
	// x sits 4.7e-19 above a multiple of π/2 in quadrant 1.
	if got, want := Cos(5.319372648326541e+255), -4.687165924254628e-19; stdmath.Abs(got-want) > 0x1p-52*stdmath.Abs(want) {
		t.Errorf("Cos(5.319372648326541e+255) = %v, want %v", got, want)
	}
}

func TestSincos(t *testing.T) {
	xs := append(binades(-40, 40, 16, true), 0, negZero, stdmath.Inf(1), stdmath.NaN())
	for _, x := range xs {
		s, c := Sincos(x)
		if !same(s, Sin(x)) || !same(c, Cos(x)) {
			t.Errorf("Sincos(%v) = %v, %v, want %v, %v", x, s, c, Sin(x), Cos(x))
		}
	}
}
