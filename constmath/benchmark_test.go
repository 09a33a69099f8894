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

var benchSink float64

func BenchmarkUnary(b *testing.B) {
	benchmarks := []struct {
		name string
		fn   func(float64) float64
		x    float64
	}{
		{"Sin", Sin, 1.2345},
		{"SinLarge", Sin, 1e8 + 0.5},
		{"Cos", Cos, 1.2345},
		{"Tan", Tan, 1.2345},
		{"Asin", Asin, 0.75},
		{"Acos", Acos, 0.75},
		{"Atan", Atan, 3.5},
		{"Exp", Exp, 12.5},
		{"Expm1", Expm1, 0.25},
		{"Ln", Ln, 12.5},
		{"Log1p", Log1p, 0.25},
		{"Sqrt", Sqrt, 12.5},
		{"Floor", Floor, 12345.678},
		{"Sinh", Sinh, 2.5},
		{"Tanh", Tanh, 2.5},
		{"Asinh", Asinh, 2.5},
	}
	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			var s float64
			for b.Loop() {
				s += bm.fn(bm.x)
			}
			benchSink = s
		})
	}
}

// BenchmarkStdlib gives the math package baseline for the same arguments.
func BenchmarkStdlib(b *testing.B) {
	benchmarks := []struct {
		name string
		fn   func(float64) float64
		x    float64
	}{
		{"Sin", stdmath.Sin, 1.2345},
		{"Exp", stdmath.Exp, 12.5},
		{"Log", stdmath.Log, 12.5},
		{"Sqrt", stdmath.Sqrt, 12.5},
	}
	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			var s float64
			for b.Loop() {
				s += bm.fn(bm.x)
			}
			benchSink = s
		})
	}
}

func BenchmarkPow(b *testing.B) {
	b.ReportAllocs()
	var s float64
	for b.Loop() {
		s += Pow(1.0001, 2345.6789)
	}
	benchSink = s
}

func BenchmarkAtan2(b *testing.B) {
	b.ReportAllocs()
	var s float64
	for b.Loop() {
		s += Atan2(-0.3, -4.5)
	}
	benchSink = s
}
