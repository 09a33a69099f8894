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

// Horner evaluates the polynomial with coefficients c (ascending by degree)
// at x. Each step rounds the product before adding, so the result never
// depends on FMA availability. An empty table evaluates to 0.
func Horner(c []float64, x float64) float64 {
	if len(c) == 0 {
		return 0
	}
	acc := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		acc = float64(acc*x) + c[i]
	}
	return acc
}

// HornerMonic evaluates x^n + c[n-1]x^(n-1) + ... + c[0] where n = len(c).
func HornerMonic(c []float64, x float64) float64 {
	acc := 1.0
	for i := len(c) - 1; i >= 0; i-- {
		acc = float64(acc*x) + c[i]
	}
	return acc
}
