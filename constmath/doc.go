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

// Package constmath provides elementary transcendental functions built only
// from add, subtract, multiply, divide and compare.
//
// Every kernel avoids heap allocation, package unsafe, bit reinterpretation
// (math.Float64bits and friends) and calls into package math, so the same
// code could be evaluated by a constant-expression evaluator. All loops run a
// fixed number of iterations that does not depend on the input.
//
// # Functions
//
// Trigonometric:
//   - Sin, Cos, Tan, Cot, Csc, Sec, Sincos
//
// Inverse trigonometric:
//   - Asin, Acos, Atan, Atan2
//
// Hyperbolic:
//   - Sinh, Cosh, Tanh, Asinh, Acosh, Atanh
//
// Exponential and logarithmic:
//   - Exp, Expm1, Ln, Log1p, Pow, Expi
//
// Primitives:
//   - Sqrt, Floor, Fabs, Copysign, Signbit, Frexp, Scalbn, Factorial, Classify
//
// Building blocks:
//   - Reduce with the HalfPi, Ln2 and Unit moduli
//   - Horner, HornerMonic
//
// # Accuracy
//
// Results stay within a few ULP of a correctly rounded double-precision
// library over the full input domain (see Budget). Special values follow
// IEEE 754 conventions: NaN for domain errors, signed infinities for poles
// and overflow, and the sign of zero is preserved wherever the standard
// library preserves it.
//
// Arguments of trigonometric functions beyond HalfPi.Ceiling (2^29) are
// reduced with a Payne-Hanek scheme over a fixed table of the bits of 2/π,
// so Sin(1e300) is as accurate as Sin(1).
//
// # Determinism
//
// Products that feed an addition are wrapped in explicit float64 conversions,
// which the language defines as a rounding point. The compiler
// therefore never fuses them into FMA instructions and results are
// bit-identical on every platform.
//
// Runtime call sites that prefer speed over bit-exactness can route through
// package dispatch, which may substitute package math.
package constmath

// Budget is the largest error, in ULP, the differential tests accept for the
// functions that do not document their own bound.
const Budget = 4
