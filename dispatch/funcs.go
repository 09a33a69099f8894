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

package dispatch

import (
	"math"
	"sync/atomic"

	"github.com/ajroetker/go-trigconst/constmath"
)

// table binds every package function to one implementation. SetMode swaps
// whole tables, so a call never mixes the two modes.
type table struct {
	mode Mode

	sin, cos, tan, cot, csc, sec func(float64) float64
	asin, acos, atan             func(float64) float64
	atan2                        func(y, x float64) float64

	sinh, cosh, tanh, asinh, acosh, atanh func(float64) float64

	exp, ln, sqrt, floor, fabs func(float64) float64
	pow                        func(x, y float64) float64
}

var constTable = &table{
	mode: ModeConst,

	sin: constmath.Sin, cos: constmath.Cos, tan: constmath.Tan,
	cot: constmath.Cot, csc: constmath.Csc, sec: constmath.Sec,
	asin: constmath.Asin, acos: constmath.Acos, atan: constmath.Atan,
	atan2: constmath.Atan2,

	sinh: constmath.Sinh, cosh: constmath.Cosh, tanh: constmath.Tanh,
	asinh: constmath.Asinh, acosh: constmath.Acosh, atanh: constmath.Atanh,

	exp: constmath.Exp, ln: constmath.Ln, sqrt: constmath.Sqrt,
	floor: constmath.Floor, fabs: constmath.Fabs, pow: constmath.Pow,
}

var runtimeTable = &table{
	mode: ModeRuntime,

	sin: math.Sin, cos: math.Cos, tan: math.Tan,
	cot: runtimeCot, csc: runtimeCsc, sec: runtimeSec,
	asin: math.Asin, acos: math.Acos, atan: math.Atan,
	atan2: math.Atan2,

	sinh: math.Sinh, cosh: math.Cosh, tanh: runtimeTanh,
	asinh: math.Asinh, acosh: math.Acosh, atanh: runtimeAtanh,

	exp: math.Exp, ln: math.Log, sqrt: math.Sqrt,
	floor: math.Floor, fabs: math.Abs, pow: math.Pow,
}

// active is the table in use. Set by init() in dispatch_*.go files and by
// SetMode.
var active atomic.Pointer[table]

func Sin(x float64) float64 { return active.Load().sin(x) }
func Cos(x float64) float64 { return active.Load().cos(x) }
func Tan(x float64) float64 { return active.Load().tan(x) }
func Cot(x float64) float64 { return active.Load().cot(x) }
func Csc(x float64) float64 { return active.Load().csc(x) }
func Sec(x float64) float64 { return active.Load().sec(x) }
func Asin(x float64) float64 { return active.Load().asin(x) }
func Acos(x float64) float64 { return active.Load().acos(x) }
func Atan(x float64) float64 { return active.Load().atan(x) }

// Atan2 takes the arguments in the order of math.Atan2.
func Atan2(y, x float64) float64 { return active.Load().atan2(y, x) }

func Sinh(x float64) float64 { return active.Load().sinh(x) }
func Cosh(x float64) float64 { return active.Load().cosh(x) }
func Tanh(x float64) float64 { return active.Load().tanh(x) }
func Asinh(x float64) float64 { return active.Load().asinh(x) }
func Acosh(x float64) float64 { return active.Load().acosh(x) }
func Atanh(x float64) float64 { return active.Load().atanh(x) }

func Exp(x float64) float64 { return active.Load().exp(x) }
func Ln(x float64) float64 { return active.Load().ln(x) }
func Pow(x, y float64) float64 { return active.Load().pow(x, y) }
func Sqrt(x float64) float64 { return active.Load().sqrt(x) }
func Floor(x float64) float64 { return active.Load().floor(x) }
func Fabs(x float64) float64 { return active.Load().fabs(x) }

func runtimeCot(x float64) float64 {
	s, c := math.Sincos(x)
	return c / s
}

func runtimeCsc(x float64) float64 { return 1 / math.Sin(x) }

func runtimeSec(x float64) float64 { return 1 / math.Cos(x) }

// runtimeTanh keeps finite results strictly inside (-1, 1).
func runtimeTanh(x float64) float64 {
	const almostOne = 1 - 0x1p-53
	t := math.Tanh(x)
	if math.IsInf(x, 0) {
		return t
	}
	if t >= 1 {
		return almostOne
	}
	if t <= -1 {
		return -almostOne
	}
	return t
}

// runtimeAtanh treats the poles as domain errors.
func runtimeAtanh(x float64) float64 {
	if x <= -1 || x >= 1 {
		return math.NaN()
	}
	return math.Atanh(x)
}
