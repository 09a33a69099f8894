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

// Package dispatch routes the elementary functions either to the constant
// kernels of package constmath or to package math, which the Go toolchain
// lowers to hardware square root and fused multiply-add where available.
//
// The choice is made once per process in init, from the CPU features
// reported by golang.org/x/sys/cpu. Setting TRIGCONST_NO_ACCEL forces the
// constant kernels, which is useful for reproducing results bit-for-bit
// across machines.
//
// Both paths honor the domain conventions of constmath: in particular
// Atanh(±1) is NaN in either mode.
package dispatch

import (
	"os"
	"strconv"

	"github.com/ajroetker/go-trigconst/constmath"
)

// Mode selects the implementation behind the package-level functions.
type Mode int32

const (
	// ModeConst uses the constant kernels of constmath.
	ModeConst Mode = iota

	// ModeRuntime uses package math.
	ModeRuntime
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeConst:
		return "const"
	case ModeRuntime:
		return "runtime"
	default:
		return "unknown"
	}
}

// RuntimeULPBudget is the largest distance, in ULP, between ModeRuntime and
// ModeConst results for the same argument.
const RuntimeULPBudget = 4 * constmath.Budget

// accelerated records whether the CPU passed feature detection.
var accelerated bool

// CurrentMode returns the active mode.
func CurrentMode() Mode {
	return active.Load().mode
}

// Accelerated reports whether the CPU has the features the runtime path
// relies on, regardless of the active mode.
func Accelerated() bool {
	return accelerated
}

// SetMode switches every function in the package to m and returns the
// previous mode. Unknown modes select ModeConst. It is safe to call
// concurrently with the functions: each call runs entirely in the mode that
// was active when it started.
func SetMode(m Mode) Mode {
	t := constTable
	if m == ModeRuntime {
		t = runtimeTable
	}
	if prev := active.Swap(t); prev != nil {
		return prev.mode
	}
	return ModeConst
}

// NoAccelEnv checks if the TRIGCONST_NO_ACCEL environment variable is set.
// When set, the constant kernels are used regardless of CPU capabilities.
func NoAccelEnv() bool {
	val := os.Getenv("TRIGCONST_NO_ACCEL")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// selectMode applies the detection result and the environment override.
func selectMode(hasFeatures bool) {
	accelerated = hasFeatures
	if hasFeatures && !NoAccelEnv() {
		SetMode(ModeRuntime)
		return
	}
	SetMode(ModeConst)
}
