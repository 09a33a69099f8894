// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package sweep compares a candidate float64 function against a reference
// over a range of inputs, in parallel.
//
// Usage:
//
//	pool := sweep.New(0)
//	defer pool.Close()
//
//	st, err := sweep.Compare(pool, sweep.Range{Start: -10, Stop: 10, Step: 1e-4},
//	    constmath.Sin, math.Sin)
//	if st.MaxULP > 2 { ... }
package sweep

import (
	"errors"
	"fmt"
	"math"
)

// MaxPoints bounds the number of samples of a single sweep.
const MaxPoints = 1 << 30

// batchSize is the number of samples a worker evaluates per grab.
const batchSize = 4096

var (
	// ErrEmptyRange is returned for ranges whose Stop is below Start or NaN.
	ErrEmptyRange = errors.New("sweep: empty range")
	// ErrBadStep is returned for steps that are not positive and finite, or
	// that would produce more than MaxPoints samples.
	ErrBadStep = errors.New("sweep: bad step")
)

// Range is the arithmetic progression Start, Start+Step, ... up to and
// including Stop. Samples are computed as Start + i×Step, so rounding does
// not accumulate along the sweep.
type Range struct {
	Start, Stop, Step float64
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g] step %g", r.Start, r.Stop, r.Step)
}

// Len returns the number of samples in r after validating it.
func (r Range) Len() (int, error) {
	if math.IsNaN(r.Start) || math.IsNaN(r.Stop) || r.Stop < r.Start {
		return 0, fmt.Errorf("range %v: %w", r, ErrEmptyRange)
	}
	if !(r.Step > 0) || math.IsInf(r.Step, 0) {
		return 0, fmt.Errorf("range %v: %w", r, ErrBadStep)
	}
	n := math.Floor((r.Stop-r.Start)/r.Step) + 1
	if n > MaxPoints {
		return 0, fmt.Errorf("range %v: %.0f samples: %w", r, n, ErrBadStep)
	}
	return int(n), nil
}

// At returns sample i.
func (r Range) At(i int) float64 {
	return r.Start + float64(i)*r.Step
}

// Stats summarizes a comparison.
type Stats struct {
	// Total is the number of samples compared.
	Total int
	// Diffs counts samples whose results differ by at least one ULP, or
	// where exactly one result is NaN.
	Diffs int
	// MaxAbs is the largest |got - want| over samples where both are finite.
	MaxAbs float64
	// MaxULP is the largest ULPDistance seen.
	MaxULP uint64
	// WorstX and WorstY are the arguments that produced MaxULP. WorstY is
	// only set by Compare2.
	WorstX, WorstY float64
}

func (s Stats) String() string {
	return fmt.Sprintf("total=%d diffs=%d maxabs=%g maxulp=%d worst=(%g, %g)",
		s.Total, s.Diffs, s.MaxAbs, s.MaxULP, s.WorstX, s.WorstY)
}

// add records one sample.
func (s *Stats) add(x, y, got, want float64) {
	s.Total++
	d := ULPDistance(got, want)
	if d == 0 {
		return
	}
	s.Diffs++
	if !math.IsInf(got, 0) && !math.IsInf(want, 0) && !math.IsNaN(got) && !math.IsNaN(want) {
		s.MaxAbs = max(s.MaxAbs, math.Abs(got-want))
	}
	if d > s.MaxULP {
		s.MaxULP = d
		s.WorstX = x
		s.WorstY = y
	}
}

// Merge folds o into s.
func (s *Stats) Merge(o Stats) {
	s.Total += o.Total
	s.Diffs += o.Diffs
	s.MaxAbs = max(s.MaxAbs, o.MaxAbs)
	if o.MaxULP > s.MaxULP {
		s.MaxULP = o.MaxULP
		s.WorstX = o.WorstX
		s.WorstY = o.WorstY
	}
}

// ULPDistance returns the number of representable float64 values between a
// and b. Two NaNs are 0 apart, a NaN and a number are math.MaxUint64 apart,
// and +0 and -0 are 0 apart.
func ULPDistance(a, b float64) uint64 {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an || bn:
		return math.MaxUint64
	}
	ia, ib := ordered(a), ordered(b)
	if ia > ib {
		return uint64(ia) - uint64(ib)
	}
	return uint64(ib) - uint64(ia)
}

// ordered maps a float64 onto an integer line where adjacent floats are
// adjacent integers.
func ordered(f float64) int64 {
	i := int64(math.Float64bits(f))
	if i < 0 {
		i = math.MinInt64 - i
	}
	return i
}

// Compare evaluates got and want at every sample of r.
func Compare(p *Pool, r Range, got, want func(float64) float64) (Stats, error) {
	n, err := r.Len()
	if err != nil {
		return Stats{}, err
	}
	return p.Sweep(n, func(i int) (x, y, g, w float64) {
		x = r.At(i)
		return x, 0, got(x), want(x)
	}), nil
}

// Compare2 evaluates two-argument functions over the grid xr × yr. The
// functions receive (x, y) in that order.
func Compare2(p *Pool, xr, yr Range, got, want func(x, y float64) float64) (Stats, error) {
	nx, err := xr.Len()
	if err != nil {
		return Stats{}, err
	}
	ny, err := yr.Len()
	if err != nil {
		return Stats{}, err
	}
	if nx*ny > MaxPoints {
		return Stats{}, fmt.Errorf("grid %v × %v: %w", xr, yr, ErrBadStep)
	}
	return p.Sweep(nx*ny, func(i int) (x, y, g, w float64) {
		x, y = xr.At(i/ny), yr.At(i%ny)
		return x, y, got(x, y), want(x, y)
	}), nil
}

// ComparePoints evaluates got and want at each of xs.
func ComparePoints(p *Pool, xs []float64, got, want func(float64) float64) Stats {
	return p.Sweep(len(xs), func(i int) (x, y, g, w float64) {
		x = xs[i]
		return x, 0, got(x), want(x)
	})
}
