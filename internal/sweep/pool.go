// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package sweep

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Sampler evaluates sample i of a sweep. It returns the arguments and the
// candidate and reference results; y is zero for unary functions.
type Sampler func(i int) (x, y, got, want float64)

// Pool is a set of long-lived workers that evaluate sweeps. Each worker
// accumulates into its own Stats; the caller merges them once per sweep.
type Pool struct {
	numWorkers int
	jobs       chan job
	closeOnce  sync.Once
	closed     atomic.Bool
}

// job is one worker's share of a sweep. Workers claim batches of indices
// from next until n is exhausted.
type job struct {
	n, batch int
	next     *atomic.Int64
	sample   Sampler
	out      *Stats
	done     *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		jobs:       make(chan job, numWorkers),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for j := range p.jobs {
		j.run()
		j.done.Done()
	}
}

func (j job) run() {
	var st Stats
	for {
		start := int(j.next.Add(int64(j.batch))) - j.batch
		if start >= j.n {
			break
		}
		for i := start; i < min(start+j.batch, j.n); i++ {
			st.add(j.sample(i))
		}
	}
	*j.out = st
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Sweeps in flight complete; later sweeps run on
// the caller's goroutine. Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.jobs)
	})
}

// Sweep evaluates samples [0, n) and returns their merged Stats. Workers
// claim at most batchSize samples at a time, so uneven per-sample cost, as
// across the binades of a sweep, still spreads over every worker.
func (p *Pool) Sweep(n int, sample Sampler) Stats {
	if n <= 0 {
		return Stats{}
	}
	var next atomic.Int64
	batch := min(batchSize, (n+p.numWorkers-1)/p.numWorkers)
	workers := min(p.numWorkers, (n+batch-1)/batch)
	if workers == 1 || p.closed.Load() {
		var st Stats
		job{n: n, batch: batch, next: &next, sample: sample, out: &st}.run()
		return st
	}

	slots := make([]Stats, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		p.jobs <- job{n: n, batch: batch, next: &next, sample: sample, out: &slots[w], done: &wg}
	}
	wg.Wait()

	var st Stats
	for _, s := range slots {
		st.Merge(s)
	}
	return st
}
