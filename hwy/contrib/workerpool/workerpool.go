// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs lane-aligned chunks of a loop range on a
// persistent set of goroutines. A Pool is created once and reused across
// many loops, so no goroutines are spawned per call.
//
// Chunks handed to the callback never split a vector step: every chunk
// boundary except the end of the range is a multiple of the lane count, so
// the callback can drive its chunk with full vector steps and leave the
// scalar tail to the last chunk only.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForLanes(len(xs), 8, func(start, end int) {
//	    loop.Simple(start, end, 8, loop.ScalarResidual, body)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool of numWorkers workers, or GOMAXPROCS workers if
// numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes. Calling Close more
// than once is safe. A closed pool runs every loop sequentially on the
// caller's goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor calls fn with disjoint ranges [start, end) covering [0, n)
// and blocks until all of them return.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForLanes(n, 1, fn)
}

// ParallelForLanes is ParallelFor with every chunk boundary except n rounded
// to a multiple of lanes. Each worker gets at most one chunk.
func (p *Pool) ParallelForLanes(n, lanes int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	lanes = max(lanes, 1)

	steps := (n + lanes - 1) / lanes
	workers := min(p.numWorkers, steps)
	if workers <= 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (steps + workers - 1) / workers * lanes

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		p.submit(&wg, func() { fn(start, end) })
	}
	wg.Wait()
}

// ParallelForBatched calls fn with batches of batch items grabbed by the
// workers through an atomic counter, which balances load when the cost per
// item varies. Batch boundaries are multiples of batch, so a batch that is a
// multiple of the lane count keeps vector steps whole.
func (p *Pool) ParallelForBatched(n, batch int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batch = max(batch, 1)

	batches := (n + batch - 1) / batch
	workers := min(p.numWorkers, batches)
	if workers <= 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	for range workers {
		p.submit(&wg, func() {
			for {
				start := int(next.Add(1)-1) * batch
				if start >= n {
					return
				}
				fn(start, min(start+batch, n))
			}
		})
	}
	wg.Wait()
}

func (p *Pool) submit(wg *sync.WaitGroup, fn func()) {
	wg.Add(1)
	p.workC <- workItem{fn: fn, barrier: wg}
}
