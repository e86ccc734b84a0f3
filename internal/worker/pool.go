// Package worker runs independent jobs on a fixed set of goroutines.
// It is used to search the subtrees below each root move in parallel.
package worker

import (
	"sync"
	"sync/atomic"
)

// Job pairs an input with its position in the submission order, so results
// arriving out of order can be put back in place.
type Job[T any] struct {
	Index int
	Input T
}

// Result is the output of one Job.
type Result[R any] struct {
	Index  int
	Output R
}

// Pool applies one function to every submitted job. The zero value is not
// usable; create pools with NewPool.
type Pool[T, R any] struct {
	workers int
	buffer  int
	fn      func(T) R

	jobs    chan Job[T]
	results chan Result[R]
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// Option configures a Pool.
type Option func(*settings)

type settings struct {
	workers int
	buffer  int
}

// WithWorkers sets the number of goroutines. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the job and result channels. Values
// below 1 are ignored.
func WithBufferSize(size int) Option {
	return func(s *settings) {
		if size >= 1 {
			s.buffer = size
		}
	}
}

// NewPool creates a pool running fn, by default on 1 goroutine with
// channels buffered to 10 entries.
func NewPool[T, R any](fn func(T) R, opts ...Option) *Pool[T, R] {
	s := settings{workers: 1, buffer: 10}
	for _, opt := range opts {
		opt(&s)
	}
	return &Pool[T, R]{
		workers: s.workers,
		buffer:  s.buffer,
		fn:      fn,
		jobs:    make(chan Job[T], s.buffer),
		results: make(chan Result[R], s.buffer),
	}
}

// Start launches the goroutines.
func (p *Pool[T, R]) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.run()
	}
}

func (p *Pool[T, R]) run() {
	defer p.wg.Done()
	for job := range p.jobs {
		// After Stop the remaining jobs are drained unprocessed.
		if p.stopped.Load() {
			continue
		}
		p.results <- Result[R]{Index: job.Index, Output: p.fn(job.Input)}
	}
}

// Submit queues a job, blocking while the job buffer is full.
func (p *Pool[T, R]) Submit(index int, input T) {
	p.jobs <- Job[T]{Index: index, Input: input}
}

// Stop makes the goroutines skip jobs they have not started.
func (p *Pool[T, R]) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool[T, R]) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for running jobs and closes the result
// channel. Unless the buffer can hold every result, Close must run
// concurrently with a reader of Results.
func (p *Pool[T, R]) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results are delivered on.
func (p *Pool[T, R]) Results() <-chan Result[R] {
	return p.results
}

// Collect closes the pool and returns the outputs of n submitted jobs in
// submission order. Outputs of skipped jobs keep the zero value.
func (p *Pool[T, R]) Collect(n int) []R {
	go p.Close()
	out := make([]R, n)
	for r := range p.results {
		out[r.Index] = r.Output
	}
	return out
}

// NumWorkers returns the number of goroutines.
func (p *Pool[T, R]) NumWorkers() int {
	return p.workers
}
