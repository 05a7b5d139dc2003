// Package workerpool runs minify jobs on a fixed set of worker goroutines.
package workerpool

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"time"

	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.TransformPool = (*Pool)(nil)

// DefaultWorkers returns the pool size used when none is configured.
func DefaultWorkers() int {
	return max(1, runtime.NumCPU()-1)
}

type job struct {
	ctx   context.Context
	code  string
	opts  domain.MinifyOptions
	reply chan result
}

type result struct {
	out domain.MinifyOutput
	err error
}

// Pool executes minify jobs off the calling goroutine.
type Pool struct {
	minifier ports.Minifier
	metrics  *Metrics
	workers  int

	jobs   chan job
	wg     sync.WaitGroup
	flight singleflight.Group

	mu      sync.RWMutex
	stopped bool
}

// New starts a pool of workers backed by minifier.
// A worker count of zero selects DefaultWorkers.
func New(minifier ports.Minifier, workers int, metrics *Metrics) (*Pool, error) {
	if workers < 0 {
		return nil, zerr.With(domain.ErrInvalidWorkerCount, "workers", workers)
	}
	if workers == 0 {
		workers = DefaultWorkers()
	}

	p := &Pool{
		minifier: minifier,
		metrics:  metrics,
		workers:  workers,
		jobs:     make(chan job),
	}

	p.wg.Add(workers)
	for range workers {
		go p.work()
	}
	return p, nil
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Run executes the transform on a pool worker and waits for its result.
// Identical in-flight submissions share a single execution.
func (p *Pool) Run(ctx context.Context, code string, opts domain.MinifyOptions) (domain.MinifyOutput, error) {
	p.metrics.submitted()

	var executed bool
	ch := p.flight.DoChan(flightKey(code, opts), func() (any, error) {
		executed = true
		return p.submit(ctx, code, opts)
	})

	select {
	case res := <-ch:
		if !executed {
			p.metrics.collapsed()
		}
		if res.Err != nil {
			return domain.MinifyOutput{}, res.Err
		}
		out, _ := res.Val.(domain.MinifyOutput)
		return out, nil
	case <-ctx.Done():
		return domain.MinifyOutput{}, ctx.Err()
	}
}

// Stop closes the queue and waits for every worker to exit.
// Calling Stop more than once is a no-op.
func (p *Pool) Stop() error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	return nil
}

// submit queues a job and waits for its reply while holding the read lock,
// so Stop cannot close the queue underneath a pending send.
func (p *Pool) submit(ctx context.Context, code string, opts domain.MinifyOptions) (domain.MinifyOutput, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return domain.MinifyOutput{}, domain.ErrPoolStopped
	}

	reply := make(chan result, 1)
	select {
	case p.jobs <- job{ctx: ctx, code: code, opts: opts, reply: reply}:
	case <-ctx.Done():
		return domain.MinifyOutput{}, ctx.Err()
	}

	select {
	case r := <-reply:
		return r.out, r.err
	case <-ctx.Done():
		return domain.MinifyOutput{}, ctx.Err()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()

	for j := range p.jobs {
		p.metrics.started()
		start := time.Now()
		out, err := p.execute(j)
		p.metrics.finished(time.Since(start), err)

		j.reply <- result{out: out, err: err}
	}
}

func (p *Pool) execute(j job) (out domain.MinifyOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(domain.ErrMinifierPanicked, "panic", fmt.Sprint(r))
		}
	}()

	return p.minifier.Minify(j.ctx, j.code, j.opts)
}

// flightKey identifies a submission by its options and its full code.
func flightKey(code string, opts domain.MinifyOptions) string {
	return strconv.FormatBool(opts.Module) + ":" + strconv.FormatBool(opts.TopLevel) + ":" + code
}
