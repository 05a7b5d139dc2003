package workerpool

import (
	"context"

	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PoolProvider = (*Provider)(nil)

// Provider creates a new Pool for every Acquire.
type Provider struct {
	minifier ports.Minifier
	workers  int
	metrics  *Metrics
}

// NewProvider creates a Provider. Workers of zero selects DefaultWorkers.
func NewProvider(minifier ports.Minifier, workers int, metrics *Metrics) *Provider {
	return &Provider{minifier: minifier, workers: workers, metrics: metrics}
}

// WithWorkers returns a copy of the provider using the given worker count.
func (p *Provider) WithWorkers(workers int) *Provider {
	clone := *p
	clone.workers = workers
	return &clone
}

// WithMetrics returns a copy of the provider recording into metrics.
func (p *Provider) WithMetrics(metrics *Metrics) *Provider {
	clone := *p
	clone.metrics = metrics
	return &clone
}

// Acquire starts a new pool. The caller owns it and must Stop it.
func (p *Provider) Acquire(ctx context.Context) (ports.TransformPool, error) {
	if err := ctx.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrPoolAcquireFailed.Error())
	}

	pool, err := New(p.minifier, p.workers, p.metrics)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPoolAcquireFailed.Error())
	}
	return pool, nil
}
