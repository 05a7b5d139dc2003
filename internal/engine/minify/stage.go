// Package minify implements the selective minify stage of the bundler pipeline.
//
// The host must call the hooks in order: Configure before code generation,
// GenerateBundle once after every chunk has been generated and before the build
// is finalized, and Close at the end of the build on success and failure alike.
// Calls out of order fail with ErrStageNotConfigured or ErrStageClosed.
package minify

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Outcome records what GenerateBundle did with one artifact.
type Outcome struct {
	Name   string
	Status domain.ArtifactStatus
	Err    error
}

// Stage disables host minification and minifies qualifying chunks itself.
// A Stage is not safe for concurrent use; one goroutine drives its hooks.
type Stage struct {
	pools   ports.PoolProvider
	logger  ports.Logger
	tracer  ports.Tracer
	policy  domain.ExclusionPolicy
	getenv  func(string) string
	onError domain.FailurePolicy

	phase        Phase
	shouldMinify bool
	pool         ports.TransformPool
	outcomes     []Outcome
}

// NewStage creates a Stage that acquires its pool from pools on first use.
func NewStage(pools ports.PoolProvider, log ports.Logger, tracer ports.Tracer, opts ...Option) *Stage {
	s := &Stage{
		pools:        pools,
		logger:       log,
		tracer:       tracer,
		policy:       domain.DefaultExclusionPolicy(),
		getenv:       os.Getenv,
		onError:      domain.FailFast,
		shouldMinify: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the name the stage is registered under.
func (s *Stage) Name() string {
	return domain.StageName
}

// AppliesTo reports whether the stage takes part in the given run mode.
func (s *Stage) AppliesTo(mode domain.RunMode) bool {
	return mode == domain.RunModeBuild
}

// Phase returns the current lifecycle phase.
func (s *Stage) Phase() Phase {
	return s.phase
}

// ShouldMinify reports whether qualifying chunks will be minified.
func (s *Stage) ShouldMinify() bool {
	return s.shouldMinify
}

// Outcomes returns the per-artifact results of the last GenerateBundle, in name order.
func (s *Stage) Outcomes() []Outcome {
	out := make([]Outcome, len(s.outcomes))
	copy(out, s.outcomes)
	return out
}

// Configure records an explicit user opt-out and returns cfg with host
// minification forced off, so this stage is the only minifier.
func (s *Stage) Configure(cfg domain.BuildConfig) (domain.BuildConfig, error) {
	if s.phase == PhaseClosed {
		return domain.BuildConfig{}, domain.ErrStageClosed
	}

	if cfg.MinifyExplicitlyDisabled() {
		s.shouldMinify = false
	}
	if s.phase == PhaseUnconfigured {
		s.phase = PhaseConfigured
	}

	return cfg.WithMinify(false), nil
}

// GenerateBundle minifies every qualifying chunk of bundle in place.
// All submissions run concurrently and the call returns once each has settled.
// Under the fail-fast policy the first transform failure fails the call;
// the remaining submissions are awaited but not cancelled.
func (s *Stage) GenerateBundle(ctx context.Context, out domain.OutputOptions, bundle domain.Bundle) error {
	switch s.phase {
	case PhaseUnconfigured:
		return domain.ErrStageNotConfigured
	case PhaseClosed:
		return domain.ErrStageClosed
	}

	ctx, span := s.tracer.Start(ctx, "minify bundle",
		ports.WithAttribute("shrink.format", string(out.Format)),
		ports.WithAttribute("shrink.artifacts", len(bundle)),
	)
	defer span.End()

	pool, err := s.acquire(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	names := bundle.Names()
	s.outcomes = make([]Outcome, len(names))

	planned := make([]string, 0, len(names))
	for i, name := range names {
		s.outcomes[i] = Outcome{Name: name, Status: s.classify(name, bundle[name])}
		if s.outcomes[i].Status == "" {
			planned = append(planned, name)
		}
	}
	s.tracer.EmitPlan(ctx, planned)

	opts := domain.OptionsForFormat(out.Format)

	var g errgroup.Group
	for i, name := range names {
		if s.outcomes[i].Status != "" {
			continue
		}
		artifact := bundle[name]
		outcome := &s.outcomes[i]
		g.Go(func() error {
			return s.minifyArtifact(ctx, pool, artifact, opts, outcome)
		})
	}

	err = g.Wait()
	s.reportKept()
	if err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Close releases the pool if one was acquired. Calling it again is a no-op.
func (s *Stage) Close() error {
	if s.phase == PhaseClosed {
		return nil
	}
	s.phase = PhaseClosed
	return s.release()
}

// Reset releases any pool and returns the stage to PhaseUnconfigured,
// so the same instance can serve another build.
func (s *Stage) Reset() error {
	err := s.release()
	s.phase = PhaseUnconfigured
	s.shouldMinify = true
	s.outcomes = nil
	return err
}

func (s *Stage) acquire(ctx context.Context) (ports.TransformPool, error) {
	if s.pool != nil {
		return s.pool, nil
	}

	pool, err := s.pools.Acquire(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPoolAcquireFailed.Error())
	}
	s.pool = pool
	s.phase = PhasePoolCreated
	return pool, nil
}

func (s *Stage) release() error {
	if s.pool == nil {
		return nil
	}
	pool := s.pool
	s.pool = nil
	return pool.Stop()
}

// classify returns the status of an artifact that must be left untouched,
// or an empty status when the artifact qualifies for minification.
func (s *Stage) classify(name string, artifact *domain.Artifact) domain.ArtifactStatus {
	switch {
	case !s.shouldMinify:
		return domain.StatusDisabled
	case s.policy.Excludes(name, s.getenv):
		return domain.StatusExcluded
	case !artifact.HasCode():
		return domain.StatusSkipped
	default:
		return ""
	}
}

// minifyArtifact runs on its own goroutine and touches only its artifact and outcome.
func (s *Stage) minifyArtifact(
	ctx context.Context,
	pool ports.TransformPool,
	artifact *domain.Artifact,
	opts domain.MinifyOptions,
	outcome *Outcome,
) error {
	ctx, span := s.tracer.Start(ctx, "minify "+artifact.Name,
		ports.WithAttribute("shrink.artifact", artifact.Name),
		ports.WithAttribute("shrink.size", len(artifact.Code)),
	)
	defer span.End()

	res, err := pool.Run(ctx, artifact.Code, opts)
	if err != nil {
		err = zerr.With(err, "artifact", artifact.Name)
		span.RecordError(err)
		outcome.Status = domain.StatusFailed
		outcome.Err = err
		if s.onError == domain.KeepOriginal {
			return nil
		}
		return err
	}

	artifact.Code = res.Code
	outcome.Status = domain.StatusMinified
	span.SetAttribute("shrink.minified_size", len(res.Code))
	return nil
}

// reportKept warns about artifacts left unminified under the keep policy.
func (s *Stage) reportKept() {
	if s.onError != domain.KeepOriginal {
		return
	}
	for _, o := range s.outcomes {
		if o.Status == domain.StatusFailed {
			s.logger.Warn(fmt.Sprintf("keeping %s unminified: %v", o.Name, o.Err))
		}
	}
}
