// Package app implements the application layer for shrink.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/shrink/internal/adapters/detector"
	"go.trai.ch/shrink/internal/adapters/linear"
	"go.trai.ch/shrink/internal/adapters/telemetry"
	"go.trai.ch/shrink/internal/adapters/workerpool"
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/shrink/internal/engine/minify"
	"go.trai.ch/zerr"
)

// App drives one host build through the minify stage.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.ArtifactStore
	pools        *workerpool.Provider
	logger       ports.Logger
	getenv       func(string) string
	stderr       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.ArtifactStore,
	pools *workerpool.Provider,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		store:        store,
		pools:        pools,
		logger:       log,
		getenv:       os.Getenv,
		stderr:       os.Stderr,
	}
}

// WithGetenv sets the environment lookup passed to the minify stage.
// This is primarily used for testing.
func (a *App) WithGetenv(getenv func(string) string) *App {
	a.getenv = getenv
	return a
}

// WithOutput sets the writer that receives progress output.
func (a *App) WithOutput(w io.Writer) *App {
	a.stderr = w
	return a
}

// RunOptions configuration for the Build method.
type RunOptions struct {
	// Dir is the directory configuration discovery starts from.
	Dir string
	// Format overrides build.format when set.
	Format string
	// OutDir overrides build.outDir when set. Relative paths resolve against Dir.
	OutDir string
	// Workers overrides minify.workers when positive.
	Workers int
	// NoMinify behaves like build.minify: false.
	NoMinify bool
	// OutputMode is one of auto, pretty, plain, ci, or quiet.
	OutputMode string
	// JSONLogs switches log output to JSON.
	JSONLogs bool
	// MetricsOut is a path to write pool metrics to in Prometheus text format.
	MetricsOut string
	// ReportOut is a path to write the bundle report to as JSON.
	ReportOut string
}

// Build runs the host lifecycle against the configured output directory:
// configure, load the emitted bundle, minify it, save it, and close the stage.
// The stage is closed on every path. When minification fails nothing is saved.
//
//nolint:cyclop // orchestration function
func (a *App) Build(ctx context.Context, opts RunOptions) (err error) {
	if opts.JSONLogs {
		if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
			l.SetJSON(true)
		}
	}

	// 1. Load the project
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	project, err := a.configLoader.Load(dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if err := applyOverrides(project, dir, opts); err != nil {
		return err
	}

	buildID := uuid.NewString()

	// 2. Initialize telemetry
	tracer, shutdown := a.setupTelemetry(opts.OutputMode)
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()

	ctx, span := tracer.Start(ctx, "build", ports.WithAttribute("shrink.build_id", buildID))
	defer span.End()

	// 3. Initialize the stage
	var registry *prometheus.Registry
	var metrics *workerpool.Metrics
	if opts.MetricsOut != "" {
		registry = prometheus.NewRegistry()
		if metrics, err = workerpool.NewMetrics(registry); err != nil {
			return zerr.Wrap(err, domain.ErrMetricsWriteFailed.Error())
		}
	}

	stage := minify.NewStage(
		a.pools.WithWorkers(project.Minify.Workers).WithMetrics(metrics),
		a.logger,
		tracer,
		minify.WithExclusionPolicy(project.Minify.Exclusion),
		minify.WithFailurePolicy(project.Minify.OnError),
		minify.WithGetenv(a.getenv),
	)
	if !stage.AppliesTo(domain.RunModeBuild) {
		return nil
	}

	// 4. Configure; the host keeps the patched config and never minifies itself
	patched, err := stage.Configure(project.Build)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := stage.Close(); closeErr != nil {
			err = errors.Join(err, zerr.Wrap(closeErr, "failed to release worker pool"))
		}
		if registry != nil {
			if writeErr := writeMetrics(opts.MetricsOut, registry); writeErr != nil {
				err = errors.Join(err, writeErr)
			}
		}
	}()

	// 5. Load the emitted bundle
	bundle, err := a.store.Load(patched.OutDir, patched.Ignore)
	if err != nil {
		span.RecordError(err)
		return err
	}

	// 6. Minify
	out := domain.OutputOptions{Format: patched.Format, Dir: patched.OutDir}
	if err := stage.GenerateBundle(ctx, out, bundle); err != nil {
		span.RecordError(err)
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}

	// 7. Save
	report, err := a.store.Save(patched.OutDir, bundle)
	if err != nil {
		span.RecordError(err)
		return err
	}
	report.BuildID = buildID
	applyOutcomes(&report, stage.Outcomes())

	a.summarize(report, stage.ShouldMinify())

	if opts.ReportOut != "" {
		return writeReport(opts.ReportOut, report)
	}
	return nil
}

// setupTelemetry returns the tracer for a build and a function that flushes it.
func (a *App) setupTelemetry(outputMode string) (ports.Tracer, func(context.Context) error) {
	mode := detector.ResolveMode(detector.DetectEnvironment(), outputMode)
	if mode == detector.ModeQuiet {
		return telemetry.NewNoOpTracer(), func(context.Context) error { return nil }
	}

	renderer := linear.NewRendererWithProfile(a.stderr, detector.ColorProfileFor(mode))
	tp := setupOTel(renderer)
	return telemetry.NewOTelTracer("shrink").WithRenderer(renderer), tp.Shutdown
}

// setupOTel configures the OpenTelemetry SDK with the renderer bridge.
func setupOTel(renderer ports.Renderer) *sdktrace.TracerProvider {
	tp := telemetry.NewTracerProvider(renderer)

	// Register it as the global provider so OTelTracer picks it up.
	otel.SetTracerProvider(tp)
	return tp
}

func applyOverrides(project *domain.Project, dir string, opts RunOptions) error {
	if opts.Format != "" {
		format := domain.OutputFormat(opts.Format)
		if !format.IsKnown() {
			return zerr.With(zerr.With(domain.ErrInvalidFormat, "field", "--format"), "value", opts.Format)
		}
		project.Build.Format = format
	}
	if opts.OutDir != "" {
		outDir := opts.OutDir
		if !filepath.IsAbs(outDir) {
			outDir = filepath.Join(dir, outDir)
		}
		project.Build.OutDir = filepath.Clean(outDir)
	}
	if opts.Workers < 0 {
		return zerr.With(zerr.With(domain.ErrInvalidWorkerCount, "field", "--workers"), "value", opts.Workers)
	}
	if opts.Workers > 0 {
		project.Minify.Workers = opts.Workers
	}
	if opts.NoMinify {
		project.Build = project.Build.WithMinify(false)
	}
	return nil
}

func applyOutcomes(report *domain.BundleReport, outcomes []minify.Outcome) {
	status := make(map[string]domain.ArtifactStatus, len(outcomes))
	for _, o := range outcomes {
		status[o.Name] = o.Status
	}
	for i := range report.Artifacts {
		report.Artifacts[i].Status = status[report.Artifacts[i].Name]
	}
}

func (a *App) summarize(report domain.BundleReport, shouldMinify bool) {
	if !shouldMinify {
		a.logger.Info("minification disabled by configuration, output left unchanged")
		return
	}

	minified := 0
	for _, art := range report.Artifacts {
		if !art.Status.IsTransformed() {
			continue
		}
		minified++
		if art.Changed {
			a.logger.Info(fmt.Sprintf("%s: %d → %d bytes", art.Name, art.OriginalSize, art.FinalSize))
		}
	}
	a.logger.Info(fmt.Sprintf("minified %d artifact(s), saved %d bytes (build %s)", minified, report.Saved(), report.BuildID))
}
