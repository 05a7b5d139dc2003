// Package esbuild implements ports.Minifier on top of the esbuild transform API.
package esbuild

import (
	"context"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Minifier = (*Minifier)(nil)

// Minifier minifies JavaScript chunks with esbuild.
type Minifier struct{}

// New creates a new Minifier.
func New() *Minifier {
	return &Minifier{}
}

// Minify transforms code with whitespace, identifier, and syntax minification enabled.
func (m *Minifier) Minify(ctx context.Context, code string, opts domain.MinifyOptions) (domain.MinifyOutput, error) {
	if err := ctx.Err(); err != nil {
		return domain.MinifyOutput{}, err
	}

	result := api.Transform(code, transformOptions(opts))
	if len(result.Errors) > 0 {
		return domain.MinifyOutput{}, transformError(result.Errors)
	}

	return domain.MinifyOutput{Code: string(result.Code)}, nil
}

func transformOptions(opts domain.MinifyOptions) api.TransformOptions {
	return api.TransformOptions{
		Loader:            api.LoaderJS,
		Format:            formatFor(opts),
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		LogLevel:          api.LogLevelSilent,
	}
}

// formatFor maps the derived options onto an esbuild output format.
// Module scope wins over top-level mangling when both are set.
func formatFor(opts domain.MinifyOptions) api.Format {
	switch {
	case opts.Module:
		return api.FormatESModule
	case opts.TopLevel:
		return api.FormatCommonJS
	default:
		return api.FormatDefault
	}
}

func transformError(msgs []api.Message) error {
	first := msgs[0]
	err := zerr.With(domain.ErrTransformFailed, "text", first.Text)
	if loc := first.Location; loc != nil {
		err = zerr.With(err, "line", loc.Line)
		err = zerr.With(err, "column", loc.Column)
	}
	if len(msgs) > 1 {
		err = zerr.With(err, "errors", len(msgs))
	}
	return err
}
