package esbuild

import (
	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/shrink/internal/core/domain"
)

// FormatFor exposes formatFor for testing.
func FormatFor(opts domain.MinifyOptions) api.Format {
	return formatFor(opts)
}
