package esbuild_test

import (
	"context"
	"strings"
	"testing"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shrink/internal/adapters/esbuild"
	"go.trai.ch/shrink/internal/core/domain"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		name     string
		opts     domain.MinifyOptions
		expected api.Format
	}{
		{name: "module", opts: domain.MinifyOptions{Module: true}, expected: api.FormatESModule},
		{name: "toplevel", opts: domain.MinifyOptions{TopLevel: true}, expected: api.FormatCommonJS},
		{name: "neither", opts: domain.MinifyOptions{}, expected: api.FormatDefault},
		{name: "both prefers module", opts: domain.MinifyOptions{Module: true, TopLevel: true}, expected: api.FormatESModule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, esbuild.FormatFor(tt.opts))
		})
	}
}

func TestMinify_ShrinksCode(t *testing.T) {
	m := esbuild.New()
	code := "function add(first, second) {\n  return first + second;\n}\nconsole.log(add(1, 2));\n"

	out, err := m.Minify(context.Background(), code, domain.MinifyOptions{})

	require.NoError(t, err)
	assert.NotEmpty(t, out.Code)
	assert.Less(t, len(out.Code), len(code))
	assert.NotContains(t, out.Code, "first")
}

func TestMinify_PreservesTopLevelNamesWithoutFormat(t *testing.T) {
	m := esbuild.New()
	code := "var exportedCounter = 1;\nexportedCounter += 1;\n"

	out, err := m.Minify(context.Background(), code, domain.MinifyOptions{})

	require.NoError(t, err)
	assert.Contains(t, out.Code, "exportedCounter")
}

func TestMinify_EmptyInput(t *testing.T) {
	m := esbuild.New()

	out, err := m.Minify(context.Background(), "", domain.MinifyOptions{Module: true})

	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(out.Code))
}

func TestMinify_SyntaxError(t *testing.T) {
	m := esbuild.New()

	_, err := m.Minify(context.Background(), "function (", domain.MinifyOptions{})

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTransformFailed.Error())
}

func TestMinify_CancelledContext(t *testing.T) {
	m := esbuild.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Minify(ctx, "var a = 1;", domain.MinifyOptions{})

	require.ErrorIs(t, err, context.Canceled)
}
