package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shrink/internal/core/domain"
)

func TestOptionsForFormat(t *testing.T) {
	tests := []struct {
		format domain.OutputFormat
		want   domain.MinifyOptions
	}{
		{"es", domain.MinifyOptions{Module: true}},
		{"esm", domain.MinifyOptions{Module: true}},
		{"es2015", domain.MinifyOptions{Module: true}},
		{"cjs", domain.MinifyOptions{TopLevel: true}},
		{"commonjs", domain.MinifyOptions{}},
		{"iife", domain.MinifyOptions{}},
		{"umd", domain.MinifyOptions{}},
		{"", domain.MinifyOptions{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, domain.OptionsForFormat(tt.format))
		})
	}
}

func TestOutputFormat_IsKnown(t *testing.T) {
	assert.True(t, domain.FormatES.IsKnown())
	assert.True(t, domain.FormatCJS.IsKnown())
	assert.False(t, domain.OutputFormat("amd").IsKnown())
}

func TestBuildConfig_Minify(t *testing.T) {
	var cfg domain.BuildConfig
	assert.False(t, cfg.MinifyExplicitlyDisabled(), "unset flag defaults to enabled")

	enabled := cfg.WithMinify(true)
	assert.False(t, enabled.MinifyExplicitlyDisabled())

	disabled := cfg.WithMinify(false)
	assert.True(t, disabled.MinifyExplicitlyDisabled())
	assert.Nil(t, cfg.Minify, "WithMinify must not mutate the receiver")
}

func TestParseFailurePolicy(t *testing.T) {
	p, err := domain.ParseFailurePolicy("")
	require.NoError(t, err)
	assert.Equal(t, domain.FailFast, p)

	p, err = domain.ParseFailurePolicy("KEEP")
	require.NoError(t, err)
	assert.Equal(t, domain.KeepOriginal, p)

	_, err = domain.ParseFailurePolicy("retry")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidFailurePolicy.Error())
}
