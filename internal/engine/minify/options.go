package minify

import "go.trai.ch/shrink/internal/core/domain"

// Option configures a Stage.
type Option func(*Stage)

// WithExclusionPolicy replaces the default logic.js protection.
func WithExclusionPolicy(policy domain.ExclusionPolicy) Option {
	return func(s *Stage) {
		s.policy = policy
	}
}

// WithGetenv sets the lookup used for the exclusion override variable.
func WithGetenv(getenv func(string) string) Option {
	return func(s *Stage) {
		if getenv != nil {
			s.getenv = getenv
		}
	}
}

// WithFailurePolicy sets how transform failures are handled.
func WithFailurePolicy(policy domain.FailurePolicy) Option {
	return func(s *Stage) {
		if policy != "" {
			s.onError = policy
		}
	}
}
