package minify_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shrink/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestStage_SubmitsAllArtifactsConcurrently(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, m := setupStageTest(t)
		release := make(chan struct{})
		var inFlight atomic.Int32

		m.provider.EXPECT().Acquire(gomock.Any()).Return(m.pool, nil)
		m.pool.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, code string, _ domain.MinifyOptions) (domain.MinifyOutput, error) {
				inFlight.Add(1)
				<-release
				return domain.MinifyOutput{Code: fakeMinify(code)}, nil
			},
		).Times(4)

		bundle := domain.Bundle{}
		for _, name := range []string{"a.js", "b.js", "c.js", "d.js"} {
			bundle.Add(domain.NewChunk(name, name))
		}

		_, err := s.Configure(domain.BuildConfig{})
		require.NoError(t, err)

		done := make(chan error, 1)
		go func() {
			done <- s.GenerateBundle(t.Context(), esOutput(), bundle)
		}()

		synctest.Wait()
		assert.Equal(t, int32(4), inFlight.Load(), "every submission must be issued before any settles")

		close(release)
		require.NoError(t, <-done)
		for name, a := range bundle {
			assert.Equal(t, fakeMinify(name), a.Code)
		}
	})
}

func TestStage_FailureAwaitsInFlightSubmissions(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, m := setupStageTest(t)
		release := make(chan struct{})
		var slowCtxErr atomic.Value
		boom := errors.New("parse error")

		m.provider.EXPECT().Acquire(gomock.Any()).Return(m.pool, nil)
		m.pool.EXPECT().Run(gomock.Any(), "bad", gomock.Any()).
			Return(domain.MinifyOutput{}, boom)
		m.pool.EXPECT().Run(gomock.Any(), "slow", gomock.Any()).DoAndReturn(
			func(ctx context.Context, code string, _ domain.MinifyOptions) (domain.MinifyOutput, error) {
				<-release
				slowCtxErr.Store(ctx.Err() == nil)
				return domain.MinifyOutput{Code: fakeMinify(code)}, nil
			},
		)

		bundle := domain.Bundle{}
		bundle.Add(domain.NewChunk("bad.js", "bad"))
		bundle.Add(domain.NewChunk("slow.js", "slow"))

		_, err := s.Configure(domain.BuildConfig{})
		require.NoError(t, err)

		done := make(chan error, 1)
		go func() {
			done <- s.GenerateBundle(t.Context(), esOutput(), bundle)
		}()

		synctest.Wait()
		select {
		case <-done:
			t.Fatal("GenerateBundle returned before every submission settled")
		default:
		}

		close(release)
		require.ErrorIs(t, <-done, boom)
		assert.Equal(t, true, slowCtxErr.Load(), "in-flight submissions must not be cancelled")
		assert.Equal(t, "bad", bundle["bad.js"].Code)
	})
}
