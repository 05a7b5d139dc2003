package logger_test

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shrink/internal/adapters/logger"
)

func newTestHandler(t *testing.T) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}), buf
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{"info level", slog.LevelInfo, "message\n"},
		{"warn level", slog.LevelWarn, "! message\n"},
		{"error level", slog.LevelError, "✗ message\n"},
		{"debug level filtered", slog.LevelDebug, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newTestHandler(t)
			slog.New(h).Log(t.Context(), tt.level, "message")

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	h, buf := newTestHandler(t)

	lg := slog.New(h.WithAttrs([]slog.Attr{slog.String("build", "b1")}).WithGroup("artifact"))
	lg.Info("minified", "name", "main.js")

	assert.Equal(t, "minified build=b1 artifact.name=main.js\n", buf.String())
}

func TestPrettyHandler_NestedGroups(t *testing.T) {
	h, buf := newTestHandler(t)

	lg := slog.New(h.WithGroup("pool").WithAttrs([]slog.Attr{slog.Int("workers", 3)}).WithGroup("job"))
	lg.Warn("slow", "ms", 250)

	assert.Equal(t, "! slow pool.workers=3 pool.job.ms=250\n", buf.String())
}

func TestPrettyHandler_ConcurrentRecordsStayWhole(t *testing.T) {
	h, buf := newTestHandler(t)
	base := slog.New(h)
	derived := slog.New(h.WithAttrs([]slog.Attr{slog.String("artifact", "main.js")}))

	const writers = 16
	var wg sync.WaitGroup
	for i := range writers {
		lg := base
		if i%2 == 1 {
			lg = derived
		}
		wg.Go(func() {
			for range 25 {
				lg.Info("minified")
			}
		})
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, writers*25)
	for _, line := range lines {
		assert.Contains(t, []string{"minified", "minified artifact=main.js"}, line)
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h, _ := newTestHandler(t)

	assert.False(t, h.Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, h.Enabled(t.Context(), slog.LevelWarn))
}
