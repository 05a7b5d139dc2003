// Package linear provides a synchronous, line-oriented progress renderer.
package linear

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/shrink/internal/ui/output"
	"go.trai.ch/shrink/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer with chronological, prefixed log lines.
type Renderer struct {
	out    io.Writer
	output *termenv.Output

	mu    sync.Mutex
	tasks map[string]*taskState // spanID -> task state
}

type taskState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a new Renderer writing to w (stderr when nil) with basic ANSI colours.
func NewRenderer(w io.Writer) *Renderer {
	return NewRendererWithProfile(w, output.ColorProfileANSI)
}

// NewRendererWithProfile creates a new Renderer using profileFn to pick colours.
func NewRendererWithProfile(w io.Writer, profileFn func() termenv.Profile) *Renderer {
	if w == nil {
		w = os.Stderr
	}

	return &Renderer{
		out:    w,
		output: output.NewWithProfile(w, profileFn),
		tasks:  make(map[string]*taskState),
	}
}

// OnPlanEmit prints the artifacts about to be minified.
func (r *Renderer) OnPlanEmit(artifacts []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.out, "Minifying %d artifact(s)\n", len(artifacts))
}

// OnTaskStart records the start of a unit of work.
func (r *Renderer) OnTaskStart(spanID, _ /* parentID */, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[spanID] = &taskState{name: name, startTime: startTime}
}

// OnTaskComplete prints the completion status of a unit of work.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}
	delete(r.tasks, spanID)

	duration := endTime.Sub(task.startTime).Round(time.Millisecond)
	prefix := r.output.String(fmt.Sprintf("[%s]", task.name)).Faint().String()

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.out, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
		return
	}

	symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.out, "%s %s Completed in %v\n", prefix, symbol, duration)
}

// Flush reports any work that started but never completed.
func (r *Renderer) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.tasks))
	for id, task := range r.tasks {
		names = append(names, task.name)
		delete(r.tasks, id)
	}
	slices.Sort(names)

	for _, name := range names {
		_, _ = fmt.Fprintf(r.out, "[%s] Interrupted\n", name)
	}
	return nil
}
