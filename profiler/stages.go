// Package profiler times the stages of a single combine run.
package profiler

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Stage is the measured duration of one named step.
type Stage struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration"`
}

// StageTimer records stage durations in the order the stages finish.
//
// It is safe for concurrent use, although a run only ever times stages
// from a single goroutine.
type StageTimer struct {
	mu     sync.Mutex
	stages []Stage
}

// NewStageTimer creates an empty StageTimer.
func NewStageTimer() *StageTimer {
	return &StageTimer{}
}

// StartOperation begins timing a stage.
//
// Arguments:
// - name: The name of the stage to track
//
// Returns:
// - A function to call when the stage completes
func (st *StageTimer) StartOperation(name string) func() {
	start := time.Now()
	return func() {
		st.record(name, time.Since(start))
	}
}

func (st *StageTimer) record(name string, duration time.Duration) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.stages = append(st.stages, Stage{Name: name, Duration: duration})
}

// Stages returns a copy of the recorded stages.
func (st *StageTimer) Stages() []Stage {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]Stage, len(st.stages))
	copy(out, st.stages)
	return out
}

// Names returns the recorded stage names in completion order.
func (st *StageTimer) Names() []string {
	stages := st.Stages()
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = s.Name
	}
	return names
}

// Total returns the sum of all recorded durations.
func (st *StageTimer) Total() time.Duration {
	var total time.Duration
	for _, s := range st.Stages() {
		total += s.Duration
	}
	return total
}

// Log writes one debug line per stage and a total.
func (st *StageTimer) Log(logger *zap.Logger) {
	for _, s := range st.Stages() {
		logger.Debug("stage finished", zap.String("stage", s.Name), zap.Duration("duration", s.Duration))
	}
	logger.Debug("all stages finished", zap.Duration("total", st.Total()))
}

// FormatBytes formats byte counts in human-readable format, e.g. the size of
// the encoded output image reported when a run finishes.
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
