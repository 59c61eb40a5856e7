// Package log tracks the stages of a ranking run so their durations land
// in the structured log as one breakdown event.
package log

import (
	"time"

	"github.com/rs/zerolog/log"
)

// StageTime is the recorded duration of one completed stage.
type StageTime struct {
	Name     string
	Duration time.Duration
}

// StageTimer times the stages of a run. Stages run strictly one after
// another; opening a stage closes the previous one.
type StageTimer struct {
	run     string
	current string
	start   time.Time
	began   time.Time
	stages  []StageTime
}

// NewStageTimer starts timing a run.
func NewStageTimer(run string) *StageTimer {
	now := time.Now()
	return &StageTimer{run: run, began: now, start: now}
}

// Stage closes the current stage, if any, and opens a new one.
func (t *StageTimer) Stage(name string) {
	t.close()
	t.current = name
	t.start = time.Now()
	log.Debug().Str("run", t.run).Str("stage", name).Msg("Stage started")
}

// Finish closes the last stage, logs the per-stage breakdown and returns
// the total elapsed time.
func (t *StageTimer) Finish() time.Duration {
	t.close()
	total := time.Since(t.began)

	event := log.Debug().Str("run", t.run).Dur("total", total)
	for _, s := range t.stages {
		event = event.Dur(s.Name, s.Duration)
	}
	event.Msg("Run completed")

	return total
}

// Stages returns the completed stage durations in execution order.
func (t *StageTimer) Stages() []StageTime {
	out := make([]StageTime, len(t.stages))
	copy(out, t.stages)
	return out
}

func (t *StageTimer) close() {
	if t.current == "" {
		return
	}
	t.stages = append(t.stages, StageTime{Name: t.current, Duration: time.Since(t.start)})
	t.current = ""
}
