// Package observ measures how long each evaluation stage takes.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Stage names recorded by the driver.
const (
	StageTokenize = "tokenize"
	StagePostfix  = "postfix"
	StageEvaluate = "evaluate"
)

// Stage is one measured step of a run.
type Stage struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer collects stage durations for a single run. Not safe for concurrent use.
type Timer struct {
	stages []Stage
}

func NewTimer() *Timer { return &Timer{stages: make([]Stage, 0, 3)} }

// Begin starts a stage and returns its index for End.
func (t *Timer) Begin(name string) int {
	t.stages = append(t.stages, Stage{Name: name, Start: time.Now()})
	return len(t.stages) - 1
}

// End closes the stage at idx. Out-of-range indexes are ignored.
func (t *Timer) End(idx int, note string) time.Duration {
	if idx < 0 || idx >= len(t.stages) {
		return 0
	}
	s := &t.stages[idx]
	s.Dur = time.Since(s.Start)
	s.Note = note
	return s.Dur
}

// StageReport is the serializable view of one stage.
type StageReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

type Report struct {
	TotalMS float64       `json:"total_ms"`
	Stages  []StageReport `json:"stages"`
}

// Report snapshots the recorded stages in the order they began.
func (t *Timer) Report() Report {
	if len(t.stages) == 0 {
		return Report{}
	}
	r := Report{Stages: make([]StageReport, len(t.stages))}
	var total time.Duration
	for i, s := range t.stages {
		total += s.Dur
		r.Stages[i] = StageReport{Name: s.Name, DurationMS: millis(s.Dur), Note: s.Note}
	}
	r.TotalMS = millis(total)
	return r
}

// Lookup returns the report for the named stage.
func (r Report) Lookup(name string) (StageReport, bool) {
	for _, s := range r.Stages {
		if s.Name == name {
			return s, true
		}
	}
	return StageReport{}, false
}

// Summary renders the report as an aligned table.
func (r Report) Summary() string {
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, s := range r.Stages {
		fmt.Fprintf(&b, "  %-10s %9.3f ms", s.Name, s.DurationMS)
		if s.Note != "" {
			b.WriteString("  // " + s.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-10s %9.3f ms\n", "total", r.TotalMS)
	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
