// Package timesurvey runs a bounded survey of three independent platform
// timer sources - a frequency-scaled performance counter, a millisecond tick
// counter and the raw CPU cycle counter - redrawing their elapsed-time
// readings once per sampling step. Divergence between the three displayed
// deltas reveals clock drift, rollover or frequency-scaling bugs.
package timesurvey

import (
	"time"

	"github.com/aknopov/timesurvey/clocks"
	"github.com/aknopov/timesurvey/tsc"
)

// Default sampling cadence, in milliseconds.
const (
	DefaultStep uint64 = 1000
	DefaultEnd  uint64 = 315000
)

const (
	perfLabel = "Performance Counter"
	tickLabel = "Tick Counter"
	tscLabel  = "Time Stamp Counter"

	labelWidth = len(perfLabel)
)

// Config fixes the run parameters of one survey.
type Config struct {
	Step    uint64 // sampling step in ms
	End     uint64 // total run duration in ms, ignored when Forever
	Forever bool   // keep sampling until the process is killed
}

// Survey holds the shared baseline and scaling factors of one run. All deltas
// of a run are measured against the same baseline instant, so any divergence
// between them is real clock disagreement, not sampling skew.
type Survey struct {
	cfg      Config
	conv     tsc.Converter
	display  Display
	perfFreq uint64 // performance counter ticks per millisecond
	base     clocks.Sample
}

// Function substitution for unit tests
var sleepF = func(ms uint64) { time.Sleep(time.Duration(ms) * time.Millisecond) }

// NewSurvey captures the baseline readings of all three sources and the
// performance counter frequency, scaled once to ticks per millisecond.
func NewSurvey(cfg Config, conv tsc.Converter, display Display) *Survey {
	return &Survey{
		cfg:      cfg,
		conv:     conv,
		display:  display,
		perfFreq: clocks.PerfFrequency() / 1000,
		base:     clocks.Now(),
	}
}

// Run re-reads the sources, displays the elapsed milliseconds per source and
// sleeps, once per step, until the configured duration is covered.
//
// All arithmetic is unsigned with no wraparound guard: a counter wrapping or
// running backwards shows up as a huge displayed delta. Accepted for runs
// well under the counters' rollover horizon.
func (s *Survey) Run() {
	for elapsed := uint64(0); s.cfg.Forever || elapsed < s.cfg.End; elapsed += s.cfg.Step {
		cur := clocks.Now()

		perfDelta := (cur.Perf - s.base.Perf) / s.perfFreq
		ticksDelta := cur.Ticks - s.base.Ticks
		tscDelta := s.conv.Millis(cur.TSC - s.base.TSC)

		s.display.Clear()
		s.display.Printf("%*s: %d ms elapsed\n", labelWidth, perfLabel, perfDelta)
		s.display.Printf("%*s: %d ms elapsed\n", labelWidth, tickLabel, ticksDelta)
		s.display.Printf("%*s: %d ms elapsed\n", labelWidth, tscLabel, tscDelta)
		s.display.Printf("\n")

		sleepF(s.cfg.Step)
	}
}
