// Package clocks exposes the three surveyed timer sources behind swappable
// query functions.
//
// The performance counter is the process monotonic clock in nanoseconds. The
// tick counter reads the wall clock in whole milliseconds - deliberately a
// different mechanism, so that divergence between the two is observable. The
// cycle counter comes from the tsc package. Each query is a single
// unsynchronized read of a monotonically advancing value; a stale read is at
// worst one increment behind.
package clocks

import (
	"time"

	"github.com/aknopov/timesurvey/tsc"
)

// Sample holds the raw readings of all three sources at one instant.
type Sample struct {
	Perf  uint64
	Ticks uint64
	TSC   uint64
}

// The performance counter rate is static for the life of the process.
const perfHz uint64 = 1000000000

var procStart = time.Now()

// Function substitutions for unit tests
var (
	PerfCount     = func() uint64 { return uint64(time.Since(procStart).Nanoseconds()) }
	PerfFrequency = func() uint64 { return perfHz }
	TickCount     = func() uint64 { return uint64(time.Now().UnixMilli()) }
	CycleCount    = tsc.Read
)

// Now captures all three sources as close together as possible. Readings
// within one Sample still happen in sequence; the skew is bounded by the cost
// of the queries themselves.
func Now() Sample {
	return Sample{Perf: PerfCount(), Ticks: TickCount(), TSC: CycleCount()}
}
