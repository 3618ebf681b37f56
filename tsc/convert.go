package tsc

import "github.com/aknopov/timesurvey/udiv"

// Converter scales cycle counter deltas to milliseconds by integer division
// with a fixed divisor.
type Converter struct {
	cyclesPerMilli uint32
}

// NewConverter creates a converter for a counter running at freqHz cycles per
// second. The divisor is the frequency in cycles per millisecond, rounded
// down once; the resulting constant-factor rounding error grows linearly with
// the delta and is acceptable for a diagnostic display.
func NewConverter(freqHz uint64) Converter {
	return Converter{cyclesPerMilli: uint32(freqHz / 1000)}
}

// Millis converts a cycle delta to elapsed milliseconds. The quotient must
// fit in 32 bits; any delta accumulated over a multi-minute run at realistic
// clock rates does.
func (c Converter) Millis(cycles uint64) uint32 {
	ms, _ := udiv.Div(cycles, c.cyclesPerMilli)
	return ms
}
