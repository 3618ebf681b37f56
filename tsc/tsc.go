// Package tsc reads the CPU time stamp counter and scales cycle deltas to
// milliseconds.
package tsc

import "math"

// DefaultFrequencyHz is the cycle counter rate of the 733.333 MHz reference
// part, used when no better frequency source is available.
const DefaultFrequencyHz uint64 = 733333333

const ovhdCnt = 10000

// Read returns the current value of the free-running cycle counter.
func Read() uint64 {
	return read()
}

// ReadOverhead estimates the cost of a single Read in counter units as the
// minimum delta over back-to-back reads.
// See https://community.intel.com/t5/Intel-ISA-Extensions/Measure-the-execution-time-using-RDTSC/td-p/1365538
func ReadOverhead() uint64 {
	ovhd := uint64(math.MaxUint64)

	for i := 0; i < ovhdCnt; i++ {
		cnt0 := Read()
		delta := Read() - cnt0
		if delta < ovhd {
			ovhd = delta
		}
	}

	return ovhd
}
