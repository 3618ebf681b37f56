package tsc

import (
	"sort"
	"time"
)

const (
	calTrials   = 5
	calInterval = 10 * time.Millisecond
)

// Calibrate measures the actual cycle counter frequency in Hz by timing short
// sleeps against the wall clock, taking the median of a few trials. Blocks
// for about calTrials * calInterval.
func Calibrate() uint64 {
	// Warm up the read path
	Read()
	Read()

	freqs := make([]uint64, calTrials)
	for i := range freqs {
		start := Read()
		t0 := time.Now()
		time.Sleep(calInterval)
		ticks := Read() - start
		elapsed := time.Since(t0)
		freqs[i] = uint64(float64(ticks) / elapsed.Seconds())
	}

	sort.Slice(freqs, func(i, j int) bool { return freqs[i] < freqs[j] })
	return freqs[calTrials/2]
}
