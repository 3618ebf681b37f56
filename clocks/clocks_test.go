package clocks

import (
	"testing"

	"github.com/aknopov/timesurvey/mocker"
	"github.com/stretchr/testify/assert"
)

func TestSourcesMonotonic(t *testing.T) {
	assertT := assert.New(t)

	s1 := Now()
	s2 := Now()
	assertT.GreaterOrEqual(s2.Perf, s1.Perf)
	assertT.GreaterOrEqual(s2.Ticks, s1.Ticks)
	assertT.GreaterOrEqual(s2.TSC, s1.TSC)
}

func TestPerfFrequencyStatic(t *testing.T) {
	assertT := assert.New(t)

	freq := PerfFrequency()
	assertT.Greater(freq, uint64(0))
	assertT.Equal(freq, PerfFrequency())
}

func TestNowReadsSubstitutedSources(t *testing.T) {
	var r mocker.Restorer
	defer r.Restore()
	r.Add(mocker.ReplaceItem(&PerfCount, func() uint64 { return 1 }))
	r.Add(mocker.ReplaceItem(&TickCount, func() uint64 { return 2 }))
	r.Add(mocker.ReplaceItem(&CycleCount, func() uint64 { return 3 }))

	assert.Equal(t, Sample{Perf: 1, Ticks: 2, TSC: 3}, Now())
}
