//go:build amd64

package tsc

// rdtsc returns the two 32-bit halves of the time stamp counter as the
// instruction reports them. Implemented in tsc_amd64.s.
//
//go:noescape
func rdtsc() (hi, lo uint32)

func read() uint64 {
	hi, lo := rdtsc()
	return uint64(hi)<<32 | uint64(lo)
}
