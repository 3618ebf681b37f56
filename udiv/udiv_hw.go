//go:build 386 || amd64 || arm64 || ppc64

package udiv

import "math/bits"

// bits.Div32 lowers to the double-word divide instruction on these targets
// and panics on a zero divisor or quotient overflow, same as the hardware.
func div(dividend uint64, divisor uint32) (uint32, uint32) {
	return bits.Div32(uint32(dividend>>32), uint32(dividend), divisor)
}
