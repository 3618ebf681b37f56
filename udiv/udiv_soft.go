//go:build !386 && !amd64 && !arm64 && !ppc64

package udiv

func div(dividend uint64, divisor uint32) (uint32, uint32) {
	return divLong(dividend, divisor)
}
