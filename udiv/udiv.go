// Package udiv divides an unsigned 64-bit dividend by a 32-bit divisor,
// producing a 32-bit quotient and remainder - the operation of the x86
// double-word divide instruction.
package udiv

// Div returns the quotient and remainder of dividend / divisor.
//
// The caller must ensure the true quotient fits in 32 bits. A zero divisor or
// an oversized quotient panics, just as the hardware instruction faults;
// neither condition is reported as a recoverable error.
func Div(dividend uint64, divisor uint32) (uint32, uint32) {
	return div(dividend, divisor)
}

// divLong is the portable shift-and-subtract rendering of the double-word
// divide, used on targets without the hardware instruction. Keeps the fault
// conditions of the hardware path.
func divLong(dividend uint64, divisor uint32) (uint32, uint32) {
	if divisor == 0 {
		panic("udiv: division by zero")
	}
	if uint32(dividend>>32) >= divisor {
		panic("udiv: quotient overflow")
	}

	// The high half is already a valid partial remainder since it is less
	// than the divisor; fold in the low half one bit at a time.
	rem := dividend >> 32
	var quo uint32
	for i := 31; i >= 0; i-- {
		rem = rem<<1 | (dividend>>uint(i))&1
		if rem >= uint64(divisor) {
			rem -= uint64(divisor)
			quo |= 1 << uint(i)
		}
	}
	return quo, uint32(rem)
}
