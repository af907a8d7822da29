package fenwick

// ntz32Const is used by ntz32 and nlz32.
const ntz32Const = 0x04d7651f

// ntz32Table is the de Bruijn lookup table for the trailing/leading-zero
// tricks below. See Henry S. Warren, Jr. "Hacker's Delight" section 5-1,
// figure 5-26.
var ntz32Table = [32]int8{
	0, 1, 2, 24, 3, 19, 6, 25,
	22, 4, 20, 10, 16, 7, 12, 26,
	31, 23, 18, 5, 21, 9, 15, 11,
	30, 17, 8, 14, 29, 13, 28, 27,
}

// nlz32 computes the number of leading zeros of a 32-bit integer.
func nlz32(x uint32) int {
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x++
	if x == 0 {
		return 0
	}
	x *= ntz32Const
	return 32 - int(ntz32Table[x>>27])
}

// highestPowerOfTwoLE returns the largest power of two that is less than or
// equal to n. n must be positive.
func highestPowerOfTwoLE(n int) int {
	return 1 << uint(31-nlz32(uint32(n)))
}
