package hashcombine

// rrxmxmx constants. mixMul is odd, so multiplication by it is invertible
// modulo 2^64 and mixInv is its inverse.
const (
	mixMul = uint64(0x9fb21c651e98df25)
	mixInv = uint64(0x02ab9c720d1024ad)

	mixShift = 28
)

// Mix applies the rrxmxmx finalizer to v.
//
// Every output bit depends on every input bit, and a single flipped input bit
// changes about half of the output bits on average. Mix is a bijection on
// uint64; [Unmix] is its inverse. Mix(0) == 0.
func Mix(v uint64) uint64 {
	v = rotxor(v)
	v *= mixMul
	v ^= v >> mixShift
	v *= mixMul

	return v ^ v>>mixShift
}

// Unmix returns the x for which Mix(x) == v.
func Unmix(v uint64) uint64 {
	v = unxorshift(v)
	v *= mixInv
	v = unxorshift(v)
	v *= mixInv

	// rotxor is a linear map over GF(2) whose 64th power is the identity,
	// so applying it 63 more times undoes it.
	for range 63 {
		v = rotxor(v)
	}

	return v
}

func rotxor(v uint64) uint64 {
	return v ^ rotr(v, 49) ^ rotr(v, 24)
}

// unxorshift inverts v ^= v >> mixShift.
func unxorshift(v uint64) uint64 {
	return v ^ v>>mixShift ^ v>>(2*mixShift)
}

// rotr rotates word right by shift bits. The shift is taken modulo 64.
func rotr(word uint64, shift uint) uint64 {
	return word>>(shift&63) | word<<(-shift&63)
}
