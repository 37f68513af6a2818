// Package hashcombine combines hash values into a single well-mixed hash.
//
// It is meant for deriving the hash of a composite value from the hashes of
// its parts:
//
//	func (p Point) Hash64() uint64 {
//		return hashcombine.Combine(
//			hashcombine.Hash(p.X),
//			hashcombine.Hash(p.Y),
//		)
//	}
//
// # Mixing
//
// [Combine] passes every hash except the last through [Mix], the rrxmxmx
// finalizer, and XORs the results. Unlike XOR or boost-style combinators this
// spreads each input over all output bits, so structured inputs do not cancel
// each other out, and swapping two inputs changes the result.
//
// [Mix] is a bijection on uint64 with inverse [Unmix].
//
// # Hashing values
//
// [Hash] is the uniform way to obtain a hash for a comparable value, and [Of]
// handles values that are not comparable, such as slices and maps. Both honor
// the [Hasher] interface.
//
// None of the hashes in this package are suitable for cryptographic use or
// resistant to adversarial input.
package hashcombine
