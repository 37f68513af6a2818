package hashcombine

import "fmt"

// Combine folds hashes, in order, into a single hash value.
//
// Combine() is 0 and Combine(h) is h. For more values every hash except the
// last is passed through [Mix] and the results are XORed together with the
// last hash, so
//
//	Combine(a, b, c) == Mix(a) ^ Mix(b) ^ c
//
// The result depends on the order of hashes.
func Combine(hashes ...uint64) uint64 {
	n := len(hashes)
	if n == 0 {
		return 0
	}

	h := hashes[n-1]
	for i := n - 2; i >= 0; i-- {
		h ^= Mix(hashes[i])
	}

	return h
}

// CombineValues hashes each of values with [Of] and combines the results with
// [Combine].
func CombineValues(values []any, opts ...Option) (uint64, error) {
	o := newOptions(opts)
	hashes := make([]uint64, len(values))
	for i, v := range values {
		h, err := o.of(v)
		if err != nil {
			return 0, fmt.Errorf("value %d: %w", i, err)
		}

		hashes[i] = h
	}

	return Combine(hashes...), nil
}
