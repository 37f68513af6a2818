package hashcombine

import (
	"fmt"
	"hash/maphash"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/mitchellh/hashstructure/v2"
)

// Hasher is implemented by types that compute their own hash value, typically
// by passing the hashes of their fields to [Combine].
//
// Hasher is consulted for the value passed to [Hash] or [Of] only. Struct
// fields are hashed by the structural hasher, which instead honors
// [hashstructure.Hashable]; a type used as a field can implement both.
type Hasher interface {
	Hash64() uint64
}

// seed backs the last-resort fallback of [Hash]; results that use it are only
// stable within a single process.
var seed = maphash.MakeSeed()

// Hash returns the hash value of v.
//
// A [Hasher] supplies its own hash. Integers, booleans, floats, complex
// numbers and strings (including named types over them) hash
// deterministically: integers to their bit pattern, floats to their IEEE-754
// bits with -0 folded onto +0, and strings with xxHash64. Other values are
// hashed structurally, field by field. Values the structural hasher cannot
// handle, such as channels, fall back to [maphash.Comparable].
//
// A nil pointer hashes to 0, like a nil interface. Equal scalars always hash
// alike. Hash panics only when T is an interface
// type holding a value that is neither structurally hashable nor comparable.
func Hash[T comparable](v T) uint64 {
	if h, ok := scalar(any(v)); ok {
		return h
	}

	h, err := hashstructure.Hash(v, hashstructure.FormatV2, newOptions(nil).hashOptions())
	if err == nil {
		return h
	}

	return maphash.Comparable(seed, v)
}

// Of returns the hash value of v, which need not be comparable.
//
// Of hashes like [Hash], with byte slices hashed like strings and the
// structural hasher configured by opts. A nil v hashes to 0. Values that
// cannot be hashed return an error wrapping [ErrUnhashable].
func Of(v any, opts ...Option) (uint64, error) {
	return newOptions(opts).of(v)
}

// MustOf is like [Of] but panics if v cannot be hashed.
func MustOf(v any, opts ...Option) uint64 {
	h, err := Of(v, opts...)
	if err != nil {
		panic(err)
	}

	return h
}

func (o *options) of(v any) (uint64, error) {
	if isNil(v) {
		return 0, nil
	}

	if o.useStringer {
		if s, ok := v.(fmt.Stringer); ok {
			if _, ok := v.(Hasher); !ok {
				return xxhash.Sum64String(s.String()), nil
			}
		}
	}

	if h, ok := scalar(v); ok {
		return h, nil
	}

	h, err := hashstructure.Hash(v, hashstructure.FormatV2, o.hashOptions())
	if err != nil {
		return 0, fmt.Errorf("%w: %T: %v", ErrUnhashable, v, err)
	}

	return h, nil
}

// scalar hashes v without walking it. It reports false for composite values.
func scalar(v any) (uint64, bool) {
	if isNil(v) {
		return 0, true
	}

	switch x := v.(type) {
	case Hasher:
		return x.Hash64(), true
	case string:
		return xxhash.Sum64String(x), true
	case []byte:
		return xxhash.Sum64(x), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), true
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}

		return 0, true
	case reflect.Float32, reflect.Float64:
		return floatBits(rv.Float()), true
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()

		return Combine(floatBits(real(c)), floatBits(imag(c))), true
	case reflect.String:
		return xxhash.Sum64String(rv.String()), true
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return xxhash.Sum64(rv.Bytes()), true
		}
	}

	return 0, false
}

// isNil reports whether v is nil or a nil pointer. Methods with value
// receivers must not be called through such a pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func floatBits(f float64) uint64 {
	if f == 0 {
		return 0
	}

	return math.Float64bits(f)
}
