package hashcombine

import (
	"github.com/cespare/xxhash/v2"
	"github.com/mitchellh/hashstructure/v2"
)

type options struct {
	tagName         string
	zeroNil         bool
	ignoreZeroValue bool
	slicesAsSets    bool
	useStringer     bool
}

// Option configures how [Of] and [CombineValues] hash composite values.
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{tagName: "hash"}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithTagName sets the struct tag consulted for field directives such as
// `hash:"ignore"` and `hash:"set"`. Defaults to "hash".
func WithTagName(name string) Option {
	return func(o *options) {
		o.tagName = name
	}
}

// WithZeroNil hashes nil pointers as the zero value of their element type.
func WithZeroNil(enabled bool) Option {
	return func(o *options) {
		o.zeroNil = enabled
	}
}

// WithIgnoreZeroValue skips zero-valued struct fields, so adding a field to a
// struct does not change the hash of values that leave it unset.
func WithIgnoreZeroValue(enabled bool) Option {
	return func(o *options) {
		o.ignoreZeroValue = enabled
	}
}

// WithSlicesAsSets hashes slices independently of element order.
func WithSlicesAsSets(enabled bool) Option {
	return func(o *options) {
		o.slicesAsSets = enabled
	}
}

// WithStringer hashes values implementing fmt.Stringer by their String
// result.
func WithStringer(enabled bool) Option {
	return func(o *options) {
		o.useStringer = enabled
	}
}

func (o *options) hashOptions() *hashstructure.HashOptions {
	return &hashstructure.HashOptions{
		Hasher:          xxhash.New(),
		TagName:         o.tagName,
		ZeroNil:         o.zeroNil,
		IgnoreZeroValue: o.ignoreZeroValue,
		SlicesAsSets:    o.slicesAsSets,
		UseStringer:     o.useStringer,
	}
}
