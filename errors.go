package hashcombine

import "errors"

// ErrUnhashable indicates that a value has no hash: it is not a [Hasher], not
// a scalar, and the structural hasher rejected it (functions, channels and
// similar).
//
// It is wrapped by errors returned from [Of] and [CombineValues].
var ErrUnhashable = errors.New("value is not hashable")
