package hull

import "errors"

// ErrUnsupportedKind is returned by For when the item variant has no hull
// construction rule (joints and diff-pairs are not independently hulled).
var ErrUnsupportedKind = errors.New("hull: unsupported item kind")
