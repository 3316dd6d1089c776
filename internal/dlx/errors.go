package dlx

import "errors"

// ErrInternal marks an invariant breach that should be unreachable given a
// well-formed cover encoding: an empty row, a sentinel or out-of-universe
// column, or a solution index preceding the first row in the row table.
var ErrInternal = errors.New("dlx: internal invariant breach")
