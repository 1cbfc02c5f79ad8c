package rank

import "errors"

// ErrUnknownItem is returned by Compare when either item title does not
// exist in the state being queried.
var ErrUnknownItem = errors.New("unknown item")
