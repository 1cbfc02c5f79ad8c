package core

import "errors"

// ErrNoDSLContent is a non-error outcome: the submission parsed cleanly but
// contained no recognizable DSL statements. Callers should treat this
// distinctly from a failure (e.g. reply differently over the transport).
var ErrNoDSLContent = errors.New("submission contains no dsl content")
