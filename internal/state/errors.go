package state

import "errors"

var (
	// ErrMissingHashtagContext is returned when an item appears before any
	// hashtag has been declared in the document.
	ErrMissingHashtagContext = errors.New("item submitted without hashtag context")

	// ErrImmutableBody is returned when a second submission of an existing
	// item title carries a body; bodies may only be set once.
	ErrImmutableBody = errors.New("item already exists with a body")

	// ErrMissingAttributeContext is returned when a vote appears before any
	// attribute has been declared in the document.
	ErrMissingAttributeContext = errors.New("vote submitted without attribute context")

	// ErrUnknownItem is returned when a vote references an item title that
	// has not been declared yet.
	ErrUnknownItem = errors.New("vote references unknown item")

	// ErrZeroRatio is returned when a vote's ratio contains a zero, which
	// would break the ranking algorithm's random walk.
	ErrZeroRatio = errors.New("vote ratio cannot contain zero")
)
