package store

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist, or
	// its filename resolves outside the store root.
	ErrNotFound = errors.New("record not found")

	// ErrIDCollision is returned when Append cannot find a free filename
	// after exhausting its retry budget.
	ErrIDCollision = errors.New("could not allocate a unique record filename")

	// ErrEmptyBody is returned when Append is given an empty submission body.
	ErrEmptyBody = errors.New("record body is empty")
)
