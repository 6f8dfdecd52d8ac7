package service

import "errors"

// ErrNotFound is returned when the referenced record no longer exists in
// its collection.
var ErrNotFound = errors.New("not found")

// ErrInvalidStatus is returned for an unrecognized moderation status.
var ErrInvalidStatus = errors.New("invalid status")
