package tracking

import "errors"

// Tracking domain errors
var (
	ErrEventNotFound    = errors.New("attendance event not found")
	ErrDuplicateLocalID = errors.New("event with this local_id already exists")
)
